package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Well-known availability slot tokens. Free-form "HH:MM-HH:MM" ranges and
// the fixed slot labels are parsed the same way; the full-day and
// unavailable tokens are matched literally.
const (
	SlotFullDay        = "toute-la-journee"
	SlotUnavailableDay = "indisponible-toute-la-journee"
	SlotUnavailableTag = "indisponible"
)

// GMAvailability represents the declared time slots of a game master for a
// single date. At most one row per (gm_id, date); re-declaring overwrites.
type GMAvailability struct {
	BaseModel
	GMID      uuid.UUID      `json:"gm_id" gorm:"type:uuid;not null;uniqueIndex:idx_gm_availabilities_gm_date" validate:"required"`
	Date      time.Time      `json:"date" gorm:"type:date;not null;uniqueIndex:idx_gm_availabilities_gm_date;index" validate:"required"`
	TimeSlots datatypes.JSON `json:"time_slots" gorm:"type:jsonb;not null"`

	// Relationships
	GameMaster GameMaster `json:"game_master,omitempty" gorm:"foreignKey:GMID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GMAvailability
func (GMAvailability) TableName() string {
	return "gm_availabilities"
}

// Slots decodes the stored JSON slot list. A corrupt column yields an
// empty list rather than an error; the conflict checker treats that the
// same as no declaration.
func (a *GMAvailability) Slots() []string {
	var slots []string
	if len(a.TimeSlots) == 0 {
		return slots
	}
	if err := json.Unmarshal(a.TimeSlots, &slots); err != nil {
		return nil
	}
	return slots
}

// SetSlots encodes the slot list into the JSON column
func (a *GMAvailability) SetSlots(slots []string) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	a.TimeSlots = datatypes.JSON(data)
	return nil
}
