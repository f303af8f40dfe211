package models

import (
	"github.com/google/uuid"
)

// EventAssignment represents the assignment of a game master to an activity.
// AssignmentOrder is a 1-based rank in order of addition; order 1 is the
// primary GM. Orders are never renumbered when earlier entries are removed.
type EventAssignment struct {
	BaseModel
	ActivityID      uuid.UUID        `json:"activity_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_assignments_activity_gm" validate:"required"`
	GMID            uuid.UUID        `json:"gm_id" gorm:"type:uuid;not null;uniqueIndex:idx_event_assignments_activity_gm;index" validate:"required"`
	AssignmentOrder int              `json:"assignment_order" gorm:"not null;default:1" validate:"min=1"`
	Status          AssignmentStatus `json:"status" gorm:"type:varchar(50);not null;default:'assigned'"`

	// Relationships
	Activity   Activity   `json:"activity,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	GameMaster GameMaster `json:"game_master,omitempty" gorm:"foreignKey:GMID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EventAssignment
func (EventAssignment) TableName() string {
	return "event_assignments"
}
