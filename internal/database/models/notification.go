package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification represents a message queued for a game master. Rows are
// created as a side effect of assignment changes and never mutated except
// for the read flag.
type Notification struct {
	BaseModel
	GMID      uuid.UUID        `json:"gm_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type      NotificationType `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Title     string           `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Message   string           `json:"message" gorm:"type:text"`
	EventData datatypes.JSON   `json:"event_data" gorm:"type:jsonb"` // activity snapshot at dispatch time
	IsRead    bool             `json:"is_read" gorm:"default:false;index"`

	// Relationships
	GameMaster GameMaster `json:"game_master,omitempty" gorm:"foreignKey:GMID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
