package models

import (
	"github.com/google/uuid"
)

// EventGameMapping maps a case-insensitive substring of an event title to a
// catalog game. Multiple patterns may match a title; the longest pattern
// wins.
type EventGameMapping struct {
	BaseModel
	EventNamePattern string    `json:"event_name_pattern" gorm:"not null;size:200;index" validate:"required,max=200"`
	GameID           uuid.UUID `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsActive         bool      `json:"is_active" gorm:"default:true;index"`

	// Relationships
	Game Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EventGameMapping
func (EventGameMapping) TableName() string {
	return "event_game_mappings"
}
