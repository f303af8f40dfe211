package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents a scheduled event at the game center
type Activity struct {
	BaseModel
	Title           string         `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Date            time.Time      `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime       string         `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime         string         `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null;default:0"`
	ActivityType    ActivityType   `json:"activity_type" gorm:"type:varchar(50);not null;default:'gaming'"`
	Status          ActivityStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending';index"`
	IsAssigned      bool           `json:"is_assigned" gorm:"default:false;index"`
	AssignedGMID    *uuid.UUID     `json:"assigned_gm_id" gorm:"type:uuid;index"` // primary GM, kept in sync with the lowest-order assignment
	GameID          *uuid.UUID     `json:"game_id" gorm:"type:uuid;index"`
	AdminNotes      string         `json:"admin_notes" gorm:"type:text"`
	Description     string         `json:"description" gorm:"type:text"`
	Source          ActivitySource `json:"source" gorm:"type:varchar(50);not null;default:'manual'"`
	AssignmentDate  *time.Time     `json:"assignment_date"`

	// Relationships
	AssignedGM  *GameMaster       `json:"assigned_gm,omitempty" gorm:"foreignKey:AssignedGMID;constraint:OnDelete:SET NULL"`
	Game        *Game             `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:SET NULL"`
	Assignments []EventAssignment `json:"assignments,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
