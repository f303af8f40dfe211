package models

import (
	"time"

	"github.com/google/uuid"
)

// GMCompetency represents a game master's proficiency level on a game.
// Level 0 means not declared.
type GMCompetency struct {
	BaseModel
	GMID            uuid.UUID  `json:"gm_id" gorm:"type:uuid;not null;uniqueIndex:idx_gm_competencies_gm_game" validate:"required"`
	GameID          uuid.UUID  `json:"game_id" gorm:"type:uuid;not null;uniqueIndex:idx_gm_competencies_gm_game;index" validate:"required"`
	CompetencyLevel int        `json:"competency_level" gorm:"not null;default:0" validate:"min=0,max=5"`
	TrainingDate    *time.Time `json:"training_date" gorm:"type:date"`
	Notes           string     `json:"notes" gorm:"type:text"`

	// Relationships
	GameMaster GameMaster `json:"game_master,omitempty" gorm:"foreignKey:GMID;constraint:OnDelete:CASCADE"`
	Game       Game       `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GMCompetency
func (GMCompetency) TableName() string {
	return "gm_competencies"
}
