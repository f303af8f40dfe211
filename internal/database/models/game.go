package models

// Game represents a catalog entry for a VR experience
type Game struct {
	BaseModel
	Name                string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`
	Category            string `json:"category" gorm:"size:100"`
	Location            string `json:"location" gorm:"size:100"`
	AverageDuration     int    `json:"average_duration" gorm:"not null;default:60"` // minutes, auto-sets event duration
	MinimumBreakMinutes int    `json:"minimum_break_minutes" gorm:"not null;default:0"`
	IsActive            bool   `json:"is_active" gorm:"default:true;index"`

	// Relationships
	Mappings     []EventGameMapping `json:"mappings,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Competencies []GMCompetency     `json:"competencies,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}
