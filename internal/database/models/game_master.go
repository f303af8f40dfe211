package models

// GameMasterRole represents the role of a game master account
type GameMasterRole string

const (
	GameMasterRoleAdmin GameMasterRole = "admin"
	GameMasterRoleGM    GameMasterRole = "gm"
)

// GameMaster represents a staff member who can run activities
type GameMaster struct {
	BaseModel
	FirstName    string         `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string         `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber  string         `json:"phone_number" gorm:"size:20"`
	Role         GameMasterRole `json:"role" gorm:"type:varchar(50);not null;default:'gm'"`
	PasswordHash string         `json:"-" gorm:"size:100"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`

	// Relationships
	Assignments    []EventAssignment `json:"assignments,omitempty" gorm:"foreignKey:GMID;constraint:OnDelete:CASCADE"`
	Availabilities []GMAvailability  `json:"availabilities,omitempty" gorm:"foreignKey:GMID;constraint:OnDelete:CASCADE"`
	Competencies   []GMCompetency    `json:"competencies,omitempty" gorm:"foreignKey:GMID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GameMaster
func (GameMaster) TableName() string {
	return "game_masters"
}

// FullName returns the display name of the game master
func (gm *GameMaster) FullName() string {
	return gm.FirstName + " " + gm.LastName
}
