package testutils

import (
	"time"

	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
)

// GameMasterFactory provides methods to create test GameMaster data
type GameMasterFactory struct{}

// NewGameMasterFactory creates a new GameMasterFactory
func NewGameMasterFactory() *GameMasterFactory {
	return &GameMasterFactory{}
}

// Create creates a test GameMaster with default values
func (f *GameMasterFactory) Create() *models.GameMaster {
	id := uuid.New()
	// Unique email per instance to satisfy the unique index
	email := "gm-" + id.String()[:8] + "@test.com"

	return &models.GameMaster{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:   "Alex",
		LastName:    "Martin",
		Email:       email,
		PhoneNumber: "+33-6-00-00-00-00",
		Role:        models.GameMasterRoleGM,
		IsActive:    true,
	}
}

// WithEmail sets a custom email for the game master
func (f *GameMasterFactory) WithEmail(email string) *models.GameMaster {
	gm := f.Create()
	gm.Email = email
	return gm
}

// WithName sets a custom first and last name
func (f *GameMasterFactory) WithName(first, last string) *models.GameMaster {
	gm := f.Create()
	gm.FirstName = first
	gm.LastName = last
	return gm
}

// WithRole sets a custom role for the game master
func (f *GameMasterFactory) WithRole(role models.GameMasterRole) *models.GameMaster {
	gm := f.Create()
	gm.Role = role
	return gm
}

// Inactive returns a deactivated game master
func (f *GameMasterFactory) Inactive() *models.GameMaster {
	gm := f.Create()
	gm.IsActive = false
	return gm
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game with default values
func (f *GameFactory) Create() *models.Game {
	id := uuid.New()
	return &models.Game{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                "Test Arena " + id.String()[:8],
		Category:            "escape",
		Location:            "room-1",
		AverageDuration:     60,
		MinimumBreakMinutes: 0,
		IsActive:            true,
	}
}

// WithName sets a custom name for the game
func (f *GameFactory) WithName(name string) *models.Game {
	game := f.Create()
	game.Name = name
	return game
}

// WithDuration sets the average duration and minimum break
func (f *GameFactory) WithDuration(avgMinutes, breakMinutes int) *models.Game {
	game := f.Create()
	game.AverageDuration = avgMinutes
	game.MinimumBreakMinutes = breakMinutes
	return game
}

// ActivityFactory provides methods to create test Activity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Create creates a test Activity with default values
func (f *ActivityFactory) Create() *models.Activity {
	return &models.Activity{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "Test Session",
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		EndTime:         "15:00",
		DurationMinutes: 60,
		ActivityType:    models.ActivityTypeGaming,
		Status:          models.ActivityStatusPending,
		Source:          models.ActivitySourceManual,
	}
}

// WithTitle sets a custom title for the activity
func (f *ActivityFactory) WithTitle(title string) *models.Activity {
	a := f.Create()
	a.Title = title
	return a
}

// WithWindow sets the date and time window of the activity
func (f *ActivityFactory) WithWindow(date time.Time, start, end string) *models.Activity {
	a := f.Create()
	a.Date = date
	a.StartTime = start
	a.EndTime = end
	return a
}

// WithGame sets the game ID for the activity
func (f *ActivityFactory) WithGame(gameID uuid.UUID) *models.Activity {
	a := f.Create()
	a.GameID = &gameID
	return a
}

// AssignedTo marks the activity as assigned to the given GM
func (f *ActivityFactory) AssignedTo(gmID uuid.UUID) *models.Activity {
	a := f.Create()
	now := time.Now()
	a.IsAssigned = true
	a.AssignedGMID = &gmID
	a.AssignmentDate = &now
	a.Status = models.ActivityStatusAssigned
	return a
}

// AssignmentFactory provides methods to create test EventAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test EventAssignment with default values
func (f *AssignmentFactory) Create(activityID, gmID uuid.UUID) *models.EventAssignment {
	return &models.EventAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ActivityID:      activityID,
		GMID:            gmID,
		AssignmentOrder: 1,
		Status:          models.AssignmentStatusAssigned,
	}
}

// WithOrder sets the assignment order
func (f *AssignmentFactory) WithOrder(activityID, gmID uuid.UUID, order int) *models.EventAssignment {
	as := f.Create(activityID, gmID)
	as.AssignmentOrder = order
	return as
}

// AvailabilityFactory provides methods to create test GMAvailability data
type AvailabilityFactory struct{}

// NewAvailabilityFactory creates a new AvailabilityFactory
func NewAvailabilityFactory() *AvailabilityFactory {
	return &AvailabilityFactory{}
}

// Create creates a test GMAvailability with the given slots
func (f *AvailabilityFactory) Create(gmID uuid.UUID, date time.Time, slots ...string) *models.GMAvailability {
	if len(slots) == 0 {
		slots = []string{models.SlotFullDay}
	}
	av := &models.GMAvailability{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GMID: gmID,
		Date: date,
	}
	_ = av.SetSlots(slots)
	return av
}

// CompetencyFactory provides methods to create test GMCompetency data
type CompetencyFactory struct{}

// NewCompetencyFactory creates a new CompetencyFactory
func NewCompetencyFactory() *CompetencyFactory {
	return &CompetencyFactory{}
}

// Create creates a test GMCompetency with the given level
func (f *CompetencyFactory) Create(gmID, gameID uuid.UUID, level int) *models.GMCompetency {
	return &models.GMCompetency{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GMID:            gmID,
		GameID:          gameID,
		CompetencyLevel: level,
	}
}

// MappingFactory provides methods to create test EventGameMapping data
type MappingFactory struct{}

// NewMappingFactory creates a new MappingFactory
func NewMappingFactory() *MappingFactory {
	return &MappingFactory{}
}

// Create creates a test EventGameMapping for the given pattern
func (f *MappingFactory) Create(pattern string, gameID uuid.UUID) *models.EventGameMapping {
	return &models.EventGameMapping{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventNamePattern: pattern,
		GameID:           gameID,
		IsActive:         true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	GameMaster   *GameMasterFactory
	Game         *GameFactory
	Activity     *ActivityFactory
	Assignment   *AssignmentFactory
	Availability *AvailabilityFactory
	Competency   *CompetencyFactory
	Mapping      *MappingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		GameMaster:   NewGameMasterFactory(),
		Game:         NewGameFactory(),
		Activity:     NewActivityFactory(),
		Assignment:   NewAssignmentFactory(),
		Availability: NewAvailabilityFactory(),
		Competency:   NewCompetencyFactory(),
		Mapping:      NewMappingFactory(),
	}
}

// CreatePlanningFixture creates a game, a mapped pattern, an active GM with a
// competency on the game, and a pending activity in the game's window.
func (fs *FactorySet) CreatePlanningFixture() (*models.Game, *models.EventGameMapping, *models.GameMaster, *models.GMCompetency, *models.Activity) {
	game := fs.Game.Create()
	mapping := fs.Mapping.Create("arena", game.ID)
	gm := fs.GameMaster.Create()
	comp := fs.Competency.Create(gm.ID, game.ID, 3)
	activity := fs.Activity.WithGame(game.ID)
	return game, mapping, gm, comp, activity
}
