package repository

import (
	"time"

	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GameMasterRepositoryInterface defines the interface for game master repository operations
type GameMasterRepositoryInterface interface {
	Create(gm *models.GameMaster) error
	GetByID(id uuid.UUID) (*models.GameMaster, error)
	GetByEmail(email string) (*models.GameMaster, error)
	GetAll(limit, offset int) ([]models.GameMaster, int64, error)
	GetActive(limit, offset int) ([]models.GameMaster, int64, error)
	Update(gm *models.GameMaster) error
	Delete(id uuid.UUID) error
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	GetByID(id uuid.UUID) (*models.Activity, error)
	GetAll(limit, offset int) ([]models.Activity, int64, error)
	GetByDateRange(from, to time.Time, limit, offset int) ([]models.Activity, int64, error)
	GetUnassigned(limit, offset int) ([]models.Activity, int64, error)
	GetAssignedByGMAndDate(gmID uuid.UUID, date time.Time, excludeActivityID *uuid.UUID) ([]models.Activity, error)
	Update(activity *models.Activity) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for event assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.EventAssignment) error
	GetByActivityID(activityID uuid.UUID) ([]models.EventAssignment, error)
	GetByActivityAndGM(activityID, gmID uuid.UUID) (*models.EventAssignment, error)
	GetByGMID(gmID uuid.UUID, limit, offset int) ([]models.EventAssignment, int64, error)
	Exists(activityID, gmID uuid.UUID) (bool, error)
	DeleteByActivityAndGM(activityID, gmID uuid.UUID) error
	DeleteByActivityID(activityID uuid.UUID) error
	GetMonthlyHours(from, to time.Time) ([]GMHoursRow, error)
}

// AvailabilityRepositoryInterface defines the interface for availability repository operations
type AvailabilityRepositoryInterface interface {
	Upsert(availability *models.GMAvailability) error
	GetByGMAndDate(gmID uuid.UUID, date time.Time) (*models.GMAvailability, error)
	GetByGM(gmID uuid.UUID, from, to time.Time) ([]models.GMAvailability, error)
	GetByDate(date time.Time) ([]models.GMAvailability, error)
	Delete(id uuid.UUID) error
}

// CompetencyRepositoryInterface defines the interface for competency repository operations
type CompetencyRepositoryInterface interface {
	Create(competency *models.GMCompetency) error
	GetByID(id uuid.UUID) (*models.GMCompetency, error)
	GetByGM(gmID uuid.UUID) ([]models.GMCompetency, error)
	GetByGame(gameID uuid.UUID, minLevel int) ([]models.GMCompetency, error)
	GetByGMAndGame(gmID, gameID uuid.UUID) (*models.GMCompetency, error)
	Update(competency *models.GMCompetency) error
	Delete(id uuid.UUID) error
}

// GameRepositoryInterface defines the interface for game repository operations
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id uuid.UUID) (*models.Game, error)
	GetByName(name string) (*models.Game, error)
	GetAll(limit, offset int) ([]models.Game, int64, error)
	GetActive() ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uuid.UUID) error
}

// GameMappingRepositoryInterface defines the interface for game mapping repository operations
type GameMappingRepositoryInterface interface {
	Create(mapping *models.EventGameMapping) error
	GetByID(id uuid.UUID) (*models.EventGameMapping, error)
	GetAll(limit, offset int) ([]models.EventGameMapping, int64, error)
	GetActiveWithGames() ([]models.EventGameMapping, error)
	Update(mapping *models.EventGameMapping) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByGM(gmID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(gmID uuid.UUID) (int64, error)
	MarkRead(id, gmID uuid.UUID) error
	MarkAllRead(gmID uuid.UUID) error
}
