package service

import (
	"context"
	"time"

	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// NotificationDispatcherInterface is the fire-and-forget notification
// boundary consumed by the assignment engine. Implementations must never
// surface dispatch failures to the caller.
type NotificationDispatcherInterface interface {
	Dispatch(gm *models.GameMaster, notifType models.NotificationType, activity *models.Activity)
}

// ViewInvalidatorInterface clears cached planning views after a mutation
type ViewInvalidatorInterface interface {
	InvalidateActivityViews(ctx context.Context, activityID uuid.UUID)
}

// MatcherServiceInterface defines the interface for the game matcher
type MatcherServiceInterface interface {
	FindMatchingGame(title string) (*GameMatch, error)
	RefreshCache() error
}

// ConflictServiceInterface defines the interface for the conflict checker
type ConflictServiceInterface interface {
	CheckGMAvailabilityConflicts(gmID uuid.UUID, date time.Time, startTime, endTime string, gameID *uuid.UUID, excludeActivityID *uuid.UUID) (*ConflictReport, error)
}

// AssignmentServiceInterface defines the interface for the assignment engine
type AssignmentServiceInterface interface {
	Assign(activityID, gmID uuid.UUID) (*AssignResult, error)
	Unassign(activityID, gmID uuid.UUID) (*AssignResult, error)
	UnassignAll(activityID uuid.UUID) (*AssignResult, error)
	GetByActivity(activityID uuid.UUID) ([]AssignmentResponse, error)
}

// ActivityServiceInterface defines the interface for activity operations
type ActivityServiceInterface interface {
	Create(req *CreateActivityRequest) (*ActivityResponse, error)
	GetByID(id uuid.UUID) (*ActivityResponse, error)
	List(from, to *time.Time, page, pageSize int) (*ActivityListResponse, error)
	ListUnassigned(page, pageSize int) (*ActivityListResponse, error)
	Update(id uuid.UUID, req *UpdateActivityRequest) (*ActivityResponse, error)
	UpdateStatus(id uuid.UUID, status models.ActivityStatus) (*ActivityResponse, error)
	Delete(id uuid.UUID) error
}

// GameMasterServiceInterface defines the interface for game master operations
type GameMasterServiceInterface interface {
	Create(req *CreateGameMasterRequest) (*GameMasterResponse, error)
	GetByID(id uuid.UUID) (*GameMasterResponse, error)
	List(activeOnly bool, page, pageSize int) (*GameMasterListResponse, error)
	Update(id uuid.UUID, req *UpdateGameMasterRequest) (*GameMasterResponse, error)
	Deactivate(id uuid.UUID) error
}

// AvailabilityServiceInterface defines the interface for availability operations
type AvailabilityServiceInterface interface {
	Declare(req *DeclareAvailabilityRequest) (*AvailabilityResponse, error)
	GetByGM(gmID uuid.UUID, from, to time.Time) ([]AvailabilityResponse, error)
	GetByDate(date time.Time) ([]AvailabilityResponse, error)
	Delete(id uuid.UUID) error
}

// CompetencyServiceInterface defines the interface for competency operations
type CompetencyServiceInterface interface {
	Create(req *CreateCompetencyRequest) (*CompetencyResponse, error)
	GetByGM(gmID uuid.UUID) ([]CompetencyResponse, error)
	Update(id uuid.UUID, req *UpdateCompetencyRequest) (*CompetencyResponse, error)
	Delete(id uuid.UUID) error
}

// GameServiceInterface defines the interface for the game catalog and mappings
type GameServiceInterface interface {
	CreateGame(req *CreateGameRequest) (*GameResponse, error)
	GetGame(id uuid.UUID) (*GameResponse, error)
	ListGames(page, pageSize int) (*GameListResponse, error)
	UpdateGame(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error)
	DeleteGame(id uuid.UUID) error
	CreateMapping(req *CreateMappingRequest) (*MappingResponse, error)
	ListMappings(page, pageSize int) (*MappingListResponse, error)
	DeleteMapping(id uuid.UUID) error
}

// ReportServiceInterface defines the interface for workload reports
type ReportServiceInterface interface {
	MonthlyHours(period string) (*MonthlyHoursResponse, error)
}

// SuggestionServiceInterface defines the interface for assignment suggestions
type SuggestionServiceInterface interface {
	SuggestGMs(activityID uuid.UUID) (*SuggestionResponse, error)
}

// NotificationServiceInterface defines the interface for notification reads
type NotificationServiceInterface interface {
	List(gmID uuid.UUID, page, pageSize int) (*NotificationListResponse, error)
	UnreadCount(gmID uuid.UUID) (int64, error)
	MarkRead(id, gmID uuid.UUID) error
	MarkAllRead(gmID uuid.UUID) error
}
