package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamecenter-backend/internal/cache"
	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/logger"
	"gamecenter-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService handles business logic for activities. Creation runs the
// game matcher over the title so externally synced events pick up their
// catalog game and default duration without manual input.
type ActivityService struct {
	repo           repository.ActivityRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	gmRepo         repository.GameMasterRepositoryInterface
	matcher        MatcherServiceInterface
	notifier       NotificationDispatcherInterface
	views          *cache.Cache
	validator      *validator.Validate
	log            *logger.Logger
}

// NewActivityService creates a new activity service. views may be nil.
func NewActivityService(
	repo repository.ActivityRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	gmRepo repository.GameMasterRepositoryInterface,
	matcher MatcherServiceInterface,
	notifier NotificationDispatcherInterface,
	views *cache.Cache,
	validator *validator.Validate,
) *ActivityService {
	return &ActivityService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		gmRepo:         gmRepo,
		matcher:        matcher,
		notifier:       notifier,
		views:          views,
		validator:      validator,
		log:            logger.New().WithField("component", "activities"),
	}
}

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Title           string                `json:"title" validate:"required,max=200"`
	Date            time.Time             `json:"date" validate:"required"`
	StartTime       string                `json:"start_time" validate:"required"`
	EndTime         string                `json:"end_time" validate:"required"`
	DurationMinutes int                   `json:"duration_minutes,omitempty"`
	ActivityType    models.ActivityType   `json:"activity_type,omitempty"`
	GameID          *uuid.UUID            `json:"game_id,omitempty"`
	AdminNotes      string                `json:"admin_notes,omitempty"`
	Description     string                `json:"description,omitempty"`
	Source          models.ActivitySource `json:"source,omitempty"`
}

// UpdateActivityRequest represents the request to update an activity
type UpdateActivityRequest struct {
	Title           *string              `json:"title,omitempty"`
	Date            *time.Time           `json:"date,omitempty"`
	StartTime       *string              `json:"start_time,omitempty"`
	EndTime         *string              `json:"end_time,omitempty"`
	DurationMinutes *int                 `json:"duration_minutes,omitempty"`
	ActivityType    *models.ActivityType `json:"activity_type,omitempty"`
	GameID          *uuid.UUID           `json:"game_id,omitempty"`
	AdminNotes      *string              `json:"admin_notes,omitempty"`
	Description     *string              `json:"description,omitempty"`
}

// ActivityResponse represents an activity returned to the UI
type ActivityResponse struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	Date            string                `json:"date"`
	StartTime       string                `json:"start_time"`
	EndTime         string                `json:"end_time"`
	DurationMinutes int                   `json:"duration_minutes"`
	ActivityType    models.ActivityType   `json:"activity_type"`
	Status          models.ActivityStatus `json:"status"`
	IsAssigned      bool                  `json:"is_assigned"`
	AssignedGMID    *uuid.UUID            `json:"assigned_gm_id"`
	GameID          *uuid.UUID            `json:"game_id"`
	AdminNotes      string                `json:"admin_notes"`
	Description     string                `json:"description"`
	Source          models.ActivitySource `json:"source"`
}

// ActivityListResponse represents a paginated list of activities
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// Create creates a new activity. A missing game is inferred from the title
// via the mapping patterns, and a missing duration falls back to the
// matched game's average duration, then to the time window length.
func (s *ActivityService) Create(req *CreateActivityRequest) (*ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	window, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if req.ActivityType != "" && !req.ActivityType.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Source != "" && !req.Source.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	activity := &models.Activity{
		Title:           req.Title,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		ActivityType:    req.ActivityType,
		Status:          models.ActivityStatusPending,
		GameID:          req.GameID,
		AdminNotes:      req.AdminNotes,
		Description:     req.Description,
		Source:          req.Source,
	}
	if activity.ActivityType == "" {
		activity.ActivityType = models.ActivityTypeGaming
	}
	if activity.Source == "" {
		activity.Source = models.ActivitySourceManual
	}

	if activity.GameID == nil {
		match, err := s.matcher.FindMatchingGame(req.Title)
		if err != nil {
			s.log.Warnf("game matching failed for %q: %v", req.Title, err)
		} else if match.Matched() {
			activity.GameID = match.GameID
			if activity.DurationMinutes == 0 {
				activity.DurationMinutes = match.AverageDuration
			}
		}
	}
	if activity.DurationMinutes == 0 {
		activity.DurationMinutes = window.End - window.Start
	}

	if err := s.repo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.invalidate(activity.ID)
	return toActivityResponse(activity), nil
}

// GetByID retrieves an activity by ID
func (s *ActivityService) GetByID(id uuid.UUID) (*ActivityResponse, error) {
	activity, err := s.getActivity(id)
	if err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// List retrieves activities, optionally restricted to a date range. The
// unfiltered first page is served from the view cache when available.
func (s *ActivityService) List(from, to *time.Time, page, pageSize int) (*ActivityListResponse, error) {
	offset := (page - 1) * pageSize

	cacheable := from == nil && to == nil && page == 1
	if cacheable {
		var cached ActivityListResponse
		if err := s.views.GetJSON(context.Background(), cache.KeyActivityList, &cached); err == nil {
			return &cached, nil
		}
	}

	var activities []models.Activity
	var total int64
	var err error
	if from != nil && to != nil {
		activities, total, err = s.repo.GetByDateRange(*from, *to, pageSize, offset)
	} else {
		activities, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	resp := toActivityListResponse(activities, total, page, pageSize)
	if cacheable {
		s.views.SetJSON(context.Background(), cache.KeyActivityList, resp)
	}
	return resp, nil
}

// ListUnassigned retrieves pending activities without any assignment
func (s *ActivityService) ListUnassigned(page, pageSize int) (*ActivityListResponse, error) {
	offset := (page - 1) * pageSize

	if page == 1 {
		var cached ActivityListResponse
		if err := s.views.GetJSON(context.Background(), cache.KeyUnassignedList, &cached); err == nil {
			return &cached, nil
		}
	}

	activities, total, err := s.repo.GetUnassigned(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned activities: %w", err)
	}

	resp := toActivityListResponse(activities, total, page, pageSize)
	if page == 1 {
		s.views.SetJSON(context.Background(), cache.KeyUnassignedList, resp)
	}
	return resp, nil
}

// Update updates an activity and notifies its assigned GMs
func (s *ActivityService) Update(id uuid.UUID, req *UpdateActivityRequest) (*ActivityResponse, error) {
	activity, err := s.getActivity(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if req.StartTime != nil {
		activity.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		activity.EndTime = *req.EndTime
	}
	if _, err := parseTimeRange(activity.StartTime, activity.EndTime); err != nil {
		return nil, err
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.ActivityType != nil {
		if !req.ActivityType.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		activity.ActivityType = *req.ActivityType
	}
	if req.GameID != nil {
		activity.GameID = req.GameID
	}
	if req.AdminNotes != nil {
		activity.AdminNotes = *req.AdminNotes
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}

	if err := s.repo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	s.notifyAssigned(activity, models.NotificationTypeModified)
	s.invalidate(id)
	return toActivityResponse(activity), nil
}

// UpdateStatus transitions an activity's status. Cancelling notifies the
// assigned GMs.
func (s *ActivityService) UpdateStatus(id uuid.UUID, status models.ActivityStatus) (*ActivityResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	activity, err := s.getActivity(id)
	if err != nil {
		return nil, err
	}

	activity.Status = status
	if err := s.repo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to update activity status: %w", err)
	}

	if status == models.ActivityStatusCancelled {
		s.notifyAssigned(activity, models.NotificationTypeCancelled)
	}
	s.invalidate(id)
	return toActivityResponse(activity), nil
}

// Delete marks an activity deleted and drops its assignments
func (s *ActivityService) Delete(id uuid.UUID) error {
	activity, err := s.getActivity(id)
	if err != nil {
		return err
	}

	s.notifyAssigned(activity, models.NotificationTypeCancelled)

	if err := s.assignmentRepo.DeleteByActivityID(id); err != nil {
		return fmt.Errorf("failed to delete assignments: %w", err)
	}
	if err := s.repo.UpdateFields(id, map[string]interface{}{
		"status":          models.ActivityStatusDeleted,
		"is_assigned":     false,
		"assigned_gm_id":  nil,
		"assignment_date": nil,
	}); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	s.invalidate(id)
	return nil
}

func (s *ActivityService) getActivity(id uuid.UUID) (*models.Activity, error) {
	activity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	return activity, nil
}

// notifyAssigned dispatches a notification to every GM assigned to the
// activity, independently per GM.
func (s *ActivityService) notifyAssigned(activity *models.Activity, notifType models.NotificationType) {
	assignments, err := s.assignmentRepo.GetByActivityID(activity.ID)
	if err != nil {
		s.log.WithField("activity_id", activity.ID).Warnf("skipping notifications: %v", err)
		return
	}
	for _, assignment := range assignments {
		gm, err := s.gmRepo.GetByID(assignment.GMID)
		if err != nil {
			s.log.WithField("gm_id", assignment.GMID).Warnf("skipping notification: %v", err)
			continue
		}
		s.notifier.Dispatch(gm, notifType, activity)
	}
}

func (s *ActivityService) invalidate(activityID uuid.UUID) {
	s.views.InvalidateActivityViews(context.Background(), activityID)
}

func toActivityResponse(a *models.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:              a.ID,
		Title:           a.Title,
		Date:            a.Date.Format("2006-01-02"),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		DurationMinutes: a.DurationMinutes,
		ActivityType:    a.ActivityType,
		Status:          a.Status,
		IsAssigned:      a.IsAssigned,
		AssignedGMID:    a.AssignedGMID,
		GameID:          a.GameID,
		AdminNotes:      a.AdminNotes,
		Description:     a.Description,
		Source:          a.Source,
	}
}

func toActivityListResponse(activities []models.Activity, total int64, page, pageSize int) *ActivityListResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		responses = append(responses, *toActivityResponse(&activities[i]))
	}
	return &ActivityListResponse{
		Activities: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}
}
