package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/logger"
	"gamecenter-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService is the decision core for attaching game masters to
// activities. It keeps the activity's is_assigned flag and assigned_gm_id
// column consistent with the assignment rows, and fires notifications and
// cache invalidation as side effects of every state change. Conflict
// checking is the caller's concern: conflicts are advisory and an admin may
// force an assignment through.
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	activityRepo   repository.ActivityRepositoryInterface
	gmRepo         repository.GameMasterRepositoryInterface
	notifier       NotificationDispatcherInterface
	views          ViewInvalidatorInterface
	log            *logger.Logger
}

// NewAssignmentService creates a new assignment service. views may be nil.
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepositoryInterface,
	activityRepo repository.ActivityRepositoryInterface,
	gmRepo repository.GameMasterRepositoryInterface,
	notifier NotificationDispatcherInterface,
	views ViewInvalidatorInterface,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		activityRepo:   activityRepo,
		gmRepo:         gmRepo,
		notifier:       notifier,
		views:          views,
		log:            logger.New().WithField("component", "assignments"),
	}
}

// AssignmentResponse represents one assignment row returned to the UI
type AssignmentResponse struct {
	ID              uuid.UUID               `json:"id"`
	ActivityID      uuid.UUID               `json:"activity_id"`
	GMID            uuid.UUID               `json:"gm_id"`
	GMName          string                  `json:"gm_name,omitempty"`
	AssignmentOrder int                     `json:"assignment_order"`
	Status          models.AssignmentStatus `json:"status"`
	IsPrimary       bool                    `json:"is_primary"`
}

// AssignResult acknowledges a successful assignment mutation
type AssignResult struct {
	Assignment *AssignmentResponse `json:"assignment,omitempty"`
	Message    string              `json:"message"`
}

// Assign attaches a GM to an activity. The first assignment becomes the
// primary (order 1) and stamps the activity's assigned_gm_id; later ones
// are secondary GMs with the next order. The caller is expected to have run
// the conflict checker and confirmed any warnings before calling.
func (s *AssignmentService) Assign(activityID, gmID uuid.UUID) (*AssignResult, error) {
	activity, err := s.getActivity(activityID)
	if err != nil {
		return nil, err
	}

	gm, err := s.getGameMaster(gmID)
	if err != nil {
		return nil, err
	}
	if !gm.IsActive {
		return nil, apperrors.ErrGMInactive
	}

	exists, err := s.assignmentRepo.Exists(activityID, gmID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrGMAlreadyAssigned
	}

	existing, err := s.assignmentRepo.GetByActivityID(activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	order := 1
	for _, a := range existing {
		if a.AssignmentOrder >= order {
			order = a.AssignmentOrder + 1
		}
	}

	assignment := &models.EventAssignment{
		ActivityID:      activityID,
		GMID:            gmID,
		AssignmentOrder: order,
		Status:          models.AssignmentStatusAssigned,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	now := time.Now()
	activity.IsAssigned = true
	activity.Status = models.ActivityStatusAssigned
	if len(existing) == 0 {
		activity.AssignedGMID = &gmID
		activity.AssignmentDate = &now
	}
	if err := s.activityRepo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	s.notifier.Dispatch(gm, models.NotificationTypeAssignment, activity)
	s.invalidate(activityID)

	role := "secondary"
	if order == 1 {
		role = "primary"
	}
	s.log.WithFields(map[string]interface{}{
		"activity_id": activityID,
		"gm_id":       gmID,
		"order":       order,
	}).Infof("assigned %s GM", role)

	return &AssignResult{
		Assignment: toAssignmentResponse(assignment, gm, len(existing) == 0),
		Message:    fmt.Sprintf("assigned to %s", gm.FullName()),
	}, nil
}

// Unassign removes one GM from an activity. Removing the last assignment
// resets the activity to pending; removing the recorded primary promotes
// the surviving assignment with the lowest order without renumbering.
func (s *AssignmentService) Unassign(activityID, gmID uuid.UUID) (*AssignResult, error) {
	activity, err := s.getActivity(activityID)
	if err != nil {
		return nil, err
	}

	gm, err := s.getGameMaster(gmID)
	if err != nil {
		return nil, err
	}

	if _, err := s.assignmentRepo.GetByActivityAndGM(activityID, gmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGMNotAssigned
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	if err := s.assignmentRepo.DeleteByActivityAndGM(activityID, gmID); err != nil {
		return nil, fmt.Errorf("failed to delete assignment: %w", err)
	}

	remaining, err := s.assignmentRepo.GetByActivityID(activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load remaining assignments: %w", err)
	}

	if len(remaining) == 0 {
		if err := s.resetActivity(activity); err != nil {
			return nil, err
		}
	} else if activity.AssignedGMID != nil && *activity.AssignedGMID == gmID {
		// Promote the lowest remaining order to primary
		promoted := remaining[0].GMID
		activity.AssignedGMID = &promoted
		if err := s.activityRepo.Update(activity); err != nil {
			return nil, fmt.Errorf("failed to update activity: %w", err)
		}
	}

	s.notifier.Dispatch(gm, models.NotificationTypeUnassigned, activity)
	s.invalidate(activityID)

	return &AssignResult{
		Message: fmt.Sprintf("unassigned %s", gm.FullName()),
	}, nil
}

// UnassignAll removes every GM from an activity and resets it to pending.
// Each removed GM is notified independently; the operation is idempotent.
func (s *AssignmentService) UnassignAll(activityID uuid.UUID) (*AssignResult, error) {
	activity, err := s.getActivity(activityID)
	if err != nil {
		return nil, err
	}

	existing, err := s.assignmentRepo.GetByActivityID(activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	if err := s.assignmentRepo.DeleteByActivityID(activityID); err != nil {
		return nil, fmt.Errorf("failed to delete assignments: %w", err)
	}

	if err := s.resetActivity(activity); err != nil {
		return nil, err
	}

	for _, assignment := range existing {
		gm, err := s.gmRepo.GetByID(assignment.GMID)
		if err != nil {
			s.log.WithField("gm_id", assignment.GMID).Warnf("skipping unassign notification: %v", err)
			continue
		}
		s.notifier.Dispatch(gm, models.NotificationTypeUnassigned, activity)
	}
	s.invalidate(activityID)

	return &AssignResult{
		Message: fmt.Sprintf("unassigned %d game master(s)", len(existing)),
	}, nil
}

// GetByActivity lists the assignments of an activity in order
func (s *AssignmentService) GetByActivity(activityID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.getActivity(activityID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetByActivityID(activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	responses := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		gm, err := s.gmRepo.GetByID(assignments[i].GMID)
		if err != nil {
			gm = nil
		}
		responses = append(responses, *toAssignmentResponse(&assignments[i], gm, i == 0))
	}
	return responses, nil
}

func (s *AssignmentService) getActivity(id uuid.UUID) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	return activity, nil
}

func (s *AssignmentService) getGameMaster(id uuid.UUID) (*models.GameMaster, error) {
	gm, err := s.gmRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameMasterNotFound
		}
		return nil, fmt.Errorf("failed to load game master: %w", err)
	}
	return gm, nil
}

// resetActivity returns an activity to its unassigned terminal state
func (s *AssignmentService) resetActivity(activity *models.Activity) error {
	activity.IsAssigned = false
	activity.Status = models.ActivityStatusPending
	activity.AssignedGMID = nil
	activity.AssignmentDate = nil
	if err := s.activityRepo.UpdateFields(activity.ID, map[string]interface{}{
		"is_assigned":     false,
		"status":          models.ActivityStatusPending,
		"assigned_gm_id":  nil,
		"assignment_date": nil,
	}); err != nil {
		return fmt.Errorf("failed to reset activity: %w", err)
	}
	return nil
}

func (s *AssignmentService) invalidate(activityID uuid.UUID) {
	if s.views != nil {
		s.views.InvalidateActivityViews(context.Background(), activityID)
	}
}

func toAssignmentResponse(a *models.EventAssignment, gm *models.GameMaster, isPrimary bool) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:              a.ID,
		ActivityID:      a.ActivityID,
		GMID:            a.GMID,
		AssignmentOrder: a.AssignmentOrder,
		Status:          a.Status,
		IsPrimary:       isPrimary,
	}
	if gm != nil {
		resp.GMName = gm.FullName()
	}
	return resp
}
