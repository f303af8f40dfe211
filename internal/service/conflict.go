package service

import (
	"errors"
	"fmt"
	"time"

	"gamecenter-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleConflict describes an overlap with another assigned activity
type ScheduleConflict struct {
	ActivityID uuid.UUID `json:"activity_id"`
	Title      string    `json:"title"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

// BreakViolation describes a gap shorter than the game's minimum break
type BreakViolation struct {
	ActivityID      uuid.UUID `json:"activity_id"`
	Title           string    `json:"title"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	GapMinutes      int       `json:"gap_minutes"`
	RequiredMinutes int       `json:"required_minutes"`
}

// ConflictReport aggregates the three conflict checks for one candidate
// assignment. It is advisory: the caller decides whether to proceed.
// AvailabilityStatus alone never sets HasConflict, so a GM with no declared
// availability can still be force-assigned with a warning.
type ConflictReport struct {
	AvailabilityStatus     AvailabilityStatus `json:"availability_status"`
	HasConflict            bool               `json:"has_conflict"`
	Conflicts              []ScheduleConflict `json:"conflicts"`
	MinimumBreakViolations []BreakViolation   `json:"minimum_break_violations"`
}

// ConflictService checks a candidate GM against an event time window
type ConflictService struct {
	availabilityRepo repository.AvailabilityRepositoryInterface
	activityRepo     repository.ActivityRepositoryInterface
	gameRepo         repository.GameRepositoryInterface
}

// NewConflictService creates a new conflict service
func NewConflictService(
	availabilityRepo repository.AvailabilityRepositoryInterface,
	activityRepo repository.ActivityRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
) *ConflictService {
	return &ConflictService{
		availabilityRepo: availabilityRepo,
		activityRepo:     activityRepo,
		gameRepo:         gameRepo,
	}
}

// CheckGMAvailabilityConflicts runs the availability, overlap and
// minimum-break checks for assigning gmID to the [startTime,endTime) window
// on date. excludeActivityID removes the event under edit from the
// comparison set. gameID drives the minimum-break rule and may be nil.
func (s *ConflictService) CheckGMAvailabilityConflicts(
	gmID uuid.UUID,
	date time.Time,
	startTime, endTime string,
	gameID *uuid.UUID,
	excludeActivityID *uuid.UUID,
) (*ConflictReport, error) {
	event, err := parseTimeRange(startTime, endTime)
	if err != nil {
		return nil, err
	}

	report := &ConflictReport{
		Conflicts:              []ScheduleConflict{},
		MinimumBreakViolations: []BreakViolation{},
	}

	// Step 1: availability compatibility
	availability, err := s.availabilityRepo.GetByGMAndDate(gmID, date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load availability: %w", err)
		}
		report.AvailabilityStatus = AvailabilityStatusNone
	} else {
		report.AvailabilityStatus = classifySlots(availability.Slots(), event)
	}

	// Step 2 and 3 share the GM's other same-day assigned activities
	others, err := s.activityRepo.GetAssignedByGMAndDate(gmID, date, excludeActivityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load same-day assignments: %w", err)
	}

	minimumBreak := 0
	if gameID != nil {
		game, err := s.gameRepo.GetByID(*gameID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to load game: %w", err)
			}
		} else {
			minimumBreak = game.MinimumBreakMinutes
		}
	}

	for _, other := range others {
		otherRange, err := parseTimeRange(other.StartTime, other.EndTime)
		if err != nil {
			continue
		}

		if event.overlaps(otherRange) {
			report.Conflicts = append(report.Conflicts, ScheduleConflict{
				ActivityID: other.ID,
				Title:      other.Title,
				StartTime:  other.StartTime,
				EndTime:    other.EndTime,
			})
			continue
		}

		if minimumBreak > 0 {
			gap := event.Start - otherRange.End
			if otherRange.Start >= event.End {
				gap = otherRange.Start - event.End
			}
			if gap < minimumBreak {
				report.MinimumBreakViolations = append(report.MinimumBreakViolations, BreakViolation{
					ActivityID:      other.ID,
					Title:           other.Title,
					StartTime:       other.StartTime,
					EndTime:         other.EndTime,
					GapMinutes:      gap,
					RequiredMinutes: minimumBreak,
				})
			}
		}
	}

	report.HasConflict = len(report.Conflicts) > 0 || len(report.MinimumBreakViolations) > 0
	return report, nil
}
