package service

import (
	"errors"
	"fmt"
	"sort"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/logger"
	"gamecenter-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// candidatePageSize is the batch size used when walking the active roster
// for activities without a matched game.
const candidatePageSize = 200

// SuggestionService proposes game masters for an activity, ranked by
// competency on the matched game and filtered through the conflict checker.
type SuggestionService struct {
	activityRepo   repository.ActivityRepositoryInterface
	gmRepo         repository.GameMasterRepositoryInterface
	competencyRepo repository.CompetencyRepositoryInterface
	conflicts      ConflictServiceInterface
	log            *logger.Logger
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(
	activityRepo repository.ActivityRepositoryInterface,
	gmRepo repository.GameMasterRepositoryInterface,
	competencyRepo repository.CompetencyRepositoryInterface,
	conflicts ConflictServiceInterface,
) *SuggestionService {
	return &SuggestionService{
		activityRepo:   activityRepo,
		gmRepo:         gmRepo,
		competencyRepo: competencyRepo,
		conflicts:      conflicts,
		log:            logger.New().WithField("component", "suggestions"),
	}
}

// GMSuggestion represents one candidate for an activity
type GMSuggestion struct {
	GMID               uuid.UUID          `json:"gm_id"`
	GMName             string             `json:"gm_name"`
	CompetencyLevel    int                `json:"competency_level"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	HasConflict        bool               `json:"has_conflict"`
}

// SuggestionResponse represents the ranked candidate list for an activity
type SuggestionResponse struct {
	ActivityID  uuid.UUID      `json:"activity_id"`
	GameID      *uuid.UUID     `json:"game_id"`
	Suggestions []GMSuggestion `json:"suggestions"`
}

// SuggestGMs ranks candidates for an activity. With a matched game the pool
// is the GMs competent on it (level >= 1); without one it is every active
// GM at level 0. Candidates with hard conflicts are listed last, never
// hidden, so the planner sees why someone was ruled out.
func (s *SuggestionService) SuggestGMs(activityID uuid.UUID) (*SuggestionResponse, error) {
	activity, err := s.activityRepo.GetByID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	type candidate struct {
		gm    *models.GameMaster
		level int
	}
	var candidates []candidate

	if activity.GameID != nil {
		competencies, err := s.competencyRepo.GetByGame(*activity.GameID, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to load competencies: %w", err)
		}
		for i := range competencies {
			gm, err := s.gmRepo.GetByID(competencies[i].GMID)
			if err != nil {
				s.log.WithField("gm_id", competencies[i].GMID).Warnf("skipping candidate: %v", err)
				continue
			}
			if !gm.IsActive {
				continue
			}
			candidates = append(candidates, candidate{gm: gm, level: competencies[i].CompetencyLevel})
		}
	} else {
		for offset := 0; ; offset += candidatePageSize {
			gms, _, err := s.gmRepo.GetActive(candidatePageSize, offset)
			if err != nil {
				return nil, fmt.Errorf("failed to load game masters: %w", err)
			}
			for i := range gms {
				candidates = append(candidates, candidate{gm: &gms[i]})
			}
			if len(gms) < candidatePageSize {
				break
			}
		}
	}

	suggestions := make([]GMSuggestion, 0, len(candidates))
	for _, c := range candidates {
		report, err := s.conflicts.CheckGMAvailabilityConflicts(
			c.gm.ID, activity.Date, activity.StartTime, activity.EndTime, activity.GameID, &activity.ID)
		if err != nil {
			s.log.WithField("gm_id", c.gm.ID).Warnf("skipping candidate: %v", err)
			continue
		}
		suggestions = append(suggestions, GMSuggestion{
			GMID:               c.gm.ID,
			GMName:             c.gm.FullName(),
			CompetencyLevel:    c.level,
			AvailabilityStatus: report.AvailabilityStatus,
			HasConflict:        report.HasConflict,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].HasConflict != suggestions[j].HasConflict {
			return !suggestions[i].HasConflict
		}
		return suggestions[i].CompetencyLevel > suggestions[j].CompetencyLevel
	})

	return &SuggestionResponse{
		ActivityID:  activityID,
		GameID:      activity.GameID,
		Suggestions: suggestions,
	}, nil
}
