package service

import (
	"fmt"
	"sort"
	"time"

	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/logger"
	"gamecenter-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportService aggregates assignment workload per game master
type ReportService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	gmRepo         repository.GameMasterRepositoryInterface
	log            *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(
	assignmentRepo repository.AssignmentRepositoryInterface,
	gmRepo repository.GameMasterRepositoryInterface,
) *ReportService {
	return &ReportService{
		assignmentRepo: assignmentRepo,
		gmRepo:         gmRepo,
		log:            logger.New().WithField("component", "reports"),
	}
}

// GMHoursResponse represents one GM's workload for a period
type GMHoursResponse struct {
	GMID          uuid.UUID `json:"gm_id"`
	GMName        string    `json:"gm_name"`
	TotalMinutes  int64     `json:"total_minutes"`
	TotalHours    float64   `json:"total_hours"`
	ActivityCount int64     `json:"activity_count"`
}

// MonthlyHoursResponse represents the hour report for a month
type MonthlyHoursResponse struct {
	Period      string            `json:"period"`
	GameMasters []GMHoursResponse `json:"game_masters"`
}

// MonthlyHours computes per-GM assigned minutes for a "YYYY-MM" period.
// Cancelled and deleted activities are excluded at the query level; results
// are ordered by workload descending.
func (s *ReportService) MonthlyHours(period string) (*MonthlyHoursResponse, error) {
	from, err := time.Parse("2006-01", period)
	if err != nil {
		return nil, apperrors.ErrInvalidPeriodFormat
	}
	to := from.AddDate(0, 1, 0)

	rows, err := s.assignmentRepo.GetMonthlyHours(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly hours: %w", err)
	}

	report := make([]GMHoursResponse, 0, len(rows))
	for _, row := range rows {
		entry := GMHoursResponse{
			GMID:          row.GMID,
			TotalMinutes:  row.TotalMinutes,
			TotalHours:    float64(row.TotalMinutes) / 60,
			ActivityCount: row.ActivityCount,
		}
		gm, err := s.gmRepo.GetByID(row.GMID)
		if err != nil {
			s.log.WithField("gm_id", row.GMID).Warnf("reporting unnamed gm: %v", err)
		} else {
			entry.GMName = gm.FullName()
		}
		report = append(report, entry)
	}

	sort.Slice(report, func(i, j int) bool {
		return report[i].TotalMinutes > report[j].TotalMinutes
	})

	return &MonthlyHoursResponse{Period: period, GameMasters: report}, nil
}
