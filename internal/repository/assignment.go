package repository

import (
	"errors"
	"time"

	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GMHoursRow is one line of the monthly hours aggregation
type GMHoursRow struct {
	GMID          uuid.UUID `json:"gm_id"`
	TotalMinutes  int64     `json:"total_minutes"`
	ActivityCount int64     `json:"activity_count"`
}

// AssignmentRepository handles database operations for event assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new event assignment. The unique index on
// (activity_id, gm_id) rejects duplicates at the storage layer.
func (r *AssignmentRepository) Create(assignment *models.EventAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByActivityID retrieves the assignments of an activity ordered by
// assignment order; the first entry is the primary GM.
func (r *AssignmentRepository) GetByActivityID(activityID uuid.UUID) ([]models.EventAssignment, error) {
	var assignments []models.EventAssignment
	err := r.db.Where("activity_id = ?", activityID).
		Order("assignment_order ASC").Find(&assignments).Error
	return assignments, err
}

// GetByActivityAndGM retrieves a single assignment pair
func (r *AssignmentRepository) GetByActivityAndGM(activityID, gmID uuid.UUID) (*models.EventAssignment, error) {
	var assignment models.EventAssignment
	err := r.db.First(&assignment, "activity_id = ? AND gm_id = ?", activityID, gmID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByGMID retrieves all assignments of a game master with pagination
func (r *AssignmentRepository) GetByGMID(gmID uuid.UUID, limit, offset int) ([]models.EventAssignment, int64, error) {
	var assignments []models.EventAssignment
	var total int64

	if err := r.db.Model(&models.EventAssignment{}).Where("gm_id = ?", gmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("gm_id = ?", gmID).Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// Exists reports whether a GM is already assigned to an activity
func (r *AssignmentRepository) Exists(activityID, gmID uuid.UUID) (bool, error) {
	var assignment models.EventAssignment
	err := r.db.Select("id").First(&assignment, "activity_id = ? AND gm_id = ?", activityID, gmID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteByActivityAndGM deletes the assignment of one GM on an activity
func (r *AssignmentRepository) DeleteByActivityAndGM(activityID, gmID uuid.UUID) error {
	return r.db.Delete(&models.EventAssignment{}, "activity_id = ? AND gm_id = ?", activityID, gmID).Error
}

// DeleteByActivityID deletes all assignments of an activity
func (r *AssignmentRepository) DeleteByActivityID(activityID uuid.UUID) error {
	return r.db.Delete(&models.EventAssignment{}, "activity_id = ?", activityID).Error
}

// GetMonthlyHours aggregates assigned activity durations per GM for the
// given period. Cancelled and deleted activities are excluded.
func (r *AssignmentRepository) GetMonthlyHours(from, to time.Time) ([]GMHoursRow, error) {
	var rows []GMHoursRow
	err := r.db.Table("event_assignments").
		Select("event_assignments.gm_id AS gm_id, COALESCE(SUM(activities.duration_minutes), 0) AS total_minutes, COUNT(activities.id) AS activity_count").
		Joins("JOIN activities ON activities.id = event_assignments.activity_id").
		Where("activities.date >= ? AND activities.date < ? AND activities.status NOT IN ?", from, to,
			[]models.ActivityStatus{models.ActivityStatusDeleted, models.ActivityStatusCancelled}).
		Group("event_assignments.gm_id").
		Order("total_minutes DESC").
		Scan(&rows).Error
	return rows, err
}
