package repository

import (
	"time"

	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetAll retrieves all non-deleted activities with pagination
func (r *ActivityRepository) GetAll(limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := r.db.Model(&models.Activity{}).Where("status != ?", models.ActivityStatusDeleted)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status != ?", models.ActivityStatusDeleted).
		Order("date ASC, start_time ASC").Limit(limit).Offset(offset).Find(&activities).Error
	return activities, total, err
}

// GetByDateRange retrieves activities within a date range
func (r *ActivityRepository) GetByDateRange(from, to time.Time, limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := r.db.Model(&models.Activity{}).
		Where("date BETWEEN ? AND ? AND status != ?", from, to, models.ActivityStatusDeleted)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("date BETWEEN ? AND ? AND status != ?", from, to, models.ActivityStatusDeleted).
		Order("date ASC, start_time ASC").Limit(limit).Offset(offset).Find(&activities).Error
	return activities, total, err
}

// GetUnassigned retrieves pending activities without any assignment
func (r *ActivityRepository) GetUnassigned(limit, offset int) ([]models.Activity, int64, error) {
	var activities []models.Activity
	var total int64

	query := r.db.Model(&models.Activity{}).
		Where("is_assigned = ? AND status NOT IN ?", false,
			[]models.ActivityStatus{models.ActivityStatusDeleted, models.ActivityStatusCancelled})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("is_assigned = ? AND status NOT IN ?", false,
		[]models.ActivityStatus{models.ActivityStatusDeleted, models.ActivityStatusCancelled}).
		Order("date ASC, start_time ASC").Limit(limit).Offset(offset).Find(&activities).Error
	return activities, total, err
}

// GetAssignedByGMAndDate retrieves the activities a GM is assigned to on a
// date, optionally excluding one activity. Used by the conflict checker for
// the overlap and minimum-break tests.
func (r *ActivityRepository) GetAssignedByGMAndDate(gmID uuid.UUID, date time.Time, excludeActivityID *uuid.UUID) ([]models.Activity, error) {
	var activities []models.Activity

	query := r.db.Joins("JOIN event_assignments ON event_assignments.activity_id = activities.id").
		Where("event_assignments.gm_id = ? AND activities.date = ? AND activities.status NOT IN ?",
			gmID, date, []models.ActivityStatus{models.ActivityStatusDeleted, models.ActivityStatusCancelled})

	if excludeActivityID != nil {
		query = query.Where("activities.id != ?", *excludeActivityID)
	}

	err := query.Order("activities.start_time ASC").Find(&activities).Error
	return activities, err
}

// Update updates an activity
func (r *ActivityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

// UpdateFields updates selected columns of an activity. Nil values in the
// map clear the corresponding nullable columns.
func (r *ActivityRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Activity{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes an activity
func (r *ActivityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Activity{}, "id = ?", id).Error
}
