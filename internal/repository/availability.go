package repository

import (
	"errors"
	"time"

	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRepository handles database operations for GM availabilities
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Upsert creates the availability row for (gm_id, date) or overwrites its
// time slots when the date was already declared.
func (r *AvailabilityRepository) Upsert(availability *models.GMAvailability) error {
	var existing models.GMAvailability
	err := r.db.First(&existing, "gm_id = ? AND date = ?", availability.GMID, availability.Date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(availability).Error
		}
		return err
	}

	existing.TimeSlots = availability.TimeSlots
	existing.UpdatedBy = availability.UpdatedBy
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*availability = existing
	return nil
}

// GetByGMAndDate retrieves the availability of a GM for one date
func (r *AvailabilityRepository) GetByGMAndDate(gmID uuid.UUID, date time.Time) (*models.GMAvailability, error) {
	var availability models.GMAvailability
	err := r.db.First(&availability, "gm_id = ? AND date = ?", gmID, date).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// GetByGM retrieves the availabilities of a GM within a date range
func (r *AvailabilityRepository) GetByGM(gmID uuid.UUID, from, to time.Time) ([]models.GMAvailability, error) {
	var availabilities []models.GMAvailability
	err := r.db.Where("gm_id = ? AND date BETWEEN ? AND ?", gmID, from, to).
		Order("date ASC").Find(&availabilities).Error
	return availabilities, err
}

// GetByDate retrieves all declared availabilities for one date
func (r *AvailabilityRepository) GetByDate(date time.Time) ([]models.GMAvailability, error) {
	var availabilities []models.GMAvailability
	err := r.db.Where("date = ?", date).Find(&availabilities).Error
	return availabilities, err
}

// Delete deletes an availability row
func (r *AvailabilityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GMAvailability{}, "id = ?", id).Error
}
