package repository

import (
	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameMasterRepository handles database operations for game masters
type GameMasterRepository struct {
	db *gorm.DB
}

// NewGameMasterRepository creates a new game master repository
func NewGameMasterRepository(db *gorm.DB) *GameMasterRepository {
	return &GameMasterRepository{db: db}
}

// Create creates a new game master
func (r *GameMasterRepository) Create(gm *models.GameMaster) error {
	return r.db.Create(gm).Error
}

// GetByID retrieves a game master by ID
func (r *GameMasterRepository) GetByID(id uuid.UUID) (*models.GameMaster, error) {
	var gm models.GameMaster
	err := r.db.First(&gm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gm, nil
}

// GetByEmail retrieves a game master by email
func (r *GameMasterRepository) GetByEmail(email string) (*models.GameMaster, error) {
	var gm models.GameMaster
	err := r.db.First(&gm, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &gm, nil
}

// GetAll retrieves all game masters with pagination
func (r *GameMasterRepository) GetAll(limit, offset int) ([]models.GameMaster, int64, error) {
	var gms []models.GameMaster
	var total int64

	if err := r.db.Model(&models.GameMaster{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&gms).Error
	return gms, total, err
}

// GetActive retrieves all active game masters with pagination
func (r *GameMasterRepository) GetActive(limit, offset int) ([]models.GameMaster, int64, error) {
	var gms []models.GameMaster
	var total int64

	query := r.db.Model(&models.GameMaster{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("is_active = ?", true).Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&gms).Error
	return gms, total, err
}

// Update updates a game master
func (r *GameMasterRepository) Update(gm *models.GameMaster) error {
	return r.db.Save(gm).Error
}

// Delete deletes a game master
func (r *GameMasterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GameMaster{}, "id = ?", id).Error
}
