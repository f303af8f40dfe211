package repository

import (
	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameMappingRepository handles database operations for event-game mappings
type GameMappingRepository struct {
	db *gorm.DB
}

// NewGameMappingRepository creates a new game mapping repository
func NewGameMappingRepository(db *gorm.DB) *GameMappingRepository {
	return &GameMappingRepository{db: db}
}

// Create creates a new mapping
func (r *GameMappingRepository) Create(mapping *models.EventGameMapping) error {
	return r.db.Create(mapping).Error
}

// GetByID retrieves a mapping by ID
func (r *GameMappingRepository) GetByID(id uuid.UUID) (*models.EventGameMapping, error) {
	var mapping models.EventGameMapping
	err := r.db.First(&mapping, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// GetAll retrieves all mappings with pagination
func (r *GameMappingRepository) GetAll(limit, offset int) ([]models.EventGameMapping, int64, error) {
	var mappings []models.EventGameMapping
	var total int64

	if err := r.db.Model(&models.EventGameMapping{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Game").Order("event_name_pattern ASC").
		Limit(limit).Offset(offset).Find(&mappings).Error
	return mappings, total, err
}

// GetActiveWithGames retrieves all active mappings whose game is active,
// with the game preloaded. This is the matcher's working set.
func (r *GameMappingRepository) GetActiveWithGames() ([]models.EventGameMapping, error) {
	var mappings []models.EventGameMapping
	err := r.db.Preload("Game").
		Joins("JOIN games ON games.id = event_game_mappings.game_id").
		Where("event_game_mappings.is_active = ? AND games.is_active = ?", true, true).
		Find(&mappings).Error
	return mappings, err
}

// Update updates a mapping
func (r *GameMappingRepository) Update(mapping *models.EventGameMapping) error {
	return r.db.Save(mapping).Error
}

// Delete deletes a mapping
func (r *GameMappingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EventGameMapping{}, "id = ?", id).Error
}
