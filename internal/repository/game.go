package repository

import (
	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new game
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByName retrieves a game by name
func (r *GameRepository) GetByName(name string) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetAll retrieves all games with pagination
func (r *GameRepository) GetAll(limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	if err := r.db.Model(&models.Game{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&games).Error
	return games, total, err
}

// GetActive retrieves all active games
func (r *GameRepository) GetActive() ([]models.Game, error) {
	var games []models.Game
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&games).Error
	return games, err
}

// Update updates a game
func (r *GameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete deletes a game
func (r *GameRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Game{}, "id = ?", id).Error
}
