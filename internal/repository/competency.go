package repository

import (
	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompetencyRepository handles database operations for GM competencies
type CompetencyRepository struct {
	db *gorm.DB
}

// NewCompetencyRepository creates a new competency repository
func NewCompetencyRepository(db *gorm.DB) *CompetencyRepository {
	return &CompetencyRepository{db: db}
}

// Create creates a new competency
func (r *CompetencyRepository) Create(competency *models.GMCompetency) error {
	return r.db.Create(competency).Error
}

// GetByID retrieves a competency by ID
func (r *CompetencyRepository) GetByID(id uuid.UUID) (*models.GMCompetency, error) {
	var competency models.GMCompetency
	err := r.db.First(&competency, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// GetByGM retrieves all competencies of a game master
func (r *CompetencyRepository) GetByGM(gmID uuid.UUID) ([]models.GMCompetency, error) {
	var competencies []models.GMCompetency
	err := r.db.Preload("Game").Where("gm_id = ?", gmID).
		Order("competency_level DESC").Find(&competencies).Error
	return competencies, err
}

// GetByGame retrieves the competencies declared on a game at or above the
// given level, best first. Used to rank assignment candidates.
func (r *CompetencyRepository) GetByGame(gameID uuid.UUID, minLevel int) ([]models.GMCompetency, error) {
	var competencies []models.GMCompetency
	err := r.db.Preload("GameMaster").
		Where("game_id = ? AND competency_level >= ?", gameID, minLevel).
		Order("competency_level DESC").Find(&competencies).Error
	return competencies, err
}

// GetByGMAndGame retrieves a single competency pair
func (r *CompetencyRepository) GetByGMAndGame(gmID, gameID uuid.UUID) (*models.GMCompetency, error) {
	var competency models.GMCompetency
	err := r.db.First(&competency, "gm_id = ? AND game_id = ?", gmID, gameID).Error
	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// Update updates a competency
func (r *CompetencyRepository) Update(competency *models.GMCompetency) error {
	return r.db.Save(competency).Error
}

// Delete deletes a competency
func (r *CompetencyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GMCompetency{}, "id = ?", id).Error
}
