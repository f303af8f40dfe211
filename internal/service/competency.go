package service

import (
	"errors"
	"fmt"
	"time"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompetencyService handles game master competency records
type CompetencyService struct {
	repo      repository.CompetencyRepositoryInterface
	gmRepo    repository.GameMasterRepositoryInterface
	gameRepo  repository.GameRepositoryInterface
	validator *validator.Validate
}

// NewCompetencyService creates a new competency service
func NewCompetencyService(
	repo repository.CompetencyRepositoryInterface,
	gmRepo repository.GameMasterRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	validator *validator.Validate,
) *CompetencyService {
	return &CompetencyService{repo: repo, gmRepo: gmRepo, gameRepo: gameRepo, validator: validator}
}

// CreateCompetencyRequest represents the request to declare a competency
type CreateCompetencyRequest struct {
	GMID            uuid.UUID  `json:"gm_id" validate:"required"`
	GameID          uuid.UUID  `json:"game_id" validate:"required"`
	CompetencyLevel int        `json:"competency_level" validate:"min=0,max=5"`
	TrainingDate    *time.Time `json:"training_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// UpdateCompetencyRequest represents the request to update a competency
type UpdateCompetencyRequest struct {
	CompetencyLevel *int       `json:"competency_level,omitempty" validate:"omitempty,min=0,max=5"`
	TrainingDate    *time.Time `json:"training_date,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// CompetencyResponse represents a competency record
type CompetencyResponse struct {
	ID              uuid.UUID  `json:"id"`
	GMID            uuid.UUID  `json:"gm_id"`
	GameID          uuid.UUID  `json:"game_id"`
	GameName        string     `json:"game_name,omitempty"`
	CompetencyLevel int        `json:"competency_level"`
	TrainingDate    *time.Time `json:"training_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// Create declares a competency for a (gm, game) pair
func (s *CompetencyService) Create(req *CreateCompetencyRequest) (*CompetencyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.gmRepo.GetByID(req.GMID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameMasterNotFound
		}
		return nil, fmt.Errorf("failed to load game master: %w", err)
	}
	if _, err := s.gameRepo.GetByID(req.GameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	if _, err := s.repo.GetByGMAndGame(req.GMID, req.GameID); err == nil {
		return nil, apperrors.ErrCompetencyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing competency: %w", err)
	}

	competency := &models.GMCompetency{
		GMID:            req.GMID,
		GameID:          req.GameID,
		CompetencyLevel: req.CompetencyLevel,
		TrainingDate:    req.TrainingDate,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(competency); err != nil {
		return nil, fmt.Errorf("failed to create competency: %w", err)
	}
	return toCompetencyResponse(competency), nil
}

// GetByGM lists a GM's competencies
func (s *CompetencyService) GetByGM(gmID uuid.UUID) ([]CompetencyResponse, error) {
	rows, err := s.repo.GetByGM(gmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competencies: %w", err)
	}
	responses := make([]CompetencyResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *toCompetencyResponse(&rows[i]))
	}
	return responses, nil
}

// Update updates a competency record
func (s *CompetencyService) Update(id uuid.UUID, req *UpdateCompetencyRequest) (*CompetencyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	competency, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompetencyNotFound
		}
		return nil, fmt.Errorf("failed to load competency: %w", err)
	}

	if req.CompetencyLevel != nil {
		competency.CompetencyLevel = *req.CompetencyLevel
	}
	if req.TrainingDate != nil {
		competency.TrainingDate = req.TrainingDate
	}
	if req.Notes != nil {
		competency.Notes = *req.Notes
	}

	if err := s.repo.Update(competency); err != nil {
		return nil, fmt.Errorf("failed to update competency: %w", err)
	}
	return toCompetencyResponse(competency), nil
}

// Delete removes a competency record
func (s *CompetencyService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompetencyNotFound
		}
		return fmt.Errorf("failed to delete competency: %w", err)
	}
	return nil
}

func toCompetencyResponse(c *models.GMCompetency) *CompetencyResponse {
	resp := &CompetencyResponse{
		ID:              c.ID,
		GMID:            c.GMID,
		GameID:          c.GameID,
		CompetencyLevel: c.CompetencyLevel,
		TrainingDate:    c.TrainingDate,
		Notes:           c.Notes,
	}
	if c.Game.Name != "" {
		resp.GameName = c.Game.Name
	}
	return resp
}
