package service

import (
	"errors"
	"fmt"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GameMasterService handles business logic for game master accounts
type GameMasterService struct {
	repo      repository.GameMasterRepositoryInterface
	validator *validator.Validate
}

// NewGameMasterService creates a new game master service
func NewGameMasterService(repo repository.GameMasterRepositoryInterface, validator *validator.Validate) *GameMasterService {
	return &GameMasterService{repo: repo, validator: validator}
}

// CreateGameMasterRequest represents the request to create a game master
type CreateGameMasterRequest struct {
	FirstName   string                `json:"first_name" validate:"required,max=100"`
	LastName    string                `json:"last_name" validate:"required,max=100"`
	Email       string                `json:"email" validate:"required,email,max=255"`
	PhoneNumber string                `json:"phone_number,omitempty" validate:"max=20"`
	Role        models.GameMasterRole `json:"role,omitempty"`
	Password    string                `json:"password" validate:"required,min=8"`
}

// UpdateGameMasterRequest represents the request to update a game master
type UpdateGameMasterRequest struct {
	FirstName   *string                `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string                `json:"last_name,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string                `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Role        *models.GameMasterRole `json:"role,omitempty"`
	Password    *string                `json:"password,omitempty" validate:"omitempty,min=8"`
	IsActive    *bool                  `json:"is_active,omitempty"`
}

// GameMasterResponse represents a game master returned to the UI
type GameMasterResponse struct {
	ID          uuid.UUID             `json:"id"`
	FirstName   string                `json:"first_name"`
	LastName    string                `json:"last_name"`
	FullName    string                `json:"full_name"`
	Email       string                `json:"email"`
	PhoneNumber string                `json:"phone_number"`
	Role        models.GameMasterRole `json:"role"`
	IsActive    bool                  `json:"is_active"`
}

// GameMasterListResponse represents a paginated list of game masters
type GameMasterListResponse struct {
	GameMasters []GameMasterResponse `json:"game_masters"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new game master account
func (s *GameMasterService) Create(req *CreateGameMasterRequest) (*GameMasterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrGameMasterExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing game master: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.GameMasterRoleGM
	}

	gm := &models.GameMaster{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.repo.Create(gm); err != nil {
		return nil, fmt.Errorf("failed to create game master: %w", err)
	}

	return toGameMasterResponse(gm), nil
}

// GetByID retrieves a game master by ID
func (s *GameMasterService) GetByID(id uuid.UUID) (*GameMasterResponse, error) {
	gm, err := s.getGameMaster(id)
	if err != nil {
		return nil, err
	}
	return toGameMasterResponse(gm), nil
}

// List retrieves game masters, optionally restricted to active accounts
func (s *GameMasterService) List(activeOnly bool, page, pageSize int) (*GameMasterListResponse, error) {
	offset := (page - 1) * pageSize

	var gms []models.GameMaster
	var total int64
	var err error
	if activeOnly {
		gms, total, err = s.repo.GetActive(pageSize, offset)
	} else {
		gms, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list game masters: %w", err)
	}

	responses := make([]GameMasterResponse, 0, len(gms))
	for i := range gms {
		responses = append(responses, *toGameMasterResponse(&gms[i]))
	}
	return &GameMasterListResponse{
		GameMasters: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a game master account
func (s *GameMasterService) Update(id uuid.UUID, req *UpdateGameMasterRequest) (*GameMasterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	gm, err := s.getGameMaster(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		gm.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		gm.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		gm.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		gm.Role = *req.Role
	}
	if req.IsActive != nil {
		gm.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		gm.PasswordHash = string(hash)
	}

	if err := s.repo.Update(gm); err != nil {
		return nil, fmt.Errorf("failed to update game master: %w", err)
	}
	return toGameMasterResponse(gm), nil
}

// Deactivate marks a game master inactive without removing history
func (s *GameMasterService) Deactivate(id uuid.UUID) error {
	gm, err := s.getGameMaster(id)
	if err != nil {
		return err
	}
	gm.IsActive = false
	if err := s.repo.Update(gm); err != nil {
		return fmt.Errorf("failed to deactivate game master: %w", err)
	}
	return nil
}

func (s *GameMasterService) getGameMaster(id uuid.UUID) (*models.GameMaster, error) {
	gm, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameMasterNotFound
		}
		return nil, fmt.Errorf("failed to load game master: %w", err)
	}
	return gm, nil
}

func toGameMasterResponse(gm *models.GameMaster) *GameMasterResponse {
	return &GameMasterResponse{
		ID:          gm.ID,
		FirstName:   gm.FirstName,
		LastName:    gm.LastName,
		FullName:    gm.FullName(),
		Email:       gm.Email,
		PhoneNumber: gm.PhoneNumber,
		Role:        gm.Role,
		IsActive:    gm.IsActive,
	}
}
