package service

import (
	"errors"
	"fmt"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/logger"
	"gamecenter-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameService handles the game catalog and its title mapping patterns.
// Mapping mutations refresh the matcher so new patterns take effect
// without a restart.
type GameService struct {
	repo        repository.GameRepositoryInterface
	mappingRepo repository.GameMappingRepositoryInterface
	matcher     MatcherServiceInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// NewGameService creates a new game service
func NewGameService(
	repo repository.GameRepositoryInterface,
	mappingRepo repository.GameMappingRepositoryInterface,
	matcher MatcherServiceInterface,
	validator *validator.Validate,
) *GameService {
	return &GameService{
		repo:        repo,
		mappingRepo: mappingRepo,
		matcher:     matcher,
		validator:   validator,
		log:         logger.New().WithField("component", "games"),
	}
}

// CreateGameRequest represents the request to create a game
type CreateGameRequest struct {
	Name                string `json:"name" validate:"required,max=200"`
	Category            string `json:"category,omitempty" validate:"max=100"`
	Location            string `json:"location,omitempty" validate:"max=100"`
	AverageDuration     int    `json:"average_duration,omitempty" validate:"omitempty,min=1"`
	MinimumBreakMinutes int    `json:"minimum_break_minutes,omitempty" validate:"min=0"`
}

// UpdateGameRequest represents the request to update a game
type UpdateGameRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Category            *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Location            *string `json:"location,omitempty" validate:"omitempty,max=100"`
	AverageDuration     *int    `json:"average_duration,omitempty" validate:"omitempty,min=1"`
	MinimumBreakMinutes *int    `json:"minimum_break_minutes,omitempty" validate:"omitempty,min=0"`
	IsActive            *bool   `json:"is_active,omitempty"`
}

// GameResponse represents a catalog game
type GameResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Location            string    `json:"location"`
	AverageDuration     int       `json:"average_duration"`
	MinimumBreakMinutes int       `json:"minimum_break_minutes"`
	IsActive            bool      `json:"is_active"`
}

// GameListResponse represents a paginated list of games
type GameListResponse struct {
	Games    []GameResponse `json:"games"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateMappingRequest represents the request to create a title mapping
type CreateMappingRequest struct {
	EventNamePattern string    `json:"event_name_pattern" validate:"required,max=200"`
	GameID           uuid.UUID `json:"game_id" validate:"required"`
}

// MappingResponse represents a title mapping pattern
type MappingResponse struct {
	ID               uuid.UUID `json:"id"`
	EventNamePattern string    `json:"event_name_pattern"`
	GameID           uuid.UUID `json:"game_id"`
	GameName         string    `json:"game_name,omitempty"`
	IsActive         bool      `json:"is_active"`
}

// MappingListResponse represents a paginated list of title mappings
type MappingListResponse struct {
	Mappings []MappingResponse `json:"mappings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CreateGame creates a new catalog game
func (s *GameService) CreateGame(req *CreateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrGameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing game: %w", err)
	}

	game := &models.Game{
		Name:                req.Name,
		Category:            req.Category,
		Location:            req.Location,
		AverageDuration:     req.AverageDuration,
		MinimumBreakMinutes: req.MinimumBreakMinutes,
		IsActive:            true,
	}
	if game.AverageDuration == 0 {
		game.AverageDuration = 60
	}
	if err := s.repo.Create(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return toGameResponse(game), nil
}

// GetGame retrieves a game by ID
func (s *GameService) GetGame(id uuid.UUID) (*GameResponse, error) {
	game, err := s.getGame(id)
	if err != nil {
		return nil, err
	}
	return toGameResponse(game), nil
}

// ListGames retrieves games
func (s *GameService) ListGames(page, pageSize int) (*GameListResponse, error) {
	offset := (page - 1) * pageSize
	games, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	responses := make([]GameResponse, 0, len(games))
	for i := range games {
		responses = append(responses, *toGameResponse(&games[i]))
	}
	return &GameListResponse{Games: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateGame updates a catalog game. Matcher entries carry the game's
// duration and break, so the pattern cache is refreshed too.
func (s *GameService) UpdateGame(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	game, err := s.getGame(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		game.Name = *req.Name
	}
	if req.Category != nil {
		game.Category = *req.Category
	}
	if req.Location != nil {
		game.Location = *req.Location
	}
	if req.AverageDuration != nil {
		game.AverageDuration = *req.AverageDuration
	}
	if req.MinimumBreakMinutes != nil {
		game.MinimumBreakMinutes = *req.MinimumBreakMinutes
	}
	if req.IsActive != nil {
		game.IsActive = *req.IsActive
	}

	if err := s.repo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	s.refreshMatcher()
	return toGameResponse(game), nil
}

// DeleteGame removes a game and, through cascade, its mappings and
// competencies
func (s *GameService) DeleteGame(id uuid.UUID) error {
	if _, err := s.getGame(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	s.refreshMatcher()
	return nil
}

// CreateMapping creates a title mapping pattern
func (s *GameService) CreateMapping(req *CreateMappingRequest) (*MappingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.getGame(req.GameID); err != nil {
		return nil, err
	}

	mapping := &models.EventGameMapping{
		EventNamePattern: req.EventNamePattern,
		GameID:           req.GameID,
		IsActive:         true,
	}
	if err := s.mappingRepo.Create(mapping); err != nil {
		return nil, fmt.Errorf("failed to create mapping: %w", err)
	}
	s.refreshMatcher()
	return toMappingResponse(mapping), nil
}

// ListMappings retrieves title mappings
func (s *GameService) ListMappings(page, pageSize int) (*MappingListResponse, error) {
	offset := (page - 1) * pageSize
	mappings, total, err := s.mappingRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	responses := make([]MappingResponse, 0, len(mappings))
	for i := range mappings {
		responses = append(responses, *toMappingResponse(&mappings[i]))
	}
	return &MappingListResponse{Mappings: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// DeleteMapping removes a title mapping pattern
func (s *GameService) DeleteMapping(id uuid.UUID) error {
	if _, err := s.mappingRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGameMappingNotFound
		}
		return fmt.Errorf("failed to load mapping: %w", err)
	}
	if err := s.mappingRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	s.refreshMatcher()
	return nil
}

func (s *GameService) getGame(id uuid.UUID) (*models.Game, error) {
	game, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return game, nil
}

// refreshMatcher reloads the pattern cache. A failed refresh keeps the
// previous snapshot, which is stale but usable.
func (s *GameService) refreshMatcher() {
	if err := s.matcher.RefreshCache(); err != nil {
		s.log.Warnf("matcher refresh failed: %v", err)
	}
}

func toGameResponse(g *models.Game) *GameResponse {
	return &GameResponse{
		ID:                  g.ID,
		Name:                g.Name,
		Category:            g.Category,
		Location:            g.Location,
		AverageDuration:     g.AverageDuration,
		MinimumBreakMinutes: g.MinimumBreakMinutes,
		IsActive:            g.IsActive,
	}
}

func toMappingResponse(m *models.EventGameMapping) *MappingResponse {
	resp := &MappingResponse{
		ID:               m.ID,
		EventNamePattern: m.EventNamePattern,
		GameID:           m.GameID,
		IsActive:         m.IsActive,
	}
	if m.Game.Name != "" {
		resp.GameName = m.Game.Name
	}
	return resp
}
