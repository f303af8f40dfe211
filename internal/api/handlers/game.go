package handlers

import (
	"errors"
	"net/http"

	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler handles HTTP requests for the game catalog and title mappings
type GameHandler struct {
	gameService    service.GameServiceInterface
	matcherService service.MatcherServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface, matcherService service.MatcherServiceInterface) *GameHandler {
	return &GameHandler{gameService: gameService, matcherService: matcherService}
}

// CreateGame handles POST /games
// @Summary Create a game
// @Tags games
// @Accept json
// @Produce json
// @Param request body service.CreateGameRequest true "Game to create"
// @Success 201 {object} service.GameResponse "Successfully created game"
// @Failure 409 {object} map[string]interface{} "Game name already exists"
// @Security BearerAuth
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gameService.CreateGame(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetGame handles GET /games/:id
// @Summary Get a game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} service.GameResponse "Successfully retrieved game"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	resp, err := h.gameService.GetGame(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListGames handles GET /games
// @Summary List games
// @Tags games
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.GameListResponse "Successfully retrieved games"
// @Security BearerAuth
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.gameService.ListGames(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateGame handles PUT /games/:id
// @Summary Update a game
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body service.UpdateGameRequest true "Fields to update"
// @Success 200 {object} service.GameResponse "Successfully updated game"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var req service.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gameService.UpdateGame(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteGame handles DELETE /games/:id
// @Summary Delete a game
// @Description Delete a game; its mappings and competencies cascade
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted game"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := h.gameService.DeleteGame(id); err != nil {
		if errors.Is(err, apperrors.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

// MatchGame handles GET /games/match
// @Summary Match a title to a game
// @Description Resolve a free-text event title against the mapping patterns
// @Tags games
// @Produce json
// @Param title query string true "Event title to match"
// @Success 200 {object} service.GameMatch "Match result; game_id is null when nothing matched"
// @Failure 400 {object} map[string]interface{} "Missing title"
// @Security BearerAuth
// @Router /games/match [get]
func (h *GameHandler) MatchGame(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}

	match, err := h.matcherService.FindMatchingGame(title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}

// CreateMapping handles POST /game-mappings
// @Summary Create a title mapping
// @Description Map an event title substring to a game for the matcher
// @Tags game-mappings
// @Accept json
// @Produce json
// @Param request body service.CreateMappingRequest true "Mapping to create"
// @Success 201 {object} service.MappingResponse "Successfully created mapping"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /game-mappings [post]
func (h *GameHandler) CreateMapping(c *gin.Context) {
	var req service.CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gameService.CreateMapping(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMappings handles GET /game-mappings
// @Summary List title mappings
// @Tags game-mappings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.MappingListResponse "Successfully retrieved mappings"
// @Security BearerAuth
// @Router /game-mappings [get]
func (h *GameHandler) ListMappings(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.gameService.ListMappings(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteMapping handles DELETE /game-mappings/:id
// @Summary Delete a title mapping
// @Tags game-mappings
// @Produce json
// @Param id path string true "Mapping ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted mapping"
// @Failure 404 {object} map[string]interface{} "Mapping not found"
// @Security BearerAuth
// @Router /game-mappings/{id} [delete]
func (h *GameHandler) DeleteMapping(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mapping ID"})
		return
	}

	if err := h.gameService.DeleteMapping(id); err != nil {
		if errors.Is(err, apperrors.ErrGameMappingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mapping deleted successfully"})
}
