package handlers

import (
	"errors"
	"net/http"

	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameMasterHandler handles HTTP requests for game master operations
type GameMasterHandler struct {
	gmService service.GameMasterServiceInterface
}

// NewGameMasterHandler creates a new game master handler
func NewGameMasterHandler(gmService service.GameMasterServiceInterface) *GameMasterHandler {
	return &GameMasterHandler{gmService: gmService}
}

// CreateGameMaster handles POST /game-masters
// @Summary Create a game master
// @Tags game-masters
// @Accept json
// @Produce json
// @Param request body service.CreateGameMasterRequest true "Game master to create"
// @Success 201 {object} service.GameMasterResponse "Successfully created game master"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already in use"
// @Security BearerAuth
// @Router /game-masters [post]
func (h *GameMasterHandler) CreateGameMaster(c *gin.Context) {
	var req service.CreateGameMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gmService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameMasterExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetGameMaster handles GET /game-masters/:id
// @Summary Get a game master
// @Tags game-masters
// @Produce json
// @Param id path string true "Game master ID"
// @Success 200 {object} service.GameMasterResponse "Successfully retrieved game master"
// @Failure 404 {object} map[string]interface{} "Game master not found"
// @Security BearerAuth
// @Router /game-masters/{id} [get]
func (h *GameMasterHandler) GetGameMaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game master ID"})
		return
	}

	resp, err := h.gmService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameMasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListGameMasters handles GET /game-masters
// @Summary List game masters
// @Tags game-masters
// @Produce json
// @Param active query bool false "Only active accounts"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.GameMasterListResponse "Successfully retrieved game masters"
// @Security BearerAuth
// @Router /game-masters [get]
func (h *GameMasterHandler) ListGameMasters(c *gin.Context) {
	page, pageSize := pagination(c)
	activeOnly := c.Query("active") == "true"

	resp, err := h.gmService.List(activeOnly, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateGameMaster handles PUT /game-masters/:id
// @Summary Update a game master
// @Tags game-masters
// @Accept json
// @Produce json
// @Param id path string true "Game master ID"
// @Param request body service.UpdateGameMasterRequest true "Fields to update"
// @Success 200 {object} service.GameMasterResponse "Successfully updated game master"
// @Failure 404 {object} map[string]interface{} "Game master not found"
// @Security BearerAuth
// @Router /game-masters/{id} [put]
func (h *GameMasterHandler) UpdateGameMaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game master ID"})
		return
	}

	var req service.UpdateGameMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gmService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameMasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeactivateGameMaster handles DELETE /game-masters/:id
// @Summary Deactivate a game master
// @Description Mark an account inactive; assignment history is preserved
// @Tags game-masters
// @Produce json
// @Param id path string true "Game master ID"
// @Success 200 {object} map[string]interface{} "Successfully deactivated game master"
// @Failure 404 {object} map[string]interface{} "Game master not found"
// @Security BearerAuth
// @Router /game-masters/{id} [delete]
func (h *GameMasterHandler) DeactivateGameMaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game master ID"})
		return
	}

	if err := h.gmService.Deactivate(id); err != nil {
		if errors.Is(err, apperrors.ErrGameMasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game master deactivated successfully"})
}
