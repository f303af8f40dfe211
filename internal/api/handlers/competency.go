package handlers

import (
	"errors"
	"net/http"

	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompetencyHandler handles HTTP requests for competency operations
type CompetencyHandler struct {
	competencyService service.CompetencyServiceInterface
}

// NewCompetencyHandler creates a new competency handler
func NewCompetencyHandler(competencyService service.CompetencyServiceInterface) *CompetencyHandler {
	return &CompetencyHandler{competencyService: competencyService}
}

// CreateCompetency handles POST /competencies
// @Summary Declare a competency
// @Tags competencies
// @Accept json
// @Produce json
// @Param request body service.CreateCompetencyRequest true "Competency to declare"
// @Success 201 {object} service.CompetencyResponse "Successfully declared competency"
// @Failure 404 {object} map[string]interface{} "Game master or game not found"
// @Failure 409 {object} map[string]interface{} "Competency already declared"
// @Security BearerAuth
// @Router /competencies [post]
func (h *CompetencyHandler) CreateCompetency(c *gin.Context) {
	var req service.CreateCompetencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.competencyService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameMasterNotFound) || errors.Is(err, apperrors.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrCompetencyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetGMCompetencies handles GET /game-masters/:id/competencies
// @Summary List a GM's competencies
// @Tags competencies
// @Produce json
// @Param id path string true "Game master ID"
// @Success 200 {array} service.CompetencyResponse "Competencies"
// @Security BearerAuth
// @Router /game-masters/{id}/competencies [get]
func (h *CompetencyHandler) GetGMCompetencies(c *gin.Context) {
	gmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game master ID"})
		return
	}

	resp, err := h.competencyService.GetByGM(gmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCompetency handles PUT /competencies/:id
// @Summary Update a competency
// @Tags competencies
// @Accept json
// @Produce json
// @Param id path string true "Competency ID"
// @Param request body service.UpdateCompetencyRequest true "Fields to update"
// @Success 200 {object} service.CompetencyResponse "Successfully updated competency"
// @Failure 404 {object} map[string]interface{} "Competency not found"
// @Security BearerAuth
// @Router /competencies/{id} [put]
func (h *CompetencyHandler) UpdateCompetency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competency ID"})
		return
	}

	var req service.UpdateCompetencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.competencyService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompetencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCompetency handles DELETE /competencies/:id
// @Summary Delete a competency
// @Tags competencies
// @Produce json
// @Param id path string true "Competency ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted competency"
// @Failure 404 {object} map[string]interface{} "Competency not found"
// @Security BearerAuth
// @Router /competencies/{id} [delete]
func (h *CompetencyHandler) DeleteCompetency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competency ID"})
		return
	}

	if err := h.competencyService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCompetencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Competency deleted successfully"})
}
