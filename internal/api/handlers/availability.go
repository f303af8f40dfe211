package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for availability declarations
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// DeclareAvailability handles POST /availabilities
// @Summary Declare availability
// @Description Declare a GM's slots for a date, replacing any previous declaration
// @Tags availabilities
// @Accept json
// @Produce json
// @Param request body service.DeclareAvailabilityRequest true "Availability declaration"
// @Success 200 {object} service.AvailabilityResponse "Successfully declared availability"
// @Failure 400 {object} map[string]interface{} "Invalid slot token"
// @Failure 404 {object} map[string]interface{} "Game master not found"
// @Security BearerAuth
// @Router /availabilities [post]
func (h *AvailabilityHandler) DeclareAvailability(c *gin.Context) {
	var req service.DeclareAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.availabilityService.Declare(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameMasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidTimeFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetGMAvailability handles GET /game-masters/:id/availabilities
// @Summary List a GM's availability
// @Tags availabilities
// @Produce json
// @Param id path string true "Game master ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} service.AvailabilityResponse "Declarations in range"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /game-masters/{id}/availabilities [get]
func (h *AvailabilityHandler) GetGMAvailability(c *gin.Context) {
	gmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game master ID"})
		return
	}
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
		return
	}

	resp, err := h.availabilityService.GetByGM(gmID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAvailabilityByDate handles GET /availabilities
// @Summary List declarations for a date
// @Tags availabilities
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} service.AvailabilityResponse "Declarations for the date"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Security BearerAuth
// @Router /availabilities [get]
func (h *AvailabilityHandler) GetAvailabilityByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	resp, err := h.availabilityService.GetByDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAvailability handles DELETE /availabilities/:id
// @Summary Delete a declaration
// @Tags availabilities
// @Produce json
// @Param id path string true "Availability ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted declaration"
// @Failure 404 {object} map[string]interface{} "Declaration not found"
// @Security BearerAuth
// @Router /availabilities/{id} [delete]
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability ID"})
		return
	}

	if err := h.availabilityService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrAvailabilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted successfully"})
}
