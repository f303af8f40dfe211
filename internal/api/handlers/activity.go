package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for activity operations
type ActivityHandler struct {
	activityService   service.ActivityServiceInterface
	suggestionService service.SuggestionServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(
	activityService service.ActivityServiceInterface,
	suggestionService service.SuggestionServiceInterface,
) *ActivityHandler {
	return &ActivityHandler{
		activityService:   activityService,
		suggestionService: suggestionService,
	}
}

// CreateActivity handles POST /activities
// @Summary Create an activity
// @Description Create an activity; game and duration are inferred from the title when omitted
// @Tags activities
// @Accept json
// @Produce json
// @Param request body service.CreateActivityRequest true "Activity to create"
// @Success 201 {object} service.ActivityResponse "Successfully created activity"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.activityService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTimeRange) || errors.Is(err, apperrors.ErrInvalidTimeFormat) ||
			errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetActivity handles GET /activities/:id
// @Summary Get an activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} service.ActivityResponse "Successfully retrieved activity"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	resp, err := h.activityService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListActivities handles GET /activities
// @Summary List activities
// @Description List activities with pagination, optionally restricted to a date range
// @Tags activities
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.ActivityListResponse "Successfully retrieved activities"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Security BearerAuth
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	page, pageSize := pagination(c)

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
		from = &parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
		to = &parsed
	}
	if (from == nil) != (to == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to are required for a date range"})
		return
	}

	resp, err := h.activityService.List(from, to, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListUnassignedActivities handles GET /activities/unassigned
// @Summary List unassigned activities
// @Description List pending activities with no assignment, oldest date first
// @Tags activities
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.ActivityListResponse "Successfully retrieved activities"
// @Security BearerAuth
// @Router /activities/unassigned [get]
func (h *ActivityHandler) ListUnassignedActivities(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.activityService.ListUnassigned(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateActivity handles PUT /activities/:id
// @Summary Update an activity
// @Description Update activity fields; assigned GMs are notified of the change
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body service.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} service.ActivityResponse "Successfully updated activity"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.activityService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidTimeRange) || errors.Is(err, apperrors.ErrInvalidTimeFormat) ||
			errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateActivityStatus handles PATCH /activities/:id/status
// @Summary Update activity status
// @Description Transition an activity's status; cancelling notifies assigned GMs
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body handlers.UpdateStatusRequest true "New status"
// @Success 200 {object} service.ActivityResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id}/status [patch]
func (h *ActivityHandler) UpdateActivityStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.activityService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteActivity handles DELETE /activities/:id
// @Summary Delete an activity
// @Description Mark an activity deleted and remove its assignments
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted activity"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	if err := h.activityService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

// SuggestGameMasters handles GET /activities/:id/suggestions
// @Summary Suggest GMs for an activity
// @Description Rank candidate GMs by competency and availability for an activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} service.SuggestionResponse "Ranked candidates"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id}/suggestions [get]
func (h *ActivityHandler) SuggestGameMasters(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	resp, err := h.suggestionService.SuggestGMs(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStatusRequest represents the request to transition an activity status
type UpdateStatusRequest struct {
	Status models.ActivityStatus `json:"status" binding:"required"`
}

// pagination parses the shared page/page_size query parameters
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return page, pageSize
}
