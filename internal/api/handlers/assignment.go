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

// AssignmentHandler handles HTTP requests for event assignments
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
	conflictService   service.ConflictServiceInterface
	activityService   service.ActivityServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(
	assignmentService service.AssignmentServiceInterface,
	conflictService service.ConflictServiceInterface,
	activityService service.ActivityServiceInterface,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		conflictService:   conflictService,
		activityService:   activityService,
	}
}

// AssignRequest represents the request to assign a GM to an activity
type AssignRequest struct {
	GMID uuid.UUID `json:"gm_id" binding:"required"`
}

// AssignGameMaster handles POST /activities/:id/assignments
// @Summary Assign a GM to an activity
// @Description Append a GM to the activity's assignment list; conflicts never block
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body handlers.AssignRequest true "GM to assign"
// @Success 201 {object} service.AssignResult "Successfully assigned"
// @Failure 404 {object} map[string]interface{} "Activity or GM not found"
// @Failure 409 {object} map[string]interface{} "GM already assigned"
// @Security BearerAuth
// @Router /activities/{id}/assignments [post]
func (h *AssignmentHandler) AssignGameMaster(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.assignmentService.Assign(activityID, req.GMID)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) || errors.Is(err, apperrors.ErrGameMasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrGMAlreadyAssigned) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrGMInactive) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UnassignGameMaster handles DELETE /activities/:id/assignments/:gmId
// @Summary Unassign a GM from an activity
// @Description Remove one GM; remaining GMs keep their assignment order
// @Tags assignments
// @Produce json
// @Param id path string true "Activity ID"
// @Param gmId path string true "Game master ID"
// @Success 200 {object} service.AssignResult "Successfully unassigned"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /activities/{id}/assignments/{gmId} [delete]
func (h *AssignmentHandler) UnassignGameMaster(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}
	gmID, err := uuid.Parse(c.Param("gmId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game master ID"})
		return
	}

	result, err := h.assignmentService.Unassign(activityID, gmID)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) || errors.Is(err, apperrors.ErrGMNotAssigned) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UnassignAll handles DELETE /activities/:id/assignments
// @Summary Unassign every GM from an activity
// @Description Remove all assignments; succeeds even when none exist
// @Tags assignments
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} service.AssignResult "Successfully cleared assignments"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id}/assignments [delete]
func (h *AssignmentHandler) UnassignAll(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	result, err := h.assignmentService.UnassignAll(activityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAssignments handles GET /activities/:id/assignments
// @Summary List an activity's assignments
// @Description List assignments in assignment order; the first is primary
// @Tags assignments
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {array} service.AssignmentResponse "Assignments in order"
// @Security BearerAuth
// @Router /activities/{id}/assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	assignments, err := h.assignmentService.GetByActivity(activityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// CheckConflicts handles GET /activities/:id/conflicts
// @Summary Check GM availability for an activity
// @Description Report availability status, overlaps and break violations for a candidate GM. The window defaults to the stored activity; query parameters override it for edit flows.
// @Tags assignments
// @Produce json
// @Param id path string true "Activity ID"
// @Param gm_id query string true "Game master ID"
// @Param date query string false "Date override (YYYY-MM-DD)"
// @Param start_time query string false "Start time override (HH:MM)"
// @Param end_time query string false "End time override (HH:MM)"
// @Param game_id query string false "Game override"
// @Success 200 {object} service.ConflictReport "Conflict report"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id}/conflicts [get]
func (h *AssignmentHandler) CheckConflicts(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}
	gmID, err := uuid.Parse(c.Query("gm_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game master ID"})
		return
	}

	dateStr := c.Query("date")
	startTime := c.Query("start_time")
	endTime := c.Query("end_time")
	gameIDStr := c.Query("game_id")

	var gameID *uuid.UUID
	if gameIDStr != "" {
		parsed, err := uuid.Parse(gameIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
			return
		}
		gameID = &parsed
	}

	// Whatever the caller leaves out comes from the stored activity
	if dateStr == "" || startTime == "" || endTime == "" || gameIDStr == "" {
		activity, err := h.activityService.GetByID(activityID)
		if err != nil {
			if errors.Is(err, apperrors.ErrActivityNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if dateStr == "" {
			dateStr = activity.Date
		}
		if startTime == "" {
			startTime = activity.StartTime
		}
		if endTime == "" {
			endTime = activity.EndTime
		}
		if gameIDStr == "" {
			gameID = activity.GameID
		}
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	report, err := h.conflictService.CheckGMAvailabilityConflicts(
		gmID, date, startTime, endTime, gameID, &activityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTimeRange) || errors.Is(err, apperrors.ErrInvalidTimeFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
