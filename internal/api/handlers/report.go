package handlers

import (
	"errors"
	"net/http"

	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for workload reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// MonthlyHours handles GET /reports/monthly-hours
// @Summary Monthly hour report
// @Description Per-GM assigned minutes and activity counts for a month
// @Tags reports
// @Produce json
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} service.MonthlyHoursResponse "Monthly hour report"
// @Failure 400 {object} map[string]interface{} "Invalid period"
// @Security BearerAuth
// @Router /reports/monthly-hours [get]
func (h *ReportHandler) MonthlyHours(c *gin.Context) {
	period := c.Query("period")
	if period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period is required"})
		return
	}

	resp, err := h.reportService.MonthlyHours(period)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPeriodFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
