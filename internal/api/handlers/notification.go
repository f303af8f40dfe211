package handlers

import (
	"errors"
	"net/http"

	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles HTTP requests for notification reads
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// authenticatedGM extracts the GM ID set by the auth middleware
func authenticatedGM(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}
	return id, true
}

// ListNotifications handles GET /notifications
// @Summary List the caller's notifications
// @Description List notifications for the authenticated GM, newest first
// @Tags notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.NotificationListResponse "Notifications"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	gmID, ok := authenticatedGM(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.notificationService.List(gmID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UnreadCount handles GET /notifications/unread-count
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Unread count"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	gmID, ok := authenticatedGM(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(gmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// MarkRead handles PATCH /notifications/:id/read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]interface{} "Marked read"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	gmID, ok := authenticatedGM(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	if err := h.notificationService.MarkRead(id, gmID); err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead handles POST /notifications/read-all
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Marked all read"
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	gmID, ok := authenticatedGM(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(gmID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
