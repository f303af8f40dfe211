package service

import (
	"encoding/json"
	"fmt"

	"gamecenter-backend/internal/database/models"
	"gamecenter-backend/internal/logger"
	"gamecenter-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmailSender is the outbound email boundary of the dispatcher. Transport
// failures stay inside the dispatcher; callers never see them.
type EmailSender interface {
	Send(to, subject, body string) error
}

// NotificationService creates notification rows and pushes the email
// channel. Dispatch is fire-and-forget relative to assignment operations.
type NotificationService struct {
	repo   repository.NotificationRepositoryInterface
	emails EmailSender
	log    *logger.Logger
}

// NewNotificationService creates a new notification service. emails may be
// nil, which disables the email channel.
func NewNotificationService(repo repository.NotificationRepositoryInterface, emails EmailSender) *NotificationService {
	return &NotificationService{
		repo:   repo,
		emails: emails,
		log:    logger.New().WithField("component", "notifications"),
	}
}

// NotificationResponse represents a notification returned to the UI
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	GMID      uuid.UUID               `json:"gm_id"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	EventData json.RawMessage         `json:"event_data,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt string                  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// activitySnapshot is the event_data payload stored with a notification
type activitySnapshot struct {
	ActivityID uuid.UUID `json:"activity_id"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

// Dispatch records a notification for the GM and pushes the email channel
// in the background. Failures are logged and swallowed: by the time a
// notification is dispatched the assignment change has already committed.
func (s *NotificationService) Dispatch(gm *models.GameMaster, notifType models.NotificationType, activity *models.Activity) {
	title, message := composeMessage(notifType, activity)

	snapshot, err := json.Marshal(activitySnapshot{
		ActivityID: activity.ID,
		Title:      activity.Title,
		Date:       activity.Date.Format("2006-01-02"),
		StartTime:  activity.StartTime,
		EndTime:    activity.EndTime,
	})
	if err != nil {
		s.log.WithField("gm_id", gm.ID).Errorf("failed to snapshot activity: %v", err)
		snapshot = nil
	}

	notification := &models.Notification{
		GMID:      gm.ID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		EventData: datatypes.JSON(snapshot),
	}
	if err := s.repo.Create(notification); err != nil {
		s.log.WithFields(map[string]interface{}{
			"gm_id": gm.ID,
			"type":  notifType,
		}).Errorf("failed to create notification: %v", err)
		return
	}

	if s.emails != nil {
		email := gm.Email
		go func() {
			if err := s.emails.Send(email, title, message); err != nil {
				s.log.WithField("gm_id", gm.ID).Warnf("failed to send notification email: %v", err)
			}
		}()
	}
}

// List retrieves the notifications of a game master
func (s *NotificationService) List(gmID uuid.UUID, page, pageSize int) (*NotificationListResponse, error) {
	offset := (page - 1) * pageSize
	notifications, total, err := s.repo.GetByGM(gmID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *toNotificationResponse(&notifications[i]))
	}

	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// UnreadCount counts the unread notifications of a game master
func (s *NotificationService) UnreadCount(gmID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(gmID)
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(id, gmID uuid.UUID) error {
	return s.repo.MarkRead(id, gmID)
}

// MarkAllRead marks all notifications of a game master as read
func (s *NotificationService) MarkAllRead(gmID uuid.UUID) error {
	return s.repo.MarkAllRead(gmID)
}

func composeMessage(notifType models.NotificationType, activity *models.Activity) (title, message string) {
	window := fmt.Sprintf("%s %s-%s", activity.Date.Format("2006-01-02"), activity.StartTime, activity.EndTime)
	switch notifType {
	case models.NotificationTypeAssignment:
		return "New assignment", fmt.Sprintf("You have been assigned to %q on %s", activity.Title, window)
	case models.NotificationTypeUnassigned:
		return "Assignment removed", fmt.Sprintf("You have been unassigned from %q on %s", activity.Title, window)
	case models.NotificationTypeCancelled:
		return "Event cancelled", fmt.Sprintf("%q on %s has been cancelled", activity.Title, window)
	case models.NotificationTypeModified:
		return "Event updated", fmt.Sprintf("%q on %s has been updated", activity.Title, window)
	default:
		return "Planning update", fmt.Sprintf("%q on %s has changed", activity.Title, window)
	}
}

func toNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		GMID:      n.GMID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		EventData: json.RawMessage(n.EventData),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
