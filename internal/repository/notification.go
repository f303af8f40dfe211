package repository

import (
	"gamecenter-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetByGM retrieves the notifications of a game master, newest first
func (r *NotificationRepository) GetByGM(gmID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("gm_id = ?", gmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("gm_id = ?", gmID).Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&notifications).Error
	return notifications, total, err
}

// CountUnread counts the unread notifications of a game master
func (r *NotificationRepository) CountUnread(gmID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("gm_id = ? AND is_read = ?", gmID, false).Count(&count).Error
	return count, err
}

// MarkRead marks one notification of a game master as read
func (r *NotificationRepository) MarkRead(id, gmID uuid.UUID) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND gm_id = ?", id, gmID).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllRead marks all notifications of a game master as read
func (r *NotificationRepository) MarkAllRead(gmID uuid.UUID) error {
	return r.db.Model(&models.Notification{}).
		Where("gm_id = ? AND is_read = ?", gmID, false).Update("is_read", true).Error
}
