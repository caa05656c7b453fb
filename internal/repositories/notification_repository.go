package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venu/internal/models/db_models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *db_models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead scopes the write to the target user: marking a row addressed
	// to someone else writes zero rows.
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&n).Error
	return n, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
