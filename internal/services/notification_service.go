package services

import (
	"context"

	"github.com/google/uuid"

	"venu/internal/authz"
	"venu/internal/models/db_models"
	"venu/internal/models/request_models"
	"venu/internal/models/response_models"
	"venu/internal/repositories"
	"venu/pkg/utils"
)

type NotificationServiceInterface interface {
	CreateNotification(ctx context.Context, caller authz.Caller, request request_models.CreateNotificationRequest) error
	ListNotifications(ctx context.Context, caller authz.Caller, page, pageSize int) (*response_models.NotificationListResponse, error)
	MarkRead(ctx context.Context, caller authz.Caller, notificationID string) (int64, error)
	MarkAllRead(ctx context.Context, caller authz.Caller) (int64, error)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

// CreateNotification is trusted: any authenticated caller may address any
// target. The target is never checked against the caller.
func (s *NotificationService) CreateNotification(ctx context.Context, caller authz.Caller, request request_models.CreateNotificationRequest) error {
	if !authz.CanCreateNotification(caller) {
		return utils.ErrForbidden
	}

	userID, err := uuid.Parse(request.UserID)
	if err != nil {
		return utils.ErrAccountNotFound
	}

	n := &db_models.Notification{
		UserID:  userID,
		Type:    db_models.NotificationType(request.Type),
		Title:   request.Title,
		Message: request.Message,
	}
	if request.BookingID != "" {
		bookingID, err := uuid.Parse(request.BookingID)
		if err != nil {
			return utils.ErrBookingNotFound
		}
		n.BookingID = &bookingID
	}

	if err := s.notificationRepo.Insert(ctx, n); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, caller authz.Caller, page, pageSize int) (*response_models.NotificationListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, caller.ID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	unread, err := s.notificationRepo.CountUnread(ctx, caller.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		item := response_models.NotificationResponse{
			ID:        n.ID.String(),
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.BookingID != nil {
			id := n.BookingID.String()
			item.BookingID = &id
		}
		items = append(items, item)
	}

	return &response_models.NotificationListResponse{Items: items, Unread: unread}, nil
}

// MarkRead returns the number of rows written. The write is scoped to the
// caller's own rows, so targeting someone else's notification writes zero
// rows without an error.
func (s *NotificationService) MarkRead(ctx context.Context, caller authz.Caller, notificationID string) (int64, error) {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return 0, utils.ErrNotificationNotFound
	}

	rows, err := s.notificationRepo.MarkRead(ctx, id, caller.ID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return rows, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, caller authz.Caller) (int64, error) {
	rows, err := s.notificationRepo.MarkAllRead(ctx, caller.ID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return rows, nil
}
