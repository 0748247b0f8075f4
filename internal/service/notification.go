package service

import (
	"context"

	"pawtag/internal/model"
	"pawtag/internal/repository"
)

// NotificationService handles the in-app reminder inbox. Reminders are
// created by VaccineService as a transactional side effect; this service
// only reads them and flips the read flag.
type NotificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// List returns the user's notifications plus the unread count for badge
// display.
func (s *NotificationService) List(ctx context.Context, userID int64, limit int) (*model.NotificationListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	notifications, err := s.notifRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one notification read. Only the owning user may do so.
func (s *NotificationService) MarkRead(ctx context.Context, requesterID, notificationID int64) error {
	notification, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != requesterID {
		return model.ErrNotNotificationOwner
	}
	return s.notifRepo.MarkAsRead(ctx, notificationID)
}

// MarkAllRead marks every notification of the user read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.notifRepo.GetUnreadCount(ctx, userID)
}
