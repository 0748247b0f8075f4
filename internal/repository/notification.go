package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pawtag/internal/model"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a notification inside the caller's transaction, so a
// vaccine insert and its reminder commit or roll back together.
func (r *notificationRepository) Create(ctx context.Context, tx *sqlx.Tx, userID int64, message string) error {
	query := `
		INSERT INTO notifications (user_id, message, is_read, created_at)
		VALUES ($1, $2, FALSE, NOW())
	`
	_, err := tx.ExecContext(ctx, query, userID, message)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	query := `
		SELECT id, user_id, message, is_read, created_at
		FROM notifications
		WHERE id = $1
	`

	var n model.Notification
	err := r.db.GetContext(ctx, &n, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var notifications []model.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead marks a single notification as read. Ownership is checked by
// the service before this is called.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark notification as read: %w", err)
	}
	return nil
}

// MarkAllAsRead marks all notifications for a user as read.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE
	`
	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("mark all notifications as read: %w", err)
	}
	return nil
}

// GetUnreadCount returns the count of unread notifications.
func (r *notificationRepository) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*) FROM notifications
		WHERE user_id = $1 AND is_read = FALSE
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("get unread count: %w", err)
	}
	return count, nil
}
