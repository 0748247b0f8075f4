package model

import (
	"errors"
	"time"
)

// Notification is a stored reminder message for a user. It is created as a
// side effect of adding a vaccine record and only ever mutated by the
// owning user marking it read.
type Notification struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"-"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NotificationListResponse is the notification list plus the unread count
// used for badge display.
type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// MarkReadRequest is the request body for marking notifications as read.
type MarkReadRequest struct {
	NotificationID int64 `json:"notification_id"`
}

var (
	// ErrNotificationNotFound is returned when a notification id does not exist
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrNotNotificationOwner is returned when the caller does not own the notification
	ErrNotNotificationOwner = errors.New("not the owner of this notification")
)
