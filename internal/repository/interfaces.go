package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"pawtag/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

type DogRepository interface {
	Create(ctx context.Context, dog *model.Dog) error
	GetByID(ctx context.Context, id int64) (*model.Dog, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Dog, error)
	// SetQRCode persists the generated tag reference onto an existing row.
	SetQRCode(ctx context.Context, id int64, url, key string) error
	SetLost(ctx context.Context, id int64, lost bool) error
}

type VaccineRepository interface {
	// Create runs inside the caller's transaction so the vaccine insert
	// and its notification commit or roll back together.
	Create(ctx context.Context, tx *sqlx.Tx, vaccine *model.Vaccine) error
	ListByDog(ctx context.Context, dogID int64) ([]model.Vaccine, error)
	// DueForOwner returns every vaccine of the owner's dogs whose
	// next_due_date is non-null and on or before asOf.
	DueForOwner(ctx context.Context, ownerID int64, asOf time.Time) ([]model.DueReminder, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx *sqlx.Tx, userID int64, message string) error
	GetByID(ctx context.Context, id int64) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	GetUnreadCount(ctx context.Context, userID int64) (int, error)
}
