package service

// Hand-rolled mocks over the repository interfaces. Each test sets only
// the function fields it cares about; unset fields fall back to
// not-found / no-op behavior.

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"pawtag/internal/model"
)

type mockUserRepository struct {
	createFn        func(ctx context.Context, user *model.User) error
	getByIDFn       func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*model.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)

	createCalls []*model.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

type mockDogRepository struct {
	createFn      func(ctx context.Context, dog *model.Dog) error
	getByIDFn     func(ctx context.Context, id int64) (*model.Dog, error)
	listByOwnerFn func(ctx context.Context, ownerID int64) ([]model.Dog, error)
	setQRCodeFn   func(ctx context.Context, id int64, url, key string) error
	setLostFn     func(ctx context.Context, id int64, lost bool) error

	setQRCodeCalls int
}

func (m *mockDogRepository) Create(ctx context.Context, dog *model.Dog) error {
	if m.createFn != nil {
		return m.createFn(ctx, dog)
	}
	return nil
}

func (m *mockDogRepository) GetByID(ctx context.Context, id int64) (*model.Dog, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrDogNotFound
}

func (m *mockDogRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Dog, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockDogRepository) SetQRCode(ctx context.Context, id int64, url, key string) error {
	m.setQRCodeCalls++
	if m.setQRCodeFn != nil {
		return m.setQRCodeFn(ctx, id, url, key)
	}
	return nil
}

func (m *mockDogRepository) SetLost(ctx context.Context, id int64, lost bool) error {
	if m.setLostFn != nil {
		return m.setLostFn(ctx, id, lost)
	}
	return nil
}

type mockNotificationRepository struct {
	createFn         func(ctx context.Context, tx *sqlx.Tx, userID int64, message string) error
	getByIDFn        func(ctx context.Context, id int64) (*model.Notification, error)
	listByUserFn     func(ctx context.Context, userID int64, limit int) ([]model.Notification, error)
	markAsReadFn     func(ctx context.Context, id int64) error
	markAllAsReadFn  func(ctx context.Context, userID int64) error
	getUnreadCountFn func(ctx context.Context, userID int64) (int, error)

	markAsReadCalls []int64
}

func (m *mockNotificationRepository) Create(ctx context.Context, tx *sqlx.Tx, userID int64, message string) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, userID, message)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrNotificationNotFound
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	m.markAsReadCalls = append(m.markAsReadCalls, id)
	if m.markAsReadFn != nil {
		return m.markAsReadFn(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	if m.markAllAsReadFn != nil {
		return m.markAllAsReadFn(ctx, userID)
	}
	return nil
}

func (m *mockNotificationRepository) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	if m.getUnreadCountFn != nil {
		return m.getUnreadCountFn(ctx, userID)
	}
	return 0, nil
}

type mockVaccineRepository struct {
	createFn      func(ctx context.Context, tx *sqlx.Tx, vaccine *model.Vaccine) error
	listByDogFn   func(ctx context.Context, dogID int64) ([]model.Vaccine, error)
	dueForOwnerFn func(ctx context.Context, ownerID int64, asOf time.Time) ([]model.DueReminder, error)
}

func (m *mockVaccineRepository) Create(ctx context.Context, tx *sqlx.Tx, vaccine *model.Vaccine) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, vaccine)
	}
	return nil
}

func (m *mockVaccineRepository) ListByDog(ctx context.Context, dogID int64) ([]model.Vaccine, error) {
	if m.listByDogFn != nil {
		return m.listByDogFn(ctx, dogID)
	}
	return nil, nil
}

func (m *mockVaccineRepository) DueForOwner(ctx context.Context, ownerID int64, asOf time.Time) ([]model.DueReminder, error) {
	if m.dueForOwnerFn != nil {
		return m.dueForOwnerFn(ctx, ownerID, asOf)
	}
	return nil, nil
}
