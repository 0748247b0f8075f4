package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawtag/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Maria Santos", "maria@example.com", "hashed", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	user := &model.User{
		FullName:     "Maria Santos",
		Email:        "maria@example.com",
		PasswordHash: "hashed",
	}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash", "contact_number", "address", "created_at"}).
		AddRow(int64(1), "Maria Santos", "maria@example.com", "hashed", "09171234567", nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("maria@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "maria@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", user.FullName)
	require.NotNil(t, user.ContactNumber)
	assert.Equal(t, "09171234567", *user.ContactNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash", "contact_number", "address", "created_at"}))

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash", "contact_number", "address", "created_at"}))

	user, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("maria@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "maria@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
