package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawtag/internal/model"
)

func TestDogRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogRepository(db)

	registeredAt := time.Now()
	mock.ExpectQuery("INSERT INTO dogs").
		WithArgs(int64(7), "Bantay", "Aspin", "Brown", "Male", 3, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_lost", "registered_at"}).
			AddRow(int64(5), false, registeredAt))

	dog := &model.Dog{
		OwnerID: 7,
		Name:    "Bantay",
		Breed:   "Aspin",
		Color:   "Brown",
		Gender:  "Male",
		Age:     3,
	}
	err := repo.Create(context.Background(), dog)

	require.NoError(t, err)
	assert.Equal(t, int64(5), dog.ID)
	assert.False(t, dog.IsLost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDogRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM dogs").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "breed", "color", "gender", "age", "photo_url", "photo_key", "qr_code_url", "qr_code_key", "is_lost", "registered_at"}))

	dog, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, model.ErrDogNotFound)
	assert.Nil(t, dog)
}

func TestDogRepository_SetQRCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogRepository(db)

	mock.ExpectExec("UPDATE dogs SET qr_code_url").
		WithArgs("http://localhost:8080/static/qr/dog_5.png", "qr/dog_5.png", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetQRCode(context.Background(), 5, "http://localhost:8080/static/qr/dog_5.png", "qr/dog_5.png")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDogRepository_SetQRCode_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogRepository(db)

	mock.ExpectExec("UPDATE dogs SET qr_code_url").
		WithArgs("url", "key", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetQRCode(context.Background(), 99, "url", "key")

	assert.ErrorIs(t, err, model.ErrDogNotFound)
}

func TestDogRepository_SetLost_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogRepository(db)

	mock.ExpectExec("UPDATE dogs SET is_lost").
		WithArgs(true, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetLost(context.Background(), 99, true)

	assert.ErrorIs(t, err, model.ErrDogNotFound)
}

func TestDogRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "breed", "color", "gender", "age", "photo_url", "photo_key", "qr_code_url", "qr_code_key", "is_lost", "registered_at"}).
		AddRow(int64(5), int64(7), "Bantay", "Aspin", "Brown", "Male", 3, nil, nil, nil, nil, false, time.Now()).
		AddRow(int64(6), int64(7), "Whitey", "Shih Tzu", "White", "Female", 2, nil, nil, nil, nil, true, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM dogs").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	dogs, err := repo.ListByOwner(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, "Bantay", dogs[0].Name)
	assert.True(t, dogs[1].IsLost)
	assert.NoError(t, mock.ExpectationsWereMet())
}
