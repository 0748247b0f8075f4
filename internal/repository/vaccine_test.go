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

func TestVaccineRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaccineRepository(db)

	dateGiven := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	nextDue := dateGiven.AddDate(0, 0, 365)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO vaccines").
		WithArgs(int64(5), "Rabies", dateGiven, nextDue, "Dr. Cruz", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), time.Now()))

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	vaccine := &model.Vaccine{
		DogID:       5,
		VaccineName: "Rabies",
		DateGiven:   dateGiven,
		NextDueDate: &nextDue,
		VetName:     "Dr. Cruz",
	}
	err = repo.Create(context.Background(), tx, vaccine)

	require.NoError(t, err)
	assert.Equal(t, int64(42), vaccine.ID)
}

func TestVaccineRepository_DueForOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaccineRepository(db)

	asOf := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	due1 := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"vaccine_id", "dog_id", "dog_name", "vaccine_name", "next_due_date"}).
		AddRow(int64(42), int64(5), "Bantay", "Rabies", due1).
		AddRow(int64(43), int64(6), "Whitey", "Parvo", due2)
	mock.ExpectQuery("SELECT (.+) FROM vaccines").
		WithArgs(int64(7), asOf).
		WillReturnRows(rows)

	due, err := repo.DueForOwner(context.Background(), 7, asOf)

	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "Bantay", due[0].DogName)
	assert.Equal(t, "Rabies", due[0].VaccineName)
	assert.Equal(t, int64(5), due[0].DogID)
	assert.Equal(t, due1, due[0].NextDueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaccineRepository_DueForOwner_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaccineRepository(db)

	asOf := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM vaccines").
		WithArgs(int64(7), asOf).
		WillReturnRows(sqlmock.NewRows([]string{"vaccine_id", "dog_id", "dog_name", "vaccine_name", "next_due_date"}))

	due, err := repo.DueForOwner(context.Background(), 7, asOf)

	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestVaccineRepository_ListByDog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaccineRepository(db)

	rows := sqlmock.NewRows([]string{"id", "dog_id", "vaccine_name", "date_given", "next_due_date", "vet_name", "certificate_url", "certificate_key", "created_at"}).
		AddRow(int64(42), int64(5), "Rabies", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), nil, "Dr. Cruz", nil, nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM vaccines").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	vaccines, err := repo.ListByDog(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, vaccines, 1)
	assert.Equal(t, "Rabies", vaccines[0].VaccineName)
	assert.Nil(t, vaccines[0].NextDueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
