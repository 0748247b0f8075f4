package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pawtag/internal/model"
)

type vaccineRepository struct {
	db *sqlx.DB
}

func NewVaccineRepository(db *sqlx.DB) VaccineRepository {
	return &vaccineRepository{db: db}
}

// Create inserts a vaccine row inside the caller's transaction.
func (r *vaccineRepository) Create(ctx context.Context, tx *sqlx.Tx, v *model.Vaccine) error {
	query := `
		INSERT INTO vaccines (dog_id, vaccine_name, date_given, next_due_date, vet_name, certificate_url, certificate_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	row := tx.QueryRowxContext(ctx, query,
		v.DogID,
		v.VaccineName,
		v.DateGiven,
		v.NextDueDate,
		v.VetName,
		v.CertificateURL,
		v.CertificateKey,
	)

	if err := row.Scan(&v.ID, &v.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert vaccine: %w", err)
	}

	return nil
}

func (r *vaccineRepository) ListByDog(ctx context.Context, dogID int64) ([]model.Vaccine, error) {
	query := `
		SELECT id, dog_id, vaccine_name, date_given, next_due_date, vet_name,
		       certificate_url, certificate_key, created_at
		FROM vaccines
		WHERE dog_id = $1
		ORDER BY date_given DESC
	`

	var vaccines []model.Vaccine
	err := r.db.SelectContext(ctx, &vaccines, query, dogID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaccines: %w", err)
	}

	return vaccines, nil
}

// DueForOwner is the due query: vaccines of the owner's dogs whose
// next_due_date has passed relative to asOf. Recomputed on every call.
func (r *vaccineRepository) DueForOwner(ctx context.Context, ownerID int64, asOf time.Time) ([]model.DueReminder, error) {
	query := `
		SELECT v.id AS vaccine_id, d.id AS dog_id, d.name AS dog_name,
		       v.vaccine_name, v.next_due_date
		FROM vaccines v
		JOIN dogs d ON d.id = v.dog_id
		WHERE d.owner_id = $1
		  AND v.next_due_date IS NOT NULL
		  AND v.next_due_date <= $2
		ORDER BY v.next_due_date ASC
	`

	var due []model.DueReminder
	err := r.db.SelectContext(ctx, &due, query, ownerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query due vaccines: %w", err)
	}

	return due, nil
}
