package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pawtag/internal/model"
)

// dogRepository implements DogRepository using sqlx
type dogRepository struct {
	db *sqlx.DB
}

func NewDogRepository(db *sqlx.DB) DogRepository {
	return &dogRepository{db: db}
}

// Create inserts a new dog profile. The QR reference stays NULL here: the
// payload needs the assigned id, so the tag is persisted via SetQRCode in
// a second step.
func (r *dogRepository) Create(ctx context.Context, d *model.Dog) error {
	query := `
		INSERT INTO dogs (owner_id, name, breed, color, gender, age, photo_url, photo_key, is_lost, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW())
		RETURNING id, is_lost, registered_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		d.OwnerID,
		d.Name,
		d.Breed,
		d.Color,
		d.Gender,
		d.Age,
		d.PhotoURL,
		d.PhotoKey,
	)

	if err := row.Scan(&d.ID, &d.IsLost, &d.RegisteredAt); err != nil {
		return fmt.Errorf("failed to insert dog: %w", err)
	}

	return nil
}

func (r *dogRepository) GetByID(ctx context.Context, id int64) (*model.Dog, error) {
	query := `
		SELECT id, owner_id, name, breed, color, gender, age,
		       photo_url, photo_key, qr_code_url, qr_code_key, is_lost, registered_at
		FROM dogs
		WHERE id = $1
	`

	var d model.Dog
	err := r.db.GetContext(ctx, &d, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrDogNotFound
		}
		return nil, fmt.Errorf("failed to get dog by id: %w", err)
	}

	return &d, nil
}

func (r *dogRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Dog, error) {
	query := `
		SELECT id, owner_id, name, breed, color, gender, age,
		       photo_url, photo_key, qr_code_url, qr_code_key, is_lost, registered_at
		FROM dogs
		WHERE owner_id = $1
		ORDER BY registered_at DESC
	`

	var dogs []model.Dog
	err := r.db.SelectContext(ctx, &dogs, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}

	return dogs, nil
}

func (r *dogRepository) SetQRCode(ctx context.Context, id int64, url, key string) error {
	query := `UPDATE dogs SET qr_code_url = $1, qr_code_key = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, url, key, id)
	if err != nil {
		return fmt.Errorf("failed to set qr code: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrDogNotFound
	}
	return nil
}

func (r *dogRepository) SetLost(ctx context.Context, id int64, lost bool) error {
	query := `UPDATE dogs SET is_lost = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, lost, id)
	if err != nil {
		return fmt.Errorf("failed to set lost flag: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrDogNotFound
	}
	return nil
}
