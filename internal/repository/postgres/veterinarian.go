package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type veterinarianRepository struct {
	BaseRepository
}

func NewVeterinarianRepository(base BaseRepository) repository.VeterinarianRepository {
	return &veterinarianRepository{base}
}

func (r *veterinarianRepository) Create(ctx context.Context, vet *model.Veterinarian) error {
	query := `
		INSERT INTO veterinarians (name, specialty, available, clinic_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	vet.CreatedAt = time.Now()
	vet.UpdatedAt = vet.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := existsIn(ctx, tx, "clinics", vet.ClinicID)
		if err != nil {
			return fmt.Errorf("failed to check clinic: %w", err)
		}
		if !ok {
			return apperrors.NotFound("Clinic", nil)
		}

		err = tx.GetContext(ctx, &vet.ID, query,
			vet.Name,
			vet.Specialty,
			vet.Available,
			vet.ClinicID,
			vet.CreatedAt,
			vet.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create veterinarian: %w", err)
		}
		return nil
	})
}

func (r *veterinarianRepository) Get(ctx context.Context, id int64) (*model.Veterinarian, error) {
	query := `
		SELECT id, name, specialty, available, clinic_id, created_at, updated_at
		FROM veterinarians
		WHERE id = $1
	`
	var vet model.Veterinarian
	err := r.db.GetContext(ctx, &vet, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Veterinarian", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get veterinarian: %w", err)
	}
	return &vet, nil
}

func (r *veterinarianRepository) List(ctx context.Context) ([]*model.Veterinarian, error) {
	query := `
		SELECT id, name, specialty, available, clinic_id, created_at, updated_at
		FROM veterinarians
	`
	vets := []*model.Veterinarian{}
	if err := r.db.SelectContext(ctx, &vets, query); err != nil {
		return nil, fmt.Errorf("failed to list veterinarians: %w", err)
	}
	return vets, nil
}

func (r *veterinarianRepository) Update(ctx context.Context, vet *model.Veterinarian) error {
	query := `
		UPDATE veterinarians
		SET name = $1, specialty = $2, available = $3, clinic_id = $4, updated_at = $5
		WHERE id = $6
	`
	vet.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := existsIn(ctx, tx, "clinics", vet.ClinicID)
		if err != nil {
			return fmt.Errorf("failed to check clinic: %w", err)
		}
		if !ok {
			return apperrors.NotFound("Clinic", nil)
		}

		result, err := tx.ExecContext(ctx, query,
			vet.Name,
			vet.Specialty,
			vet.Available,
			vet.ClinicID,
			vet.UpdatedAt,
			vet.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update veterinarian: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Veterinarian", nil)
		}
		return nil
	})
}

func (r *veterinarianRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM veterinarians WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete veterinarian: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Veterinarian", nil)
		}
		return nil
	})
}

func (r *veterinarianRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsIn(ctx, r.db, "veterinarians", id)
}
