package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type clinicRepository struct {
	BaseRepository
}

func NewClinicRepository(base BaseRepository) repository.ClinicRepository {
	return &clinicRepository{base}
}

func (r *clinicRepository) Create(ctx context.Context, clinic *model.Clinic) error {
	query := `
		INSERT INTO clinics (name, address, phone, city_id, emergency_services, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	clinic.CreatedAt = time.Now()
	clinic.UpdatedAt = clinic.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &clinic.ID, query,
			clinic.Name,
			clinic.Address,
			clinic.Phone,
			clinic.CityID,
			clinic.EmergencyServices,
			clinic.CreatedAt,
			clinic.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create clinic: %w", err)
		}
		return nil
	})
}

func (r *clinicRepository) Get(ctx context.Context, id int64) (*model.Clinic, error) {
	query := `
		SELECT id, name, address, phone, city_id, emergency_services, created_at, updated_at
		FROM clinics
		WHERE id = $1
	`
	var clinic model.Clinic
	err := r.db.GetContext(ctx, &clinic, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Clinic", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return &clinic, nil
}

func (r *clinicRepository) List(ctx context.Context) ([]*model.Clinic, error) {
	query := `
		SELECT id, name, address, phone, city_id, emergency_services, created_at, updated_at
		FROM clinics
	`
	clinics := []*model.Clinic{}
	if err := r.db.SelectContext(ctx, &clinics, query); err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	return clinics, nil
}

func (r *clinicRepository) Update(ctx context.Context, clinic *model.Clinic) error {
	query := `
		UPDATE clinics
		SET name = $1, address = $2, phone = $3, city_id = $4, emergency_services = $5, updated_at = $6
		WHERE id = $7
	`
	clinic.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			clinic.Name,
			clinic.Address,
			clinic.Phone,
			clinic.CityID,
			clinic.EmergencyServices,
			clinic.UpdatedAt,
			clinic.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update clinic: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Clinic", nil)
		}
		return nil
	})
}

// Delete removes a clinic. Opening hours cascade at the schema level;
// veterinarians and appointments are RESTRICT, so a clinic that still
// has either surfaces as a conflict rather than a silent cascade.
func (r *clinicRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1`, id)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
				return apperrors.Conflict("clinic still has veterinarians or appointments", err)
			}
			return fmt.Errorf("failed to delete clinic: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Clinic", nil)
		}
		return nil
	})
}

func (r *clinicRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsIn(ctx, r.db, "clinics", id)
}
