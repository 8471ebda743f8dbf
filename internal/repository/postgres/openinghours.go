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

type openingHoursRepository struct {
	BaseRepository
}

func NewOpeningHoursRepository(base BaseRepository) repository.OpeningHoursRepository {
	return &openingHoursRepository{base}
}

// Time columns are selected as text so HH:MM strings round-trip without
// a driver-side time.Time conversion.
const openingHoursColumns = `
	id, weekday, to_char(start_time, 'HH24:MI') AS start_time,
	to_char(end_time, 'HH24:MI') AS end_time, clinic_id, created_at, updated_at
`

func (r *openingHoursRepository) Create(ctx context.Context, hours *model.OpeningHours) error {
	query := `
		INSERT INTO opening_hours (weekday, start_time, end_time, clinic_id, created_at, updated_at)
		VALUES ($1, $2::time, $3::time, $4, $5, $6)
		RETURNING id
	`
	hours.CreatedAt = time.Now()
	hours.UpdatedAt = hours.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := existsIn(ctx, tx, "clinics", hours.ClinicID)
		if err != nil {
			return fmt.Errorf("failed to check clinic: %w", err)
		}
		if !ok {
			return apperrors.NotFound("Clinic", nil)
		}

		err = tx.GetContext(ctx, &hours.ID, query,
			hours.Weekday,
			hours.StartTime,
			hours.EndTime,
			hours.ClinicID,
			hours.CreatedAt,
			hours.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create opening hours: %w", err)
		}
		return nil
	})
}

func (r *openingHoursRepository) Get(ctx context.Context, id int64) (*model.OpeningHours, error) {
	query := `SELECT ` + openingHoursColumns + ` FROM opening_hours WHERE id = $1`

	var hours model.OpeningHours
	err := r.db.GetContext(ctx, &hours, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("OpeningHours", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get opening hours: %w", err)
	}
	return &hours, nil
}

func (r *openingHoursRepository) List(ctx context.Context) ([]*model.OpeningHours, error) {
	query := `SELECT ` + openingHoursColumns + ` FROM opening_hours`

	hours := []*model.OpeningHours{}
	if err := r.db.SelectContext(ctx, &hours, query); err != nil {
		return nil, fmt.Errorf("failed to list opening hours: %w", err)
	}
	return hours, nil
}

func (r *openingHoursRepository) ListForClinic(ctx context.Context, clinicID int64) ([]*model.OpeningHours, error) {
	query := `SELECT ` + openingHoursColumns + ` FROM opening_hours WHERE clinic_id = $1`

	hours := []*model.OpeningHours{}
	if err := r.db.SelectContext(ctx, &hours, query, clinicID); err != nil {
		return nil, fmt.Errorf("failed to list opening hours for clinic: %w", err)
	}
	return hours, nil
}

func (r *openingHoursRepository) Update(ctx context.Context, hours *model.OpeningHours) error {
	query := `
		UPDATE opening_hours
		SET weekday = $1, start_time = $2::time, end_time = $3::time, clinic_id = $4, updated_at = $5
		WHERE id = $6
	`
	hours.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := existsIn(ctx, tx, "clinics", hours.ClinicID)
		if err != nil {
			return fmt.Errorf("failed to check clinic: %w", err)
		}
		if !ok {
			return apperrors.NotFound("Clinic", nil)
		}

		result, err := tx.ExecContext(ctx, query,
			hours.Weekday,
			hours.StartTime,
			hours.EndTime,
			hours.ClinicID,
			hours.UpdatedAt,
			hours.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update opening hours: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("OpeningHours", nil)
		}
		return nil
	})
}

func (r *openingHoursRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM opening_hours WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete opening hours: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("OpeningHours", nil)
		}
		return nil
	})
}

func (r *openingHoursRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsIn(ctx, r.db, "opening_hours", id)
}
