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

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

const appointmentSelect = `
	SELECT a.id,
	       to_char(a.date, 'YYYY-MM-DD') AS date,
	       to_char(a.time, 'HH24:MI') AS time,
	       a.reason, a.status,
	       a.animal_id, an.name AS animal_name,
	       a.veterinarian_id, v.name AS veterinarian_name,
	       a.clinic_id, c.name AS clinic_name,
	       a.created_at, a.updated_at
	FROM appointments a
	JOIN animals an ON an.id = a.animal_id
	JOIN veterinarians v ON v.id = a.veterinarian_id
	JOIN clinics c ON c.id = a.clinic_id
`

// resolveReferences checks the three foreign keys of an appointment
// against their tables. Runs inside the caller's transaction so the
// checks and the subsequent write are one atomic unit.
func resolveReferences(ctx context.Context, tx *sqlx.Tx, appointment *model.Appointment) error {
	checks := []struct {
		table    string
		resource string
		id       int64
	}{
		{"animals", "Animal", appointment.AnimalID},
		{"veterinarians", "Veterinarian", appointment.VeterinarianID},
		{"clinics", "Clinic", appointment.ClinicID},
	}

	for _, check := range checks {
		ok, err := existsIn(ctx, tx, check.table, check.id)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", check.resource, err)
		}
		if !ok {
			return apperrors.NotFound(check.resource, nil)
		}
	}
	return nil
}

// Create validates all three references and inserts the appointment in
// one transaction; any missing reference rolls the whole operation back.
// On success the passed appointment is materialized with resolved names.
func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (date, time, reason, status, animal_id, veterinarian_id, clinic_id, created_at, updated_at)
		VALUES ($1::date, $2::time, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := resolveReferences(ctx, tx, appointment); err != nil {
			return err
		}

		err := tx.GetContext(ctx, &appointment.ID, query,
			appointment.Date,
			appointment.Time,
			appointment.Reason,
			appointment.Status,
			appointment.AnimalID,
			appointment.VeterinarianID,
			appointment.ClinicID,
			appointment.CreatedAt,
			appointment.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}

		return materialize(ctx, tx, appointment)
	})
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, appointmentSelect+` WHERE a.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, appointmentSelect); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Update re-resolves and re-links all three references even when they
// are unchanged, inside the same transaction as the row update.
func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET date = $1::date, time = $2::time, reason = $3, status = $4,
		    animal_id = $5, veterinarian_id = $6, clinic_id = $7, updated_at = $8
		WHERE id = $9
	`
	appointment.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := resolveReferences(ctx, tx, appointment); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query,
			appointment.Date,
			appointment.Time,
			appointment.Reason,
			appointment.Status,
			appointment.AnimalID,
			appointment.VeterinarianID,
			appointment.ClinicID,
			appointment.UpdatedAt,
			appointment.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Appointment", nil)
		}

		return materialize(ctx, tx, appointment)
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Appointment", nil)
		}
		return nil
	})
}

func (r *appointmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsIn(ctx, r.db, "appointments", id)
}

// materialize fills the display names from the referenced rows. The
// references were validated moments ago in the same transaction, so a
// miss here is a genuine internal error.
func materialize(ctx context.Context, tx *sqlx.Tx, appointment *model.Appointment) error {
	query := `
		SELECT an.name AS animal_name, v.name AS veterinarian_name, c.name AS clinic_name
		FROM animals an, veterinarians v, clinics c
		WHERE an.id = $1 AND v.id = $2 AND c.id = $3
	`
	var names struct {
		AnimalName       string `db:"animal_name"`
		VeterinarianName string `db:"veterinarian_name"`
		ClinicName       string `db:"clinic_name"`
	}
	err := tx.GetContext(ctx, &names, query,
		appointment.AnimalID, appointment.VeterinarianID, appointment.ClinicID)
	if err != nil {
		return fmt.Errorf("failed to resolve appointment names: %w", err)
	}

	appointment.AnimalName = names.AnimalName
	appointment.VeterinarianName = names.VeterinarianName
	appointment.ClinicName = names.ClinicName
	return nil
}
