package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, repository.AppointmentRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAppointmentRepository(NewBaseRepository(sqlxDB))
	return sqlxDB, mock, repo
}

func existsRow(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}

func bookingRequest() *model.Appointment {
	return &model.Appointment{
		Date:           "2026-09-15",
		Time:           "10:30",
		Reason:         "Annual checkup",
		Status:         model.AppointmentStatusRequested,
		AnimalID:       1,
		VeterinarianID: 2,
		ClinicID:       3,
	}
}

func TestCreateAppointmentCommits(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM animals WHERE id = \$1\)`).
		WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM veterinarians WHERE id = \$1\)`).
		WithArgs(int64(2)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM clinics WHERE id = \$1\)`).
		WithArgs(int64(3)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`INSERT INTO appointments`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(`SELECT an\.name AS animal_name`).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"animal_name", "veterinarian_name", "clinic_name"}).
			AddRow("Bella", "Dr. Holm", "Downtown Vet Clinic"))
	mock.ExpectCommit()

	appointment := bookingRequest()
	err := repo.Create(context.Background(), appointment)

	require.NoError(t, err)
	assert.Equal(t, int64(7), appointment.ID)
	assert.Equal(t, "Bella", appointment.AnimalName)
	assert.Equal(t, "Dr. Holm", appointment.VeterinarianName)
	assert.Equal(t, "Downtown Vet Clinic", appointment.ClinicName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentMissingVeterinarianRollsBack(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM animals WHERE id = \$1\)`).
		WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM veterinarians WHERE id = \$1\)`).
		WithArgs(int64(2)).WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), bookingRequest())

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Veterinarian not found")
	// No INSERT was expected; a write before the rollback would fail here.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentMissingClinicRollsBack(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM animals WHERE id = \$1\)`).
		WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM veterinarians WHERE id = \$1\)`).
		WithArgs(int64(2)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM clinics WHERE id = \$1\)`).
		WithArgs(int64(3)).WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), bookingRequest())

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Clinic not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentMissingAnimalRollsBack(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM animals WHERE id = \$1\)`).
		WithArgs(int64(1)).WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), bookingRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Animal not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentMissingRowRollsBack(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM animals WHERE id = \$1\)`).
		WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM veterinarians WHERE id = \$1\)`).
		WithArgs(int64(2)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM clinics WHERE id = \$1\)`).
		WithArgs(int64(3)).WillReturnRows(existsRow(true))
	mock.ExpectExec(`UPDATE appointments`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	appointment := bookingRequest()
	appointment.ID = 9999

	err := repo.Update(context.Background(), appointment)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Appointment not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAppointmentMissingRow(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).
		WithArgs(int64(9999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 9999)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
