package repository

import (
	"context"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
)

// All repository interfaces in one file. Every accessor follows the same
// shape: Create, Get, List, Update, Delete, Exists. Creates and updates
// run inside a transaction; Get and List are point lookups. Missing rows
// surface as pkg/errors not-found errors, except Exists which reports a
// boolean and never errors on absence.
type (
	ClientRepository interface {
		Create(ctx context.Context, client *model.Client) error
		Get(ctx context.Context, id int64) (*model.Client, error)
		List(ctx context.Context) ([]*model.Client, error)
		Update(ctx context.Context, client *model.Client) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	AnimalRepository interface {
		Create(ctx context.Context, animal *model.Animal) error
		Get(ctx context.Context, id int64) (*model.Animal, error)
		List(ctx context.Context) ([]*model.Animal, error)
		Update(ctx context.Context, animal *model.Animal) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	ClinicRepository interface {
		Create(ctx context.Context, clinic *model.Clinic) error
		Get(ctx context.Context, id int64) (*model.Clinic, error)
		List(ctx context.Context) ([]*model.Clinic, error)
		Update(ctx context.Context, clinic *model.Clinic) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	VeterinarianRepository interface {
		Create(ctx context.Context, vet *model.Veterinarian) error
		Get(ctx context.Context, id int64) (*model.Veterinarian, error)
		List(ctx context.Context) ([]*model.Veterinarian, error)
		Update(ctx context.Context, vet *model.Veterinarian) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	OpeningHoursRepository interface {
		Create(ctx context.Context, hours *model.OpeningHours) error
		Get(ctx context.Context, id int64) (*model.OpeningHours, error)
		List(ctx context.Context) ([]*model.OpeningHours, error)
		ListForClinic(ctx context.Context, clinicID int64) ([]*model.OpeningHours, error)
		Update(ctx context.Context, hours *model.OpeningHours) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	// AppointmentRepository validates the animal, veterinarian and clinic
	// references inside the same transaction as the write. A missing
	// reference aborts the transaction and surfaces as a not-found error;
	// no partial appointment is ever persisted.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		List(ctx context.Context) ([]*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id int64) (*model.User, error)
		GetByUsername(ctx context.Context, username string) (*model.User, error)
		List(ctx context.Context) ([]*model.User, error)
		Update(ctx context.Context, user *model.User) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	// TokenStore keeps refresh tokens and revoked access tokens. Backed
	// by Redis when configured; a nil store disables revocation checks.
	TokenStore interface {
		StoreRefreshToken(ctx context.Context, userID int64, token string) error
		ValidateRefreshToken(ctx context.Context, userID int64, token string) (bool, error)
		RevokeToken(ctx context.Context, token string) error
		IsRevoked(ctx context.Context, token string) (bool, error)
	}
)
