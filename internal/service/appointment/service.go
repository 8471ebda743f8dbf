package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/feliciafavrholdt/vetlocator-api/internal/email"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type AppointmentServicer interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*model.Appointment, error)
	ListAppointments(ctx context.Context) ([]*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	AppointmentExists(ctx context.Context, id int64) (bool, error)
}

// Service implements the booking workflow. Reference resolution and the
// write happen in one repository transaction; this layer owns field
// validation, status transition rules and the confirmation mail.
type Service struct {
	repo    repository.AppointmentRepository
	animals repository.AnimalRepository
	clients repository.ClientRepository
	mailer  email.Service
}

func NewService(repo repository.AppointmentRepository, animals repository.AnimalRepository,
	clients repository.ClientRepository, mailer email.Service) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		clients: clients,
		mailer:  mailer,
	}
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := validateSchedule(req.Date, req.Time); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		Date:           req.Date,
		Time:           req.Time,
		Reason:         req.Reason,
		Status:         model.AppointmentStatusRequested,
		AnimalID:       req.AnimalID,
		VeterinarianID: req.VeterinarianID,
		ClinicID:       req.ClinicID,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, appointment)
	return appointment, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if err := validateSchedule(req.Date, req.Time); err != nil {
		return nil, err
	}
	if !req.Status.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid status: %s", req.Status), nil)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateTransition(current.Status, req.Status); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ID:             id,
		Date:           req.Date,
		Time:           req.Time,
		Reason:         req.Reason,
		Status:         req.Status,
		AnimalID:       req.AnimalID,
		VeterinarianID: req.VeterinarianID,
		ClinicID:       req.ClinicID,
		CreatedAt:      current.CreatedAt,
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	if current.Status != model.AppointmentStatusConfirmed && req.Status == model.AppointmentStatusConfirmed {
		s.notifyOwner(ctx, appointment)
	}
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) AppointmentExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func validateSchedule(date, timeOfDay string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperrors.BadRequest("date must be in YYYY-MM-DD format", err)
	}
	if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
		return apperrors.BadRequest("time must be in HH:MM format", err)
	}
	return nil
}

// validateTransition rejects moves out of terminal states. CANCELLED is
// terminal; COMPLETED can only stay COMPLETED or become CANCELLED.
func validateTransition(from, to model.AppointmentStatus) error {
	if from == to {
		return nil
	}

	switch from {
	case model.AppointmentStatusCancelled:
		return apperrors.Conflict("appointment is cancelled", nil)
	case model.AppointmentStatusCompleted:
		if to != model.AppointmentStatusCancelled {
			return apperrors.Conflict("completed appointment cannot be reopened", nil)
		}
	}
	return nil
}

// notifyOwner is best effort: a mail failure never fails the booking.
func (s *Service) notifyOwner(ctx context.Context, appointment *model.Appointment) {
	animal, err := s.animals.Get(ctx, appointment.AnimalID)
	if err != nil {
		log.Warn().Err(err).Int64("appointment_id", appointment.ID).Msg("skipping confirmation mail: animal lookup failed")
		return
	}

	owner, err := s.clients.Get(ctx, animal.OwnerID)
	if err != nil {
		log.Warn().Err(err).Int64("appointment_id", appointment.ID).Msg("skipping confirmation mail: owner lookup failed")
		return
	}

	if err := s.mailer.SendAppointmentConfirmation(ctx, owner.Email, appointment); err != nil {
		log.Warn().Err(err).Int64("appointment_id", appointment.ID).Msg("failed to send confirmation mail")
	}
}
