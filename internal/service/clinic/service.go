package clinic

import (
	"context"
	"fmt"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type ClinicServicer interface {
	CreateClinic(ctx context.Context, req *model.CreateClinicRequest) (*model.Clinic, error)
	GetClinic(ctx context.Context, id int64) (*model.Clinic, error)
	ListClinics(ctx context.Context) ([]*model.Clinic, error)
	UpdateClinic(ctx context.Context, id int64, req *model.UpdateClinicRequest) (*model.Clinic, error)
	DeleteClinic(ctx context.Context, id int64) error
	ClinicExists(ctx context.Context, id int64) (bool, error)
	GetClinicOpeningHours(ctx context.Context, clinicID int64) ([]*model.OpeningHours, error)
}

type Service struct {
	repo      repository.ClinicRepository
	hoursRepo repository.OpeningHoursRepository
}

func NewService(repo repository.ClinicRepository, hoursRepo repository.OpeningHoursRepository) *Service {
	return &Service{repo: repo, hoursRepo: hoursRepo}
}

func (s *Service) CreateClinic(ctx context.Context, req *model.CreateClinicRequest) (*model.Clinic, error) {
	clinic := &model.Clinic{
		Name:              req.Name,
		Address:           req.Address,
		Phone:             req.Phone,
		CityID:            req.CityID,
		EmergencyServices: req.EmergencyServices,
	}

	if err := s.repo.Create(ctx, clinic); err != nil {
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}
	return clinic, nil
}

func (s *Service) GetClinic(ctx context.Context, id int64) (*model.Clinic, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListClinics(ctx context.Context) ([]*model.Clinic, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateClinic(ctx context.Context, id int64, req *model.UpdateClinicRequest) (*model.Clinic, error) {
	clinic := &model.Clinic{
		ID:                id,
		Name:              req.Name,
		Address:           req.Address,
		Phone:             req.Phone,
		CityID:            req.CityID,
		EmergencyServices: req.EmergencyServices,
	}

	if err := s.repo.Update(ctx, clinic); err != nil {
		return nil, err
	}
	return clinic, nil
}

// DeleteClinic removes the clinic row. Opening hours go with it through
// the schema cascade; veterinarians and appointments block the delete.
func (s *Service) DeleteClinic(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ClinicExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) GetClinicOpeningHours(ctx context.Context, clinicID int64) ([]*model.OpeningHours, error) {
	ok, err := s.repo.Exists(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to check clinic: %w", err)
	}
	if !ok {
		return nil, apperrors.NotFound("Clinic", nil)
	}
	return s.hoursRepo.ListForClinic(ctx, clinicID)
}
