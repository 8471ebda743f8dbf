package veterinarian

import (
	"context"
	"fmt"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
)

type VeterinarianServicer interface {
	CreateVeterinarian(ctx context.Context, req *model.CreateVeterinarianRequest) (*model.Veterinarian, error)
	GetVeterinarian(ctx context.Context, id int64) (*model.Veterinarian, error)
	ListVeterinarians(ctx context.Context) ([]*model.Veterinarian, error)
	UpdateVeterinarian(ctx context.Context, id int64, req *model.UpdateVeterinarianRequest) (*model.Veterinarian, error)
	DeleteVeterinarian(ctx context.Context, id int64) error
	VeterinarianExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo repository.VeterinarianRepository
}

func NewService(repo repository.VeterinarianRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateVeterinarian(ctx context.Context, req *model.CreateVeterinarianRequest) (*model.Veterinarian, error) {
	vet := &model.Veterinarian{
		Name:      req.Name,
		Specialty: req.Specialty,
		Available: req.Available,
		ClinicID:  req.ClinicID,
	}

	if err := s.repo.Create(ctx, vet); err != nil {
		return nil, fmt.Errorf("failed to create veterinarian: %w", err)
	}
	return vet, nil
}

func (s *Service) GetVeterinarian(ctx context.Context, id int64) (*model.Veterinarian, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListVeterinarians(ctx context.Context) ([]*model.Veterinarian, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateVeterinarian(ctx context.Context, id int64, req *model.UpdateVeterinarianRequest) (*model.Veterinarian, error) {
	vet := &model.Veterinarian{
		ID:        id,
		Name:      req.Name,
		Specialty: req.Specialty,
		Available: req.Available,
		ClinicID:  req.ClinicID,
	}

	if err := s.repo.Update(ctx, vet); err != nil {
		return nil, err
	}
	return vet, nil
}

func (s *Service) DeleteVeterinarian(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) VeterinarianExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
