package animal

import (
	"context"
	"fmt"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
)

type AnimalServicer interface {
	CreateAnimal(ctx context.Context, req *model.CreateAnimalRequest) (*model.Animal, error)
	GetAnimal(ctx context.Context, id int64) (*model.Animal, error)
	ListAnimals(ctx context.Context) ([]*model.Animal, error)
	UpdateAnimal(ctx context.Context, id int64, req *model.UpdateAnimalRequest) (*model.Animal, error)
	DeleteAnimal(ctx context.Context, id int64) error
	AnimalExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo repository.AnimalRepository
}

func NewService(repo repository.AnimalRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateAnimal(ctx context.Context, req *model.CreateAnimalRequest) (*model.Animal, error) {
	animal := &model.Animal{
		Name:           req.Name,
		Species:        req.Species,
		Breed:          req.Breed,
		Age:            req.Age,
		MedicalHistory: req.MedicalHistory,
		OwnerID:        req.OwnerID,
	}

	if err := s.repo.Create(ctx, animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	return animal, nil
}

func (s *Service) GetAnimal(ctx context.Context, id int64) (*model.Animal, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListAnimals(ctx context.Context) ([]*model.Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateAnimal(ctx context.Context, id int64, req *model.UpdateAnimalRequest) (*model.Animal, error) {
	animal := &model.Animal{
		ID:             id,
		Name:           req.Name,
		Species:        req.Species,
		Breed:          req.Breed,
		Age:            req.Age,
		MedicalHistory: req.MedicalHistory,
		OwnerID:        req.OwnerID,
	}

	if err := s.repo.Update(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

func (s *Service) DeleteAnimal(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) AnimalExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
