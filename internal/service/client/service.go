package client

import (
	"context"
	"fmt"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
)

type ClientServicer interface {
	CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error)
	GetClient(ctx context.Context, id int64) (*model.Client, error)
	ListClients(ctx context.Context) ([]*model.Client, error)
	UpdateClient(ctx context.Context, id int64, req *model.UpdateClientRequest) (*model.Client, error)
	DeleteClient(ctx context.Context, id int64) error
	ClientExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo repository.ClientRepository
}

func NewService(repo repository.ClientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	client := &model.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CityID:    req.CityID,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func (s *Service) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListClients(ctx context.Context) ([]*model.Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateClient(ctx context.Context, id int64, req *model.UpdateClientRequest) (*model.Client, error) {
	client := &model.Client{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CityID:    req.CityID,
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ClientExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
