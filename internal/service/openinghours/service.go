package openinghours

import (
	"context"
	"fmt"
	"time"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type OpeningHoursServicer interface {
	CreateOpeningHours(ctx context.Context, req *model.CreateOpeningHoursRequest) (*model.OpeningHours, error)
	GetOpeningHours(ctx context.Context, id int64) (*model.OpeningHours, error)
	ListOpeningHours(ctx context.Context) ([]*model.OpeningHours, error)
	UpdateOpeningHours(ctx context.Context, id int64, req *model.UpdateOpeningHoursRequest) (*model.OpeningHours, error)
	DeleteOpeningHours(ctx context.Context, id int64) error
	OpeningHoursExist(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo repository.OpeningHoursRepository
}

func NewService(repo repository.OpeningHoursRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOpeningHours(ctx context.Context, req *model.CreateOpeningHoursRequest) (*model.OpeningHours, error) {
	if err := validateShift(req.Weekday, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	hours := &model.OpeningHours{
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ClinicID:  req.ClinicID,
	}

	if err := s.repo.Create(ctx, hours); err != nil {
		return nil, fmt.Errorf("failed to create opening hours: %w", err)
	}
	return hours, nil
}

func (s *Service) GetOpeningHours(ctx context.Context, id int64) (*model.OpeningHours, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListOpeningHours(ctx context.Context) ([]*model.OpeningHours, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateOpeningHours(ctx context.Context, id int64, req *model.UpdateOpeningHoursRequest) (*model.OpeningHours, error) {
	if err := validateShift(req.Weekday, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	hours := &model.OpeningHours{
		ID:        id,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ClinicID:  req.ClinicID,
	}

	if err := s.repo.Update(ctx, hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func (s *Service) DeleteOpeningHours(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) OpeningHoursExist(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func validateShift(weekday model.Weekday, start, end string) error {
	if !weekday.Valid() {
		return apperrors.BadRequest(fmt.Sprintf("invalid weekday: %s", weekday), nil)
	}

	startT, err := time.Parse("15:04", start)
	if err != nil {
		return apperrors.BadRequest("start_time must be in HH:MM format", err)
	}

	endT, err := time.Parse("15:04", end)
	if err != nil {
		return apperrors.BadRequest("end_time must be in HH:MM format", err)
	}

	if !endT.After(startT) {
		return apperrors.BadRequest("end_time must be after start_time", nil)
	}
	return nil
}
