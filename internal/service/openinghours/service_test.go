package openinghours

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

var _ repository.OpeningHoursRepository = (*mockHoursRepo)(nil)

type mockHoursRepo struct {
	CreateFunc func(ctx context.Context, hours *model.OpeningHours) error
	GetFunc    func(ctx context.Context, id int64) (*model.OpeningHours, error)
	UpdateFunc func(ctx context.Context, hours *model.OpeningHours) error

	CreateCalls int
}

func (m *mockHoursRepo) Create(ctx context.Context, hours *model.OpeningHours) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, hours)
	}
	return nil
}

func (m *mockHoursRepo) Get(ctx context.Context, id int64) (*model.OpeningHours, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not set")
}

func (m *mockHoursRepo) List(ctx context.Context) ([]*model.OpeningHours, error) { return nil, nil }

func (m *mockHoursRepo) ListForClinic(ctx context.Context, clinicID int64) ([]*model.OpeningHours, error) {
	return nil, nil
}

func (m *mockHoursRepo) Update(ctx context.Context, hours *model.OpeningHours) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, hours)
	}
	return nil
}

func (m *mockHoursRepo) Delete(ctx context.Context, id int64) error         { return nil }
func (m *mockHoursRepo) Exists(ctx context.Context, id int64) (bool, error) { return false, nil }

func validRequest() *model.CreateOpeningHoursRequest {
	return &model.CreateOpeningHoursRequest{
		Weekday:   model.Monday,
		StartTime: "08:00",
		EndTime:   "16:00",
		ClinicID:  1,
	}
}

func TestCreateOpeningHours(t *testing.T) {
	repo := &mockHoursRepo{}
	svc := NewService(repo)

	hours, err := svc.CreateOpeningHours(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, model.Monday, hours.Weekday)
	assert.Equal(t, "08:00", hours.StartTime)
	assert.Equal(t, 1, repo.CreateCalls)
}

func TestCreateOpeningHoursInvalidWeekday(t *testing.T) {
	repo := &mockHoursRepo{}
	svc := NewService(repo)

	req := validRequest()
	req.Weekday = "FUNDAY"

	_, err := svc.CreateOpeningHours(context.Background(), req)
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Zero(t, repo.CreateCalls)
}

func TestCreateOpeningHoursBadTimeFormat(t *testing.T) {
	repo := &mockHoursRepo{}
	svc := NewService(repo)

	req := validRequest()
	req.StartTime = "8am"

	_, err := svc.CreateOpeningHours(context.Background(), req)
	require.Error(t, err)
	assert.Zero(t, repo.CreateCalls)
}

func TestCreateOpeningHoursEndBeforeStart(t *testing.T) {
	repo := &mockHoursRepo{}
	svc := NewService(repo)

	req := validRequest()
	req.StartTime = "16:00"
	req.EndTime = "08:00"

	_, err := svc.CreateOpeningHours(context.Background(), req)
	require.Error(t, err)
	assert.Zero(t, repo.CreateCalls)
}

func TestCreateOpeningHoursZeroLengthShift(t *testing.T) {
	repo := &mockHoursRepo{}
	svc := NewService(repo)

	req := validRequest()
	req.StartTime = "08:00"
	req.EndTime = "08:00"

	_, err := svc.CreateOpeningHours(context.Background(), req)
	require.Error(t, err)
}

func TestUpdateOpeningHoursValidates(t *testing.T) {
	repo := &mockHoursRepo{}
	svc := NewService(repo)

	_, err := svc.UpdateOpeningHours(context.Background(), 1, &model.UpdateOpeningHoursRequest{
		Weekday:   model.Friday,
		StartTime: "10:00",
		EndTime:   "09:00",
		ClinicID:  1,
	})
	require.Error(t, err)
}
