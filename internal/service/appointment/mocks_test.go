package appointment

import (
	"context"
	"errors"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
)

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockAppointmentRepo struct {
	CreateFunc func(ctx context.Context, appointment *model.Appointment) error
	GetFunc    func(ctx context.Context, id int64) (*model.Appointment, error)
	ListFunc   func(ctx context.Context) ([]*model.Appointment, error)
	UpdateFunc func(ctx context.Context, appointment *model.Appointment) error
	DeleteFunc func(ctx context.Context, id int64) error
	ExistsFunc func(ctx context.Context, id int64) (bool, error)

	CreateCalls int
	UpdateCalls int
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not set")
}

func (m *mockAppointmentRepo) List(ctx context.Context) ([]*model.Appointment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *model.Appointment) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAppointmentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

var _ repository.AnimalRepository = (*mockAnimalRepo)(nil)

type mockAnimalRepo struct {
	GetFunc func(ctx context.Context, id int64) (*model.Animal, error)
}

func (m *mockAnimalRepo) Create(ctx context.Context, animal *model.Animal) error { return nil }
func (m *mockAnimalRepo) Get(ctx context.Context, id int64) (*model.Animal, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not set")
}
func (m *mockAnimalRepo) List(ctx context.Context) ([]*model.Animal, error)   { return nil, nil }
func (m *mockAnimalRepo) Update(ctx context.Context, animal *model.Animal) error { return nil }
func (m *mockAnimalRepo) Delete(ctx context.Context, id int64) error          { return nil }
func (m *mockAnimalRepo) Exists(ctx context.Context, id int64) (bool, error)  { return false, nil }

var _ repository.ClientRepository = (*mockClientRepo)(nil)

type mockClientRepo struct {
	GetFunc func(ctx context.Context, id int64) (*model.Client, error)
}

func (m *mockClientRepo) Create(ctx context.Context, client *model.Client) error { return nil }
func (m *mockClientRepo) Get(ctx context.Context, id int64) (*model.Client, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not set")
}
func (m *mockClientRepo) List(ctx context.Context) ([]*model.Client, error)   { return nil, nil }
func (m *mockClientRepo) Update(ctx context.Context, client *model.Client) error { return nil }
func (m *mockClientRepo) Delete(ctx context.Context, id int64) error          { return nil }
func (m *mockClientRepo) Exists(ctx context.Context, id int64) (bool, error)  { return false, nil }

type mockMailer struct {
	SendFunc  func(ctx context.Context, to string, appointment *model.Appointment) error
	SentTo    []string
	SendCalls int
}

func (m *mockMailer) SendAppointmentConfirmation(ctx context.Context, to string, appointment *model.Appointment) error {
	m.SendCalls++
	m.SentTo = append(m.SentTo, to)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, appointment)
	}
	return nil
}
