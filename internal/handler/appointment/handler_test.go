package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	appointmentsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/appointment"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

var _ appointmentsvc.AppointmentServicer = (*mockAppointmentService)(nil)

type mockAppointmentService struct {
	CreateFunc func(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetFunc    func(ctx context.Context, id int64) (*model.Appointment, error)
	ListFunc   func(ctx context.Context) ([]*model.Appointment, error)
	UpdateFunc func(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (m *mockAppointmentService) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errors.New("CreateFunc not set")
}

func (m *mockAppointmentService) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not set")
}

func (m *mockAppointmentService) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAppointmentService) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateFunc not set")
}

func (m *mockAppointmentService) DeleteAppointment(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAppointmentService) AppointmentExists(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func setupRouter(svc appointmentsvc.AppointmentServicer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	model.RegisterValidations()
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())

	h := NewHandler(svc)
	appointments := engine.Group("/api/appointments")
	appointments.GET("", h.ListAppointments)
	appointments.GET("/:id", h.GetAppointment)
	appointments.POST("", h.CreateAppointment)
	appointments.PUT("/:id", h.UpdateAppointment)
	appointments.DELETE("/:id", h.DeleteAppointment)
	return engine
}

func validBookingBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"date":            "2026-09-15",
		"time":            "14:30",
		"reason":          "annual checkup",
		"animal_id":       1,
		"veterinarian_id": 2,
		"clinic_id":       3,
	})
	return body
}

func TestCreateAppointment(t *testing.T) {
	svc := &mockAppointmentService{
		CreateFunc: func(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
			return &model.Appointment{
				ID:               1,
				Date:             req.Date,
				Time:             req.Time,
				Reason:           req.Reason,
				Status:           model.AppointmentStatusRequested,
				AnimalID:         req.AnimalID,
				AnimalName:       "Bella",
				VeterinarianID:   req.VeterinarianID,
				VeterinarianName: "Dr. Holm",
				ClinicID:         req.ClinicID,
				ClinicName:       "Downtown Vet",
			}, nil
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(validBookingBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got model.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, model.AppointmentStatusRequested, got.Status)
	assert.Equal(t, "Bella", got.AnimalName)
	assert.Equal(t, "Downtown Vet", got.ClinicName)
}

func TestCreateAppointmentMissingVeterinarian(t *testing.T) {
	svc := &mockAppointmentService{
		CreateFunc: func(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
			return nil, apperrors.NotFound("Veterinarian", nil)
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(validBookingBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Veterinarian not found", body.Message)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	router := setupRouter(&mockAppointmentService{})

	body := []byte(`{"date":"2026-09-15"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAppointmentConflict(t *testing.T) {
	svc := &mockAppointmentService{
		UpdateFunc: func(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
			return nil, apperrors.Conflict("appointment is cancelled", nil)
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]any{
		"date":            "2026-09-15",
		"time":            "14:30",
		"reason":          "annual checkup",
		"status":          "CONFIRMED",
		"animal_id":       1,
		"veterinarian_id": 2,
		"clinic_id":       3,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteAppointment(t *testing.T) {
	router := setupRouter(&mockAppointmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetAppointmentBadID(t *testing.T) {
	router := setupRouter(&mockAppointmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
