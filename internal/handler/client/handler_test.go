package client

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
	clientsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/client"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

var _ clientsvc.ClientServicer = (*mockClientService)(nil)

type mockClientService struct {
	CreateFunc func(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error)
	GetFunc    func(ctx context.Context, id int64) (*model.Client, error)
	ListFunc   func(ctx context.Context) ([]*model.Client, error)
	UpdateFunc func(ctx context.Context, id int64, req *model.UpdateClientRequest) (*model.Client, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (m *mockClientService) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errors.New("CreateFunc not set")
}

func (m *mockClientService) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not set")
}

func (m *mockClientService) ListClients(ctx context.Context) ([]*model.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockClientService) UpdateClient(ctx context.Context, id int64, req *model.UpdateClientRequest) (*model.Client, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateFunc not set")
}

func (m *mockClientService) DeleteClient(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockClientService) ClientExists(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func setupRouter(svc clientsvc.ClientServicer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	model.RegisterValidations()
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())

	h := NewHandler(svc)
	clients := engine.Group("/api/clients")
	clients.GET("", h.ListClients)
	clients.GET("/:id", h.GetClient)
	clients.POST("", h.CreateClient)
	clients.PUT("/:id", h.UpdateClient)
	clients.DELETE("/:id", h.DeleteClient)
	return engine
}

func TestCreateClient(t *testing.T) {
	svc := &mockClientService{
		CreateFunc: func(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
			return &model.Client{ID: 1, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}, nil
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]any{
		"first_name": "Felicia",
		"last_name":  "Favrholdt",
		"email":      "felicia@example.com",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Felicia", got.FirstName)
}

func TestCreateClientMissingEmail(t *testing.T) {
	router := setupRouter(&mockClientService{})

	body := []byte(`{"first_name":"Felicia","last_name":"Favrholdt"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetClientNotFound(t *testing.T) {
	svc := &mockClientService{
		GetFunc: func(ctx context.Context, id int64) (*model.Client, error) {
			return nil, apperrors.NotFound("Client", nil)
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/9999", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Client not found", body.Message)
}

func TestGetClientBadID(t *testing.T) {
	router := setupRouter(&mockClientService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListClients(t *testing.T) {
	svc := &mockClientService{
		ListFunc: func(ctx context.Context) ([]*model.Client, error) {
			return []*model.Client{{ID: 1}, {ID: 2}}, nil
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []*model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestDeleteClient(t *testing.T) {
	router := setupRouter(&mockClientService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/clients/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestDeleteClientNotFound(t *testing.T) {
	svc := &mockClientService{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return apperrors.NotFound("Client", nil)
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/clients/9999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInternalErrorHidesDetails(t *testing.T) {
	svc := &mockClientService{
		GetFunc: func(ctx context.Context, id int64) (*model.Client, error) {
			return nil, apperrors.Internal(errors.New("pq: connection refused"))
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, w.Body.String(), "pq:")
}
