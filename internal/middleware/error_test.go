package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

func setupErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.GET("/resource", handler)
	return engine
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerAppError(t *testing.T) {
	router := setupErrorRouter(func(c *gin.Context) {
		c.Error(apperrors.NotFound("Animal", nil))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Animal not found", body.Message)
}

func TestErrorHandlerWrappedAppError(t *testing.T) {
	router := setupErrorRouter(func(c *gin.Context) {
		c.Error(fmt.Errorf("failed to create animal: %w", apperrors.NotFound("Owner", nil)))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Owner not found", body.Message)
}

func TestErrorHandlerDoubleWrappedConflict(t *testing.T) {
	inner := apperrors.Conflict("appointment is cancelled", nil)
	router := setupErrorRouter(func(c *gin.Context) {
		c.Error(fmt.Errorf("update failed: %w", fmt.Errorf("transition rejected: %w", inner)))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "appointment is cancelled", decodeErrorBody(t, w).Message)
}

func TestErrorHandlerOpaqueError(t *testing.T) {
	router := setupErrorRouter(func(c *gin.Context) {
		c.Error(fmt.Errorf("pq: connection refused"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, w.Body.String(), "pq:")
}
