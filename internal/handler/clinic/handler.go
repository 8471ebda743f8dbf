package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	clinicsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/clinic"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type Handler struct {
	service clinicsvc.ClinicServicer
}

func NewHandler(service clinicsvc.ClinicServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	writers := auth.RequireRoles(model.RoleVet, model.RoleAdmin)
	clinics := rg.Group("/clinics")
	{
		clinics.GET("", h.ListClinics)
		clinics.GET("/:id", h.GetClinic)
		clinics.GET("/:id/openinghours", h.GetClinicOpeningHours)
		clinics.POST("", writers, h.CreateClinic)
		clinics.PUT("/:id", writers, h.UpdateClinic)
		clinics.DELETE("/:id", writers, h.DeleteClinic)
	}
}

func (h *Handler) CreateClinic(c *gin.Context) {
	var req model.CreateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	clinic, err := h.service.CreateClinic(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, clinic)
}

func (h *Handler) GetClinic(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	clinic, err := h.service.GetClinic(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clinic)
}

// GetClinicOpeningHours lists the weekly schedule of one clinic.
func (h *Handler) GetClinicOpeningHours(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	hours, err := h.service.GetClinicOpeningHours(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

func (h *Handler) ListClinics(c *gin.Context) {
	clinics, err := h.service.ListClinics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clinics)
}

func (h *Handler) UpdateClinic(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	clinic, err := h.service.UpdateClinic(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clinic)
}

func (h *Handler) DeleteClinic(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteClinic(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
