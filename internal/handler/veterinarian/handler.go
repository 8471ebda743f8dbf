package veterinarian

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	vetsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/veterinarian"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type Handler struct {
	service vetsvc.VeterinarianServicer
}

func NewHandler(service vetsvc.VeterinarianServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	writers := auth.RequireRoles(model.RoleVet, model.RoleAdmin)
	vets := rg.Group("/veterinarians")
	{
		vets.GET("", h.ListVeterinarians)
		vets.GET("/:id", h.GetVeterinarian)
		vets.POST("", writers, h.CreateVeterinarian)
		vets.PUT("/:id", writers, h.UpdateVeterinarian)
		vets.DELETE("/:id", writers, h.DeleteVeterinarian)
	}
}

func (h *Handler) CreateVeterinarian(c *gin.Context) {
	var req model.CreateVeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	vet, err := h.service.CreateVeterinarian(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, vet)
}

func (h *Handler) GetVeterinarian(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	vet, err := h.service.GetVeterinarian(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, vet)
}

func (h *Handler) ListVeterinarians(c *gin.Context) {
	vets, err := h.service.ListVeterinarians(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, vets)
}

func (h *Handler) UpdateVeterinarian(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateVeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	vet, err := h.service.UpdateVeterinarian(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, vet)
}

func (h *Handler) DeleteVeterinarian(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteVeterinarian(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
