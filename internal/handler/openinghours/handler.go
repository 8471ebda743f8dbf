package openinghours

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	hourssvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/openinghours"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type Handler struct {
	service hourssvc.OpeningHoursServicer
}

func NewHandler(service hourssvc.OpeningHoursServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	writers := auth.RequireRoles(model.RoleVet, model.RoleAdmin)
	hours := rg.Group("/openinghours")
	{
		hours.GET("", h.ListOpeningHours)
		hours.GET("/:id", h.GetOpeningHours)
		hours.POST("", writers, h.CreateOpeningHours)
		hours.PUT("/:id", writers, h.UpdateOpeningHours)
		hours.DELETE("/:id", writers, h.DeleteOpeningHours)
	}
}

func (h *Handler) CreateOpeningHours(c *gin.Context) {
	var req model.CreateOpeningHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	hours, err := h.service.CreateOpeningHours(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, hours)
}

func (h *Handler) GetOpeningHours(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	hours, err := h.service.GetOpeningHours(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

func (h *Handler) ListOpeningHours(c *gin.Context) {
	hours, err := h.service.ListOpeningHours(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

func (h *Handler) UpdateOpeningHours(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateOpeningHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	hours, err := h.service.UpdateOpeningHours(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

func (h *Handler) DeleteOpeningHours(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteOpeningHours(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
