package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	appointmentsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/appointment"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type Handler struct {
	service appointmentsvc.AppointmentServicer
}

func NewHandler(service appointmentsvc.AppointmentServicer) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes binds the booking routes. Clients book, staff manage.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	staff := auth.RequireRoles(model.RoleVet, model.RoleAdmin)
	appointments := rg.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("", auth.RequireRoles(model.RoleClient), h.CreateAppointment)
		appointments.PUT("/:id", staff, h.UpdateAppointment)
		appointments.DELETE("/:id", staff, h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	appointment, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	appointment, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	appointment, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
