package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	clientsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/client"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type Handler struct {
	service clientsvc.ClientServicer
}

func NewHandler(service clientsvc.ClientServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", auth.RequireRoles(model.RoleVet, model.RoleAdmin), h.UpdateClient)
		clients.DELETE("/:id", auth.RequireRoles(model.RoleVet, model.RoleAdmin), h.DeleteClient)
	}
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req model.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	client, err := h.service.CreateClient(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	client, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
