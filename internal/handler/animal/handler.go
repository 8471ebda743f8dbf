package animal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	animalsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/animal"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type Handler struct {
	service animalsvc.AnimalServicer
}

func NewHandler(service animalsvc.AnimalServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	writers := auth.RequireRoles(model.RoleVet, model.RoleAdmin)
	animals := rg.Group("/animals")
	{
		animals.GET("", h.ListAnimals)
		animals.GET("/:id", h.GetAnimal)
		animals.POST("", writers, h.CreateAnimal)
		animals.PUT("/:id", writers, h.UpdateAnimal)
		animals.DELETE("/:id", writers, h.DeleteAnimal)
	}
}

func (h *Handler) CreateAnimal(c *gin.Context) {
	var req model.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	animal, err := h.service.CreateAnimal(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, animal)
}

func (h *Handler) GetAnimal(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	animal, err := h.service.GetAnimal(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *Handler) ListAnimals(c *gin.Context) {
	animals, err := h.service.ListAnimals(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

func (h *Handler) UpdateAnimal(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	animal, err := h.service.UpdateAnimal(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *Handler) DeleteAnimal(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteAnimal(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
