package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	authsvc "github.com/feliciafavrholdt/vetlocator-api/internal/service/auth"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type Handler struct {
	service authsvc.AuthServicer
}

func NewHandler(service authsvc.AuthServicer) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes binds the public auth endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	security := rg.Group("/security")
	{
		security.POST("/register", h.Register)
		security.POST("/login", h.Login)
		security.POST("/refresh", h.Refresh)
	}
}

// RegisterProtectedRoutes binds endpoints that need a valid token.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/security/logout", h.Logout)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	tokens, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(err.Error(), err))
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Logout revokes the access token used on this request.
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if token == "" {
		c.Error(apperrors.Unauthorized("missing authentication", nil))
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
