package api

import (
	"net/http"

	"github.com/foodgram/backend/internal/middleware"
	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, auth Middlewares) {
	token := router.Group("/auth/token")
	{
		token.POST("/login", h.Login)
		token.POST("/logout", auth.Required, h.Logout)
		token.DELETE("/logout", auth.Required, h.Logout)
	}
}

// Login exchanges email and password for a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := h.authService.Login(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, types.TokenResponse{AuthToken: token})
}

// Logout revokes the token used for this request
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.authService.Logout(ctx, middleware.TokenID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
