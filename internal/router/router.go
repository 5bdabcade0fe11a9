package router

import (
	"github.com/foodgram/backend/internal/api"
	"github.com/foodgram/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything mounted under /api
type Handlers struct {
	Auth    *api.AuthHandler
	Users   *api.UserHandler
	Recipes *api.RecipeHandler
	Catalog *api.CatalogHandler
	Health  *api.HealthHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator, recipeLimiter *middleware.RateLimiter, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.Logger(), middleware.CORS(corsOrigins))

	router.GET("/health", h.Health.HealthCheck)

	guards := api.Middlewares{
		Required:       middleware.RequireAuth(validator),
		Optional:       middleware.OptionalAuth(validator),
		RecipeCreation: recipeLimiter.Middleware(),
	}

	v1 := router.Group("/api")
	h.Auth.RegisterRoutes(v1, guards)
	h.Users.RegisterRoutes(v1, guards)
	h.Recipes.RegisterRoutes(v1, guards)
	h.Catalog.RegisterRoutes(v1)

	return router
}
