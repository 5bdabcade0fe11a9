package main

import (
	"context"
	"strconv"
	"time"

	"github.com/foodgram/backend/config"
	"github.com/foodgram/backend/internal/api"
	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/middleware"
	"github.com/foodgram/backend/internal/router"
	"github.com/foodgram/backend/internal/server"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/storage"
	"github.com/foodgram/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(string(cfg.Env), cfg.LogLevel)
	gin.SetMode(cfg.Env.GinMode())

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", err)
		}
	}()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// the recipe creation limiter is optional
		logger.Error("redis unavailable, rate limiting disabled", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.New(ctx, cfg.Storage)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to initialize image storage")
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(db)
	followService := service.NewFollowService(db)
	recipeService := service.NewRecipeService(db, service.NewImageService(store))
	favoriteService := service.NewFavoriteService(db)
	cartService := service.NewCartService(db)
	shoppingService := service.NewShoppingListService(db)

	go purgeExpiredTokens(authService, time.Hour)

	handlers := router.Handlers{
		Auth:    api.NewAuthHandler(authService),
		Users:   api.NewUserHandler(userService, followService),
		Recipes: api.NewRecipeHandler(recipeService, favoriteService, cartService, shoppingService),
		Catalog: api.NewCatalogHandler(service.NewTagService(db), service.NewIngredientService(db)),
		Health:  api.NewHealthHandler(db),
	}
	limiter := middleware.NewRecipeCreationRateLimiter(redisClient, cfg.RecipesPerHour)
	engine := router.SetupRouter(handlers, authService, limiter, cfg.CORSOrigins)

	logger.Info("foodgram api configured", map[string]interface{}{
		"env":     cfg.Env,
		"db":      cfg.DBDriver,
		"storage": cfg.Storage.Driver,
		"redis":   redisClient != nil,
	})

	if err := server.New(cfg, engine).Start(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	logger.Info("server stopped", nil)
}

// purgeExpiredTokens periodically removes tokens that can no longer authenticate
func purgeExpiredTokens(auth *service.AuthService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		n, err := auth.PurgeExpired(ctx)
		cancel()
		if err != nil {
			logger.Error("failed to purge expired tokens", err)
			continue
		}
		logger.Debug("purged expired tokens: " + strconv.FormatInt(n, 10))
	}
}
