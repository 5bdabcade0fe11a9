package main

import (
	"context"
	"errors"
	"time"

	"github.com/foodgram/backend/config"
	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/types"
	"github.com/foodgram/backend/pkg/logger"
	"github.com/rs/zerolog/log"
)

const testPassword = "testpassword123"

var testUsers = []types.RegisterRequest{
	{Email: "john.doe@example.com", Username: "johndoe", FirstName: "John", LastName: "Doe"},
	{Email: "jane.smith@example.com", Username: "janesmith", FirstName: "Jane", LastName: "Smith"},
	{Email: "bob.wilson@example.com", Username: "bobwilson", FirstName: "Bob", LastName: "Wilson"},
	{Email: "alice.cooper@example.com", Username: "alicecooper", FirstName: "Alice", LastName: "Cooper"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(string(cfg.Env), cfg.LogLevel)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	users := service.NewUserService(db)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created := 0
	for _, req := range testUsers {
		req.Password = testPassword
		if _, err := users.Register(ctx, req); err != nil {
			if errors.Is(err, service.ErrConflict) {
				logger.Debug("user " + req.Email + " already exists, skipping")
				continue
			}
			log.Fatal().Err(err).Str("email", req.Email).Msg("failed to create test user")
		}
		created++
	}

	logger.Info("test users seeded", map[string]interface{}{
		"created":  created,
		"password": testPassword,
	})
}
