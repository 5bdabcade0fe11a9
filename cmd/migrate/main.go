package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/foodgram/backend/config"
	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/pkg/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	tagsFile := flag.String("tags", "", "JSON file with tags to import")
	ingredientsFile := flag.String("ingredients", "", "JSON file with ingredients to import")
	schemaOnly := flag.Bool("schema-only", false, "Only migrate the schema")
	flag.Parse()

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
	logger.Info("schema migrated", map[string]interface{}{"driver": cfg.DBDriver})
	if *schemaOnly {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	catalog := service.NewCatalogService(db)
	if *tagsFile != "" {
		importFile(ctx, *tagsFile, catalog.ImportTags)
	}
	if *ingredientsFile != "" {
		importFile(ctx, *ingredientsFile, catalog.ImportIngredients)
	}
}

func importFile(ctx context.Context, path string, load func(context.Context, io.Reader) (int64, error)) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("failed to open catalog file")
	}
	defer f.Close()

	n, err := load(ctx, f)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("catalog import failed")
	}
	logger.Info("catalog file imported", map[string]interface{}{"file": path, "inserted": n})
}
