package database

import (
	"fmt"

	"github.com/foodgram/backend/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Models lists every table in dependency order
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Tag{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Favorite{},
		&model.ShoppingCartEntry{},
		&model.Follow{},
		&model.AuthToken{},
	}
}

// RunMigrations creates or updates the schema for all models
func RunMigrations(db *gorm.DB) error {
	log.Info().Str("dialect", db.Dialector.Name()).Msg("running auto-migration")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
