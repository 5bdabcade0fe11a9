package service

import (
	"context"

	"github.com/foodgram/backend/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add marks a recipe as favorite for the user and returns the recipe
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID uint) (*model.Recipe, error) {
	recipe, err := findRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	entry := &model.Favorite{UserID: userID, RecipeID: recipeID}
	if err := insertUnique(ctx, s.db, entry, "recipe is already in favorites"); err != nil {
		return nil, err
	}
	log.Debug().Uint("user_id", userID).Uint("recipe_id", recipeID).Msg("recipe favorited")
	return recipe, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID uint) error {
	return deleteExisting(ctx, s.db, &model.Favorite{}, "recipe is not in favorites",
		"user_id = ? AND recipe_id = ?", userID, recipeID)
}

// Favorited reports which of recipeIDs the user has favorited
func (s *FavoriteService) Favorited(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return memberSet(ctx, s.db, &model.Favorite{}, "recipe_id", userID, recipeIDs)
}
