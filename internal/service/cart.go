package service

import (
	"context"

	"github.com/foodgram/backend/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add puts a recipe into the user's shopping cart and returns the recipe
func (s *CartService) Add(ctx context.Context, userID, recipeID uint) (*model.Recipe, error) {
	recipe, err := findRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	entry := &model.ShoppingCartEntry{UserID: userID, RecipeID: recipeID}
	if err := insertUnique(ctx, s.db, entry, "recipe is already in the shopping cart"); err != nil {
		return nil, err
	}
	log.Debug().Uint("user_id", userID).Uint("recipe_id", recipeID).Msg("recipe added to cart")
	return recipe, nil
}

func (s *CartService) Remove(ctx context.Context, userID, recipeID uint) error {
	return deleteExisting(ctx, s.db, &model.ShoppingCartEntry{}, "recipe is not in the shopping cart",
		"user_id = ? AND recipe_id = ?", userID, recipeID)
}

// InCart reports which of recipeIDs are in the user's cart
func (s *CartService) InCart(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return memberSet(ctx, s.db, &model.ShoppingCartEntry{}, "recipe_id", userID, recipeIDs)
}
