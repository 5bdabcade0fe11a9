package service

import (
	"context"
	"io"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/shoppinglist"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ShoppingListService struct {
	db *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

type itemKey struct {
	name string
	unit string
}

// aggregator sums amounts per (name, unit) and remembers the order in which
// each key was first seen.
type aggregator struct {
	totals map[itemKey]int64
	order  []itemKey
}

func newAggregator() *aggregator {
	return &aggregator{totals: make(map[itemKey]int64)}
}

func (a *aggregator) add(name, unit string, amount int64) {
	k := itemKey{name: name, unit: unit}
	if _, seen := a.totals[k]; !seen {
		a.order = append(a.order, k)
	}
	a.totals[k] += amount
}

func (a *aggregator) items() []model.ShoppingItem {
	out := make([]model.ShoppingItem, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, model.ShoppingItem{Name: k.name, MeasurementUnit: k.unit, Amount: a.totals[k]})
	}
	return out
}

// Aggregate builds the consolidated shopping list for the user's cart.
// Cart entries are visited in the order they were added and each recipe's
// ingredients in the order they were stored.
func (s *ShoppingListService) Aggregate(ctx context.Context, userID uint) ([]model.ShoppingItem, error) {
	db := s.db.WithContext(ctx)

	var entries []model.ShoppingCartEntry
	if err := db.Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	agg := newAggregator()
	if len(entries) == 0 {
		return agg.items(), nil
	}

	recipeIDs := make([]uint, 0, len(entries))
	for _, e := range entries {
		recipeIDs = append(recipeIDs, e.RecipeID)
	}

	var rows []model.RecipeIngredient
	err := db.Preload("Ingredient").
		Where("recipe_id IN ?", recipeIDs).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	byRecipe := make(map[uint][]model.RecipeIngredient, len(entries))
	for _, ri := range rows {
		byRecipe[ri.RecipeID] = append(byRecipe[ri.RecipeID], ri)
	}

	for _, e := range entries {
		lines, ok := byRecipe[e.RecipeID]
		if !ok {
			log.Debug().Uint("user_id", userID).Uint("recipe_id", e.RecipeID).Msg("cart recipe has no ingredients, skipping")
			continue
		}
		for _, ri := range lines {
			if ri.Ingredient == nil {
				continue
			}
			agg.add(ri.Ingredient.Name, ri.Ingredient.MeasurementUnit, int64(ri.Amount))
		}
	}
	return agg.items(), nil
}

// Download aggregates the cart and renders it in format f
func (s *ShoppingListService) Download(ctx context.Context, userID uint, f shoppinglist.Format, w io.Writer) error {
	items, err := s.Aggregate(ctx, userID)
	if err != nil {
		return err
	}
	return shoppinglist.Render(w, f, items)
}
