package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/foodgram/backend/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogService loads reference data (tags, ingredients) from JSON dumps
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ImportTags reads a JSON array of {name, color, slug} objects. Tags whose
// slug already exists are skipped. It returns the number of inserted rows.
func (s *CatalogService) ImportTags(ctx context.Context, r io.Reader) (int64, error) {
	var tags []model.Tag
	if err := json.NewDecoder(r).Decode(&tags); err != nil {
		return 0, fmt.Errorf("decode tags: %w", err)
	}
	for i := range tags {
		tags[i].ID = 0
		if tags[i].Slug == "" {
			return 0, fmt.Errorf("tag %d: slug is required", i)
		}
	}
	return s.insertIgnoringDuplicates(ctx, "tags", &tags, len(tags))
}

// ImportIngredients reads a JSON array of {name, measurement_unit} objects.
// Existing (name, measurement_unit) pairs are skipped.
func (s *CatalogService) ImportIngredients(ctx context.Context, r io.Reader) (int64, error) {
	var ingredients []model.Ingredient
	if err := json.NewDecoder(r).Decode(&ingredients); err != nil {
		return 0, fmt.Errorf("decode ingredients: %w", err)
	}
	for i := range ingredients {
		ingredients[i].ID = 0
		if ingredients[i].Name == "" || ingredients[i].MeasurementUnit == "" {
			return 0, fmt.Errorf("ingredient %d: name and measurement_unit are required", i)
		}
	}
	return s.insertIgnoringDuplicates(ctx, "ingredients", &ingredients, len(ingredients))
}

func (s *CatalogService) insertIgnoringDuplicates(ctx context.Context, what string, rows interface{}, n int) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 500)
	if res.Error != nil {
		return 0, fmt.Errorf("import %s: %w", what, res.Error)
	}
	log.Info().Str("catalog", what).Int("read", n).Int64("inserted", res.RowsAffected).Msg("catalog imported")
	return res.RowsAffected, nil
}
