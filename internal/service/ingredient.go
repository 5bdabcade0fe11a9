package service

import (
	"context"
	"errors"
	"strings"

	"github.com/foodgram/backend/internal/model"
	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns catalog entries whose name starts with prefix, ignoring
// case, ordered by name. An empty prefix lists the whole catalog.
func (s *IngredientService) Search(ctx context.Context, prefix string) ([]model.Ingredient, error) {
	q := s.db.WithContext(ctx).Model(&model.Ingredient{})
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		pattern := likeEscaper.Replace(strings.ToLower(prefix)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}

	ingredients := []model.Ingredient{}
	err := q.Order("name").Order("id").Find(&ingredients).Error
	return ingredients, err
}

func (s *IngredientService) Get(ctx context.Context, id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("ingredient not found")
		}
		return nil, err
	}
	return &ingredient, nil
}
