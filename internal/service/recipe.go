package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter narrows a recipe listing. All set conditions must hold.
type RecipeFilter struct {
	AuthorIDs        []uint
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
}

type RecipeService struct {
	db     *gorm.DB
	images *ImageService
}

func NewRecipeService(db *gorm.DB, images *ImageService) *RecipeService {
	return &RecipeService{db: db, images: images}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id") }).
		Preload("Ingredients.Ingredient")
}

// Get loads a recipe with author, tags and ingredients
func (s *RecipeService) Get(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).Scopes(withDetails).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("recipe not found")
		}
		return nil, err
	}
	return &recipe, nil
}

// List returns recipes newest first. Favorite and cart filters need a
// viewer; for an anonymous viewer they match nothing.
func (s *RecipeService) List(ctx context.Context, viewerID uint, f RecipeFilter, page types.Pagination) ([]model.Recipe, int64, error) {
	recipes := []model.Recipe{}
	if (f.IsFavorited || f.IsInShoppingCart) && viewerID == 0 {
		return recipes, 0, nil
	}

	filter := func(db *gorm.DB) *gorm.DB {
		if len(f.AuthorIDs) > 0 {
			db = db.Where("recipes.author_id IN ?", f.AuthorIDs)
		}
		if len(f.TagSlugs) > 0 {
			db = db.Where("recipes.id IN (?)", s.db.Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", f.TagSlugs))
		}
		if f.IsFavorited {
			db = db.Where("recipes.id IN (?)", s.db.Model(&model.Favorite{}).
				Select("recipe_id").Where("user_id = ?", viewerID))
		}
		if f.IsInShoppingCart {
			db = db.Where("recipes.id IN (?)", s.db.Model(&model.ShoppingCartEntry{}).
				Select("recipe_id").Where("user_id = ?", viewerID))
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := s.db.WithContext(ctx).
		Scopes(filter, withDetails).
		Order("recipes.created_at DESC").Order("recipes.id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Create stores a new recipe authored by authorID
func (s *RecipeService) Create(ctx context.Context, authorID uint, req types.CreateRecipeRequest) (*model.Recipe, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.Tags, req.Ingredients); err != nil {
		return nil, err
	}
	image, err := s.images.Store(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := model.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       image.URL,
		CookingTime: req.CookingTime,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
			return err
		}
		if err := replaceTags(tx, recipe.ID, req.Tags); err != nil {
			return err
		}
		return replaceIngredients(tx, recipe.ID, req.Ingredients)
	})
	if err != nil {
		s.images.Discard(ctx, image)
		return nil, translateRecipeError(err)
	}

	log.Info().Uint("recipe_id", recipe.ID).Uint("author_id", authorID).Msg("recipe created")
	return s.Get(ctx, recipe.ID)
}

// Update applies a partial update. Only the author may change a recipe.
func (s *RecipeService) Update(ctx context.Context, userID, recipeID uint, req types.UpdateRecipeRequest) (*model.Recipe, error) {
	recipe, err := findRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrForbidden
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.Tags, req.Ingredients); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}
	var image StoredImage
	if req.Image != nil {
		if image, err = s.images.Store(ctx, *req.Image); err != nil {
			return nil, err
		}
		updates["image"] = image.URL
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(recipe).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Tags != nil {
			if err := replaceTags(tx, recipe.ID, req.Tags); err != nil {
				return err
			}
		}
		if req.Ingredients != nil {
			return replaceIngredients(tx, recipe.ID, req.Ingredients)
		}
		return nil
	})
	if err != nil {
		s.images.Discard(ctx, image)
		return nil, translateRecipeError(err)
	}
	return s.Get(ctx, recipe.ID)
}

// Delete removes a recipe together with its ingredient rows, tag links,
// favorites and cart entries. Only the author may delete a recipe.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID uint) error {
	recipe, err := findRecipe(ctx, s.db, recipeID)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return ErrForbidden
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range []interface{}{&model.RecipeIngredient{}, &model.Favorite{}, &model.ShoppingCartEntry{}} {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(dep).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipe.ID).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Recipe{}, recipe.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound("recipe not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Uint("recipe_id", recipe.ID).Msg("recipe deleted")
	return nil
}

// Flags computes the per-viewer annotations for recipes
func (s *RecipeService) Flags(ctx context.Context, viewerID uint, recipes []model.Recipe) (map[uint]types.RecipeFlags, error) {
	flags := make(map[uint]types.RecipeFlags, len(recipes))
	if viewerID == 0 || len(recipes) == 0 {
		return flags, nil
	}

	ids := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	favorited, err := NewFavoriteService(s.db).Favorited(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := NewCartService(s.db).InCart(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	subscribed, err := NewFollowService(s.db).Subscribed(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	for _, r := range recipes {
		flags[r.ID] = types.RecipeFlags{
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			AuthorSubscribed: subscribed[r.AuthorID],
		}
	}
	return flags, nil
}

// checkReferences makes sure every referenced tag and ingredient exists
func (s *RecipeService) checkReferences(ctx context.Context, tagIDs []uint, items []types.IngredientAmount) error {
	if len(tagIDs) > 0 {
		var n int64
		if err := s.db.WithContext(ctx).Model(&model.Tag{}).Where("id IN ?", tagIDs).Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(tagIDs)) {
			return fieldError("tags", "unknown tag id")
		}
	}
	if len(items) > 0 {
		var n int64
		ids := types.IngredientIDs(items)
		if err := s.db.WithContext(ctx).Model(&model.Ingredient{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return fieldError("ingredients", "unknown ingredient id")
		}
	}
	return nil
}

func replaceTags(tx *gorm.DB, recipeID uint, tagIDs []uint) error {
	if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipeID).Error; err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if err := tx.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", recipeID, tagID).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceIngredients(tx *gorm.DB, recipeID uint, items []types.IngredientAmount) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	rows := make([]model.RecipeIngredient, 0, len(items))
	for _, it := range items {
		rows = append(rows, model.RecipeIngredient{RecipeID: recipeID, IngredientID: it.ID, Amount: it.Amount})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}

func translateRecipeError(err error) error {
	if database.IsDuplicateKey(err) {
		return conflict("an ingredient may be listed only once per recipe")
	}
	return fmt.Errorf("save recipe: %w", err)
}
