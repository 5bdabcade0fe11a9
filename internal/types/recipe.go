package types

import (
	"time"

	"github.com/foodgram/backend/internal/model"
)

// UserResponse is the public view of a user
type UserResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func NewUserResponse(u model.User, subscribed bool) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}

// RecipeIngredientResponse flattens a recipe ingredient with its catalog entry
type RecipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeResponse struct {
	ID               uint                       `json:"id"`
	Author           UserResponse               `json:"author"`
	Name             string                     `json:"name"`
	Text             string                     `json:"text"`
	Image            string                     `json:"image"`
	CookingTime      int                        `json:"cooking_time"`
	Tags             []model.Tag                `json:"tags"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	CreatedAt        time.Time                  `json:"created_at"`
}

// RecipeFlags are the per-viewer annotations of a recipe
type RecipeFlags struct {
	IsFavorited      bool
	IsInShoppingCart bool
	AuthorSubscribed bool
}

func NewRecipeResponse(r model.Recipe, flags RecipeFlags) RecipeResponse {
	resp := RecipeResponse{
		ID:               r.ID,
		Name:             r.Name,
		Text:             r.Text,
		Image:            r.Image,
		CookingTime:      r.CookingTime,
		Tags:             r.Tags,
		Ingredients:      make([]RecipeIngredientResponse, 0, len(r.Ingredients)),
		IsFavorited:      flags.IsFavorited,
		IsInShoppingCart: flags.IsInShoppingCart,
		CreatedAt:        r.CreatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []model.Tag{}
	}
	if r.Author != nil {
		resp.Author = NewUserResponse(*r.Author, flags.AuthorSubscribed)
	}
	for _, ri := range r.Ingredients {
		item := RecipeIngredientResponse{ID: ri.IngredientID, Amount: ri.Amount}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
			item.MeasurementUnit = ri.Ingredient.MeasurementUnit
		}
		resp.Ingredients = append(resp.Ingredients, item)
	}
	return resp
}

// ShortRecipeResponse is used in favorites, cart and subscription previews
type ShortRecipeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func NewShortRecipeResponse(r model.Recipe) ShortRecipeResponse {
	return ShortRecipeResponse{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

// SubscriptionResponse is a followed author with a preview of their recipes
type SubscriptionResponse struct {
	UserResponse
	Recipes      []ShortRecipeResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}
