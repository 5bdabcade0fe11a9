package service

import (
	"context"
	"io"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/shoppinglist"
	"github.com/foodgram/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, req types.LoginRequest) (string, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	Logout(ctx context.Context, jti string) error
}

// IUserService defines the interface for account operations
type IUserService interface {
	Register(ctx context.Context, req types.RegisterRequest) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context, page types.Pagination) ([]model.User, int64, error)
	SetPassword(ctx context.Context, userID uint, req types.SetPasswordRequest) error
}

// IFollowService defines the interface for the follow graph
type IFollowService interface {
	Follow(ctx context.Context, userID, authorID uint) (*model.User, error)
	Unfollow(ctx context.Context, userID, authorID uint) error
	Subscribed(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error)
	Subscriptions(ctx context.Context, userID uint, page types.Pagination, recipesLimit int) ([]Subscription, int64, error)
	Preview(ctx context.Context, author model.User, recipesLimit int) (Subscription, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Get(ctx context.Context, id uint) (*model.Recipe, error)
	List(ctx context.Context, viewerID uint, f RecipeFilter, page types.Pagination) ([]model.Recipe, int64, error)
	Create(ctx context.Context, authorID uint, req types.CreateRecipeRequest) (*model.Recipe, error)
	Update(ctx context.Context, userID, recipeID uint, req types.UpdateRecipeRequest) (*model.Recipe, error)
	Delete(ctx context.Context, userID, recipeID uint) error
	Flags(ctx context.Context, viewerID uint, recipes []model.Recipe) (map[uint]types.RecipeFlags, error)
}

// IRecipeMembership is implemented by the favorites and the shopping cart
type IRecipeMembership interface {
	Add(ctx context.Context, userID, recipeID uint) (*model.Recipe, error)
	Remove(ctx context.Context, userID, recipeID uint) error
}

// IShoppingListService defines the interface for shopping list export
type IShoppingListService interface {
	Aggregate(ctx context.Context, userID uint) ([]model.ShoppingItem, error)
	Download(ctx context.Context, userID uint, f shoppinglist.Format, w io.Writer) error
}

// ITagService defines the interface for tag lookups
type ITagService interface {
	List(ctx context.Context) ([]model.Tag, error)
	Get(ctx context.Context, id uint) (*model.Tag, error)
}

// IIngredientService defines the interface for ingredient lookups
type IIngredientService interface {
	Search(ctx context.Context, prefix string) ([]model.Ingredient, error)
	Get(ctx context.Context, id uint) (*model.Ingredient, error)
}

var (
	_ IAuthService         = (*AuthService)(nil)
	_ IUserService         = (*UserService)(nil)
	_ IFollowService       = (*FollowService)(nil)
	_ IRecipeService       = (*RecipeService)(nil)
	_ IRecipeMembership    = (*FavoriteService)(nil)
	_ IRecipeMembership    = (*CartService)(nil)
	_ IShoppingListService = (*ShoppingListService)(nil)
	_ ITagService          = (*TagService)(nil)
	_ IIngredientService   = (*IngredientService)(nil)
)
