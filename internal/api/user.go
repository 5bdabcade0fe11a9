package api

import (
	"net/http"
	"strconv"

	"github.com/foodgram/backend/internal/middleware"
	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users   service.IUserService
	follows service.IFollowService
}

func NewUserHandler(users service.IUserService, follows service.IFollowService) *UserHandler {
	return &UserHandler{users: users, follows: follows}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, auth Middlewares) {
	users := router.Group("/users")
	{
		users.GET("", auth.Optional, h.ListUsers)
		users.POST("", h.Register)
		users.GET("/me", auth.Required, h.Me)
		users.POST("/set_password", auth.Required, h.SetPassword)
		users.GET("/subscriptions", auth.Required, h.Subscriptions)
		users.GET("/:id", auth.Optional, h.GetUser)
		users.POST("/:id/subscribe", auth.Required, h.Subscribe)
		users.DELETE("/:id/subscribe", auth.Required, h.Unsubscribe)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.users.Register(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, types.NewUserResponse(*user, false))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	page := pagination(c)
	users, total, err := h.users.List(ctx, page)
	if err != nil {
		respondError(c, err)
		return
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := h.follows.Subscribed(ctx, middleware.UserID(c), ids)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]types.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, types.NewUserResponse(u, subscribed[u.ID]))
	}
	response.SuccessWithMeta(c, http.StatusOK, out, page.Meta(total))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	subscribed, err := h.follows.Subscribed(ctx, middleware.UserID(c), []uint{user.ID})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, types.NewUserResponse(*user, subscribed[user.ID]))
}

func (h *UserHandler) Me(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.users.Get(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, types.NewUserResponse(*user, false))
}

func (h *UserHandler) SetPassword(c *gin.Context) {
	var req types.SetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.users.SetPassword(ctx, middleware.UserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	author, err := h.follows.Follow(ctx, middleware.UserID(c), authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	sub, err := h.follows.Preview(ctx, *author, recipesLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, subscriptionResponse(sub))
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.follows.Unfollow(ctx, middleware.UserID(c), authorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Subscriptions lists followed authors with a preview of their recipes
func (h *UserHandler) Subscriptions(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	page := pagination(c)
	subs, total, err := h.follows.Subscriptions(ctx, middleware.UserID(c), page, recipesLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]types.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, subscriptionResponse(sub))
	}
	response.SuccessWithMeta(c, http.StatusOK, out, page.Meta(total))
}

func recipesLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || n < 0 {
		return service.DefaultRecipesLimit
	}
	return n
}

func subscriptionResponse(sub service.Subscription) types.SubscriptionResponse {
	return types.SubscriptionResponse{
		UserResponse: types.NewUserResponse(sub.Author, true),
		Recipes:      shortRecipes(sub.Recipes),
		RecipesCount: sub.RecipesCount,
	}
}

func shortRecipes(recipes []model.Recipe) []types.ShortRecipeResponse {
	out := make([]types.ShortRecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, types.NewShortRecipeResponse(r))
	}
	return out
}
