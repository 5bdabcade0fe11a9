package api

import (
	"bytes"
	"net/http"

	"github.com/foodgram/backend/internal/middleware"
	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/shoppinglist"
	"github.com/foodgram/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipes   service.IRecipeService
	favorites service.IRecipeMembership
	cart      service.IRecipeMembership
	shopping  service.IShoppingListService
}

func NewRecipeHandler(
	recipes service.IRecipeService,
	favorites service.IRecipeMembership,
	cart service.IRecipeMembership,
	shopping service.IShoppingListService,
) *RecipeHandler {
	return &RecipeHandler{
		recipes:   recipes,
		favorites: favorites,
		cart:      cart,
		shopping:  shopping,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, auth Middlewares) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", auth.Optional, h.ListRecipes)
		recipes.POST("", auth.Required, auth.RecipeCreation, h.CreateRecipe)
		recipes.GET("/download_shopping_cart", auth.Required, h.DownloadShoppingCart)
		recipes.GET("/:id", auth.Optional, h.GetRecipe)
		recipes.PATCH("/:id", auth.Required, h.UpdateRecipe)
		recipes.DELETE("/:id", auth.Required, h.DeleteRecipe)
		recipes.POST("/:id/favorite", auth.Required, h.membershipAdd(h.favorites))
		recipes.DELETE("/:id/favorite", auth.Required, h.membershipRemove(h.favorites))
		recipes.POST("/:id/shopping_cart", auth.Required, h.membershipAdd(h.cart))
		recipes.DELETE("/:id/shopping_cart", auth.Required, h.membershipRemove(h.cart))
	}
}

// ListRecipes supports author, tags, is_favorited and is_in_shopping_cart
// filters plus page/limit pagination.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	viewer := middleware.UserID(c)
	page := pagination(c)
	filter := service.RecipeFilter{
		AuthorIDs:        queryUints(c, "author"),
		TagSlugs:         queryList(c, "tags"),
		IsFavorited:      queryBool(c, "is_favorited"),
		IsInShoppingCart: queryBool(c, "is_in_shopping_cart"),
	}

	recipes, total, err := h.recipes.List(ctx, viewer, filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := h.annotate(c, viewer, recipes)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, out, page.Meta(total))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	recipe, err := h.recipes.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRecipe(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	recipe, err := h.recipes.Create(ctx, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRecipe(c, http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req types.UpdateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	recipe, err := h.recipes.Update(ctx, middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondRecipe(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.recipes.Delete(ctx, middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) membershipAdd(m service.IRecipeMembership) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()

		recipe, err := m.Add(ctx, middleware.UserID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, types.NewShortRecipeResponse(*recipe))
	}
}

func (h *RecipeHandler) membershipRemove(m service.IRecipeMembership) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := m.Remove(ctx, middleware.UserID(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DownloadShoppingCart sends the aggregated shopping list as an attachment
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	format, err := shoppinglist.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, service.NewValidationError(err.Error()))
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	var buf bytes.Buffer
	if err := h.shopping.Download(ctx, middleware.UserID(c), format, &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (h *RecipeHandler) respondRecipe(c *gin.Context, status int, recipe *model.Recipe) {
	out, err := h.annotate(c, middleware.UserID(c), []model.Recipe{*recipe})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, status, out[0])
}

func (h *RecipeHandler) annotate(c *gin.Context, viewer uint, recipes []model.Recipe) ([]types.RecipeResponse, error) {
	flags, err := h.recipes.Flags(c.Request.Context(), viewer, recipes)
	if err != nil {
		return nil, err
	}
	out := make([]types.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, types.NewRecipeResponse(r, flags[r.ID]))
	}
	return out, nil
}
