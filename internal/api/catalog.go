package api

import (
	"net/http"

	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only tag and ingredient catalogs
type CatalogHandler struct {
	tags        service.ITagService
	ingredients service.IIngredientService
}

func NewCatalogHandler(tags service.ITagService, ingredients service.IIngredientService) *CatalogHandler {
	return &CatalogHandler{tags: tags, ingredients: ingredients}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tags", h.ListTags)
	router.GET("/tags/:id", h.GetTag)
	router.GET("/ingredients", h.SearchIngredients)
	router.GET("/ingredients/:id", h.GetIngredient)
}

func (h *CatalogHandler) ListTags(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	tags, err := h.tags.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tags)
}

func (h *CatalogHandler) GetTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	tag, err := h.tags.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tag)
}

// SearchIngredients matches ?search= (or ?name=) as a name prefix
func (h *CatalogHandler) SearchIngredients(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	prefix := c.Query("search")
	if prefix == "" {
		prefix = c.Query("name")
	}
	ingredients, err := h.ingredients.Search(ctx, prefix)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ingredients)
}

func (h *CatalogHandler) GetIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	ingredient, err := h.ingredients.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ingredient)
}
