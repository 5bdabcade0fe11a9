package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", service.NewValidationError("bad"), http.StatusBadRequest, response.CodeValidation},
		{"credentials", service.ErrInvalidCredentials, http.StatusBadRequest, response.CodeBadRequest},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, response.CodeUnauthorized},
		{"forbidden", fmt.Errorf("delete recipe: %w", service.ErrForbidden), http.StatusForbidden, response.CodeForbidden},
		{"not found", &service.Error{Kind: service.ErrNotFound, Msg: "recipe not found"}, http.StatusNotFound, response.CodeNotFound},
		{"conflict", &service.Error{Kind: service.ErrConflict, Msg: "already in favorites"}, http.StatusConflict, response.CodeConflict},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, response.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "connection reset")
		})
	}
}

type mockMembership struct {
	mock.Mock
}

func (m *mockMembership) Add(ctx context.Context, userID, recipeID uint) (*model.Recipe, error) {
	args := m.Called(ctx, userID, recipeID)
	if r := args.Get(0); r != nil {
		return r.(*model.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMembership) Remove(ctx context.Context, userID, recipeID uint) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func TestMembershipHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	favorites := new(mockMembership)
	favorites.On("Add", mock.Anything, uint(7), uint(3)).
		Return(&model.Recipe{ID: 3, Name: "Soup", CookingTime: 20}, nil)
	favorites.On("Add", mock.Anything, uint(7), uint(4)).
		Return(nil, &service.Error{Kind: service.ErrNotFound, Msg: "recipe not found"})
	favorites.On("Remove", mock.Anything, uint(7), uint(3)).Return(nil)

	h := NewRecipeHandler(nil, favorites, nil, nil)
	asUser := func(c *gin.Context) {
		c.Set("user_id", uint(7))
		c.Next()
	}
	router := gin.New()
	h.RegisterRoutes(router.Group("/api"), Middlewares{Required: asUser, Optional: asUser, RecipeCreation: asUser})

	serve := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	w := serve(http.MethodPost, "/api/recipes/3/favorite")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":3,"name":"Soup","image":"","cooking_time":20}}`, w.Body.String())

	w = serve(http.MethodPost, "/api/recipes/4/favorite")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(http.MethodDelete, "/api/recipes/3/favorite")
	assert.Equal(t, http.StatusNoContent, w.Code)

	favorites.AssertExpectations(t)
}
