package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportIngredientsSkipsExisting(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	svc := service.NewCatalogService(db)

	dump := `[{"name":"salt","measurement_unit":"g"},{"name":"salt","measurement_unit":"pinch"},{"name":"water","measurement_unit":"ml"}]`
	_, err := svc.ImportIngredients(ctx, strings.NewReader(dump))
	require.NoError(t, err)
	_, err = svc.ImportIngredients(ctx, strings.NewReader(dump))
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&model.Ingredient{}).Count(&n).Error)
	assert.EqualValues(t, 3, n)

	_, err = svc.ImportIngredients(ctx, strings.NewReader(`[{"name":"pepper"}]`))
	assert.Error(t, err)
}

func TestImportTags(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	svc := service.NewCatalogService(db)

	_, err := svc.ImportTags(ctx, strings.NewReader(`[{"name":"Breakfast","color":"#E26C2D","slug":"breakfast"},{"name":"Lunch","color":"#49B64E","slug":"lunch"}]`))
	require.NoError(t, err)

	tags, err := service.NewTagService(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "breakfast", tags[0].Slug)

	_, err = service.NewTagService(db).Get(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestIngredientSearch(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	testhelpers.CreateIngredient(t, db, "Sugar", "g")
	testhelpers.CreateIngredient(t, db, "salt", "g")
	testhelpers.CreateIngredient(t, db, "brown sugar", "g")
	testhelpers.CreateIngredient(t, db, "50% cream", "ml")
	svc := service.NewIngredientService(db)

	found, err := svc.Search(ctx, "su")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Sugar", found[0].Name)

	found, err = svc.Search(ctx, "S")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.Search(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, found)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
