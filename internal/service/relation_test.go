package service_test

import (
	"context"
	"testing"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddRemove(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	author := testhelpers.CreateUser(t, db, "author")
	reader := testhelpers.CreateUser(t, db, "reader")
	r := testhelpers.CreateRecipe(t, db, author, "salad", nil)
	svc := service.NewFavoriteService(db)

	got, err := svc.Add(ctx, reader.ID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = svc.Add(ctx, reader.ID, r.ID)
	assert.ErrorIs(t, err, service.ErrConflict)

	require.NoError(t, svc.Remove(ctx, reader.ID, r.ID))
	assert.ErrorIs(t, svc.Remove(ctx, reader.ID, r.ID), service.ErrNotFound)

	_, err = svc.Add(ctx, reader.ID, 9999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCartAddRemove(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	author := testhelpers.CreateUser(t, db, "author")
	r := testhelpers.CreateRecipe(t, db, author, "stew", nil)
	svc := service.NewCartService(db)

	_, err := svc.Add(ctx, author.ID, r.ID)
	require.NoError(t, err)
	_, err = svc.Add(ctx, author.ID, r.ID)
	assert.ErrorIs(t, err, service.ErrConflict)

	inCart, err := svc.InCart(ctx, author.ID, []uint{r.ID, r.ID + 1})
	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{r.ID: true}, inCart)

	require.NoError(t, svc.Remove(ctx, author.ID, r.ID))
	assert.ErrorIs(t, svc.Remove(ctx, author.ID, r.ID), service.ErrNotFound)

	var n int64
	require.NoError(t, db.Model(&model.ShoppingCartEntry{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestFollowRejectsSelf(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	u := testhelpers.CreateUser(t, db, "narcissus")
	other := testhelpers.CreateUser(t, db, "echo")
	svc := service.NewFollowService(db)

	var verr *service.ValidationError
	_, err := svc.Follow(ctx, u.ID, u.ID)
	require.ErrorAs(t, err, &verr)

	// still rejected after unrelated follow activity
	_, err = svc.Follow(ctx, u.ID, other.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, u.ID, u.ID)
	assert.ErrorAs(t, err, &verr)
}

func TestFollowUnfollow(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	fan := testhelpers.CreateUser(t, db, "fan")
	chef := testhelpers.CreateUser(t, db, "chef")
	svc := service.NewFollowService(db)

	author, err := svc.Follow(ctx, fan.ID, chef.ID)
	require.NoError(t, err)
	assert.Equal(t, "chef", author.Username)

	_, err = svc.Follow(ctx, fan.ID, chef.ID)
	assert.ErrorIs(t, err, service.ErrConflict)

	_, err = svc.Follow(ctx, fan.ID, 4242)
	assert.ErrorIs(t, err, service.ErrNotFound)

	subscribed, err := svc.Subscribed(ctx, fan.ID, []uint{chef.ID, fan.ID})
	require.NoError(t, err)
	assert.True(t, subscribed[chef.ID])
	assert.False(t, subscribed[fan.ID])

	require.NoError(t, svc.Unfollow(ctx, fan.ID, chef.ID))
	assert.ErrorIs(t, svc.Unfollow(ctx, fan.ID, chef.ID), service.ErrNotFound)
}
