package service_test

import (
	"context"
	"testing"

	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/testhelpers"
	"github.com/foodgram/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	svc := service.NewUserService(db)

	req := types.RegisterRequest{
		Email:     "julia@example.com",
		Username:  "julia",
		FirstName: "Julia",
		LastName:  "Child",
		Password:  "bon-appetit",
	}
	u, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, req.Password, u.PasswordHash)
	assert.True(t, service.CheckPassword(u.PasswordHash, req.Password))

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, service.ErrConflict)

	req.Email = "not-an-email"
	var verr *service.ValidationError
	_, err = svc.Register(ctx, req)
	assert.ErrorAs(t, err, &verr)
}

func TestListUsers(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		testhelpers.CreateUser(t, db, name)
	}

	users, total, err := service.NewUserService(db).List(ctx, types.NewPagination(2, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, users, 1)
	assert.Equal(t, "c", users[0].Username)
}

func TestSetPassword(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	u := testhelpers.CreateUser(t, db, "cook")
	svc := service.NewUserService(db)

	err := svc.SetPassword(ctx, u.ID, types.SetPasswordRequest{CurrentPassword: "wrong", NewPassword: "brand-new-pass"})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "current_password")

	require.NoError(t, svc.SetPassword(ctx, u.ID, types.SetPasswordRequest{
		CurrentPassword: testhelpers.TestPassword,
		NewPassword:     "brand-new-pass",
	}))
	reloaded, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, service.CheckPassword(reloaded.PasswordHash, "brand-new-pass"))
}

func TestSubscriptions(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	fan := testhelpers.CreateUser(t, db, "fan")
	chef := testhelpers.CreateUser(t, db, "chef")
	baker := testhelpers.CreateUser(t, db, "baker")
	for _, name := range []string{"r1", "r2", "r3", "r4"} {
		testhelpers.CreateRecipe(t, db, chef, name, nil)
	}
	svc := service.NewFollowService(db)
	_, err := svc.Follow(ctx, fan.ID, chef.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, fan.ID, baker.ID)
	require.NoError(t, err)

	subs, total, err := svc.Subscriptions(ctx, fan.ID, types.NewPagination(1, 10), 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, subs, 2)

	assert.Equal(t, "chef", subs[0].Author.Username)
	assert.EqualValues(t, 4, subs[0].RecipesCount)
	require.Len(t, subs[0].Recipes, 2)
	assert.Equal(t, "r4", subs[0].Recipes[0].Name)

	assert.Equal(t, "baker", subs[1].Author.Username)
	assert.Zero(t, subs[1].RecipesCount)
	assert.Empty(t, subs[1].Recipes)
}
