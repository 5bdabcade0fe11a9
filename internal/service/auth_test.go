package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/testhelpers"
	"github.com/foodgram/backend/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestLoginIssuesValidToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	u := testhelpers.CreateUser(t, db, "cook")
	svc := service.NewAuthService(db, testSecret, time.Hour)

	token, err := svc.Login(ctx, types.LoginRequest{Email: u.Email, Password: testhelpers.TestPassword})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	u := testhelpers.CreateUser(t, db, "cook")
	svc := service.NewAuthService(db, testSecret, time.Hour)

	_, err := svc.Login(ctx, types.LoginRequest{Email: u.Email, Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, types.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	var verr *service.ValidationError
	_, err = svc.Login(ctx, types.LoginRequest{Email: u.Email})
	assert.ErrorAs(t, err, &verr)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	u := testhelpers.CreateUser(t, db, "cook")
	svc := service.NewAuthService(db, testSecret, time.Hour)

	token, err := svc.Login(ctx, types.LoginRequest{Email: u.Email, Password: testhelpers.TestPassword})
	require.NoError(t, err)
	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.ID))

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
	assert.ErrorIs(t, svc.Logout(ctx, claims.ID), service.ErrUnauthenticated)

	purged, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)
}

func TestValidateTokenRejectsForeignAndExpiredTokens(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	u := testhelpers.CreateUser(t, db, "cook")

	other := service.NewAuthService(db, "another-secret-another-secret-xx", time.Hour)
	foreign, err := other.Login(ctx, types.LoginRequest{Email: u.Email, Password: testhelpers.TestPassword})
	require.NoError(t, err)

	svc := service.NewAuthService(db, testSecret, time.Hour)
	_, err = svc.ValidateToken(ctx, foreign)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	// signed correctly but never stored
	unknown, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "nope", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           u.ID,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(ctx, unknown)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	short := service.NewAuthService(db, testSecret, time.Nanosecond)
	expired, err := short.Login(ctx, types.LoginRequest{Email: u.Email, Password: testhelpers.TestPassword})
	require.NoError(t, err)
	time.Sleep(time.Second)
	_, err = short.ValidateToken(ctx, expired)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	var stored int64
	require.NoError(t, db.Model(&model.AuthToken{}).Count(&stored).Error)
	assert.EqualValues(t, 2, stored)
}
