package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/types"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey  = "user_id"
	tokenIDKey = "token_id"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication credentials were not provided")
			return
		}
		if !authenticate(c, validator, token) {
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the principal when a token is present. Requests
// without an Authorization header continue anonymously; a bad token is
// still rejected.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid authorization header format")
			return
		}
		if !authenticate(c, validator, token) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, validator TokenValidator, token string) bool {
	claims, err := validator.ValidateToken(c.Request.Context(), token)
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
		return false
	}
	c.Set(userIDKey, claims.UserID)
	c.Set(tokenIDKey, claims.ID)
	return true
}

// bearerToken accepts both "Bearer <jwt>" and "Token <jwt>" schemes
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
		return "", false
	}
	return parts[1], true
}

// UserID returns the authenticated user id, or 0 for anonymous requests
func UserID(c *gin.Context) uint {
	id, _ := c.Get(userIDKey)
	uid, _ := id.(uint)
	return uid
}

// TokenID returns the jti of the token that authenticated the request
func TokenID(c *gin.Context) string {
	return c.GetString(tokenIDKey)
}
