package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. The registered ID claim
// (jti) identifies the stored AuthToken row used for revocation.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// LoginRequest is the body of POST /api/auth/token/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// TokenResponse carries a freshly issued bearer token
type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}
