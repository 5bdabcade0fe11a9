package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db            *gorm.DB
	jwtSecret     string
	tokenTTL      time.Duration
	now           func() time.Time
	checkPassword func(hash, password string) bool
}

// dummyHash is compared against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("no-such-account"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
})

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		db:            db,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		now:           time.Now,
		checkPassword: CheckPassword,
	}
}

// Login checks the credentials and issues a new bearer token
func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.checkPassword(dummyHash(), req.Password)
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.checkPassword(user.PasswordHash, req.Password) {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(ctx, &user)
}

func (s *AuthService) issueToken(ctx context.Context, user *model.User) (string, error) {
	now := s.now()
	record := model.AuthToken{
		UserID:    user.ID,
		JTI:       uuid.NewString(),
		ExpiresAt: now.Add(s.tokenTTL),
	}

	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        record.JTI,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(record.ExpiresAt),
		},
		UserID: user.ID,
		Email:  user.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	log.Info().Uint("user_id", user.ID).Msg("token issued")
	return signed, nil
}

// ValidateToken verifies the signature and expiry of a token and that it
// has not been revoked.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrUnauthenticated
	}

	var record model.AuthToken
	err = s.db.WithContext(ctx).Where("jti = ?", claims.ID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if record.Revoked || record.UserID != claims.UserID || !record.ExpiresAt.After(s.now()) {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

// Logout revokes the token identified by jti
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	res := s.db.WithContext(ctx).Model(&model.AuthToken{}).
		Where("jti = ? AND revoked = ?", jti, false).
		Update("revoked", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUnauthenticated
	}
	return nil
}

// PurgeExpired deletes token rows that can no longer authenticate
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at < ? OR revoked = ?", s.now(), true).
		Delete(&model.AuthToken{})
	return res.RowsAffected, res.Error
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
