package service

import (
	"context"

	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account
func (s *UserService) Register(ctx context.Context, req types.RegisterRequest) (*model.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, conflict("a user with that email or username already exists")
		}
		return nil, err
	}

	log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return findUser(ctx, s.db, id)
}

// List returns users ordered by id
func (s *UserService) List(ctx context.Context, page types.Pagination) ([]model.User, int64, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	users := []model.User{}
	err := db.Order("id").Offset(page.Offset()).Limit(page.Limit).Find(&users).Error
	return users, total, err
}

// SetPassword replaces the password after checking the current one
func (s *UserService) SetPassword(ctx context.Context, userID uint, req types.SetPasswordRequest) error {
	if err := validate(req); err != nil {
		return err
	}
	user, err := findUser(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if !CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return fieldError("current_password", "wrong password")
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(user).Update("password_hash", hash).Error
}
