package service

import (
	"context"
	"errors"

	"github.com/foodgram/backend/internal/model"
	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) List(ctx context.Context) ([]model.Tag, error) {
	tags := []model.Tag{}
	err := s.db.WithContext(ctx).Order("id").Find(&tags).Error
	return tags, err
}

func (s *TagService) Get(ctx context.Context, id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := s.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tag not found")
		}
		return nil, err
	}
	return &tag, nil
}
