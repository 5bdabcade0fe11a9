package service

import (
	"context"

	"github.com/foodgram/backend/internal/model"
	"github.com/foodgram/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const DefaultRecipesLimit = 3

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Subscription is a followed author with their recipe count and the most
// recent recipes.
type Subscription struct {
	Author       model.User
	RecipesCount int64
	Recipes      []model.Recipe
}

// Follow subscribes userID to authorID
func (s *FollowService) Follow(ctx context.Context, userID, authorID uint) (*model.User, error) {
	if userID == authorID {
		return nil, NewValidationError("cannot subscribe to yourself")
	}
	author, err := findUser(ctx, s.db, authorID)
	if err != nil {
		return nil, err
	}
	edge := &model.Follow{UserID: userID, AuthorID: authorID}
	if err := insertUnique(ctx, s.db, edge, "already subscribed to this author"); err != nil {
		return nil, err
	}
	log.Debug().Uint("user_id", userID).Uint("author_id", authorID).Msg("subscribed")
	return author, nil
}

func (s *FollowService) Unfollow(ctx context.Context, userID, authorID uint) error {
	return deleteExisting(ctx, s.db, &model.Follow{}, "not subscribed to this author",
		"user_id = ? AND author_id = ?", userID, authorID)
}

// Subscribed reports which of authorIDs userID follows
func (s *FollowService) Subscribed(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	return memberSet(ctx, s.db, &model.Follow{}, "author_id", userID, authorIDs)
}

// Subscriptions lists the authors userID follows in subscription order
func (s *FollowService) Subscriptions(ctx context.Context, userID uint, page types.Pagination, recipesLimit int) ([]Subscription, int64, error) {
	if recipesLimit < 0 {
		recipesLimit = DefaultRecipesLimit
	}
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&model.Follow{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []model.User
	err := db.Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("follows.id").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&authors).Error
	if err != nil {
		return nil, 0, err
	}
	if len(authors) == 0 {
		return []Subscription{}, total, nil
	}

	ids := make([]uint, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}

	var counts []struct {
		AuthorID uint
		Total    int64
	}
	err = db.Model(&model.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", ids).
		Group("author_id").
		Scan(&counts).Error
	if err != nil {
		return nil, 0, err
	}
	countByAuthor := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByAuthor[c.AuthorID] = c.Total
	}

	subs := make([]Subscription, 0, len(authors))
	for _, a := range authors {
		sub, err := s.preview(ctx, a, countByAuthor[a.ID], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		subs = append(subs, sub)
	}
	return subs, total, nil
}

// Preview builds the subscription view of a single author
func (s *FollowService) Preview(ctx context.Context, author model.User, recipesLimit int) (Subscription, error) {
	if recipesLimit < 0 {
		recipesLimit = DefaultRecipesLimit
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("author_id = ?", author.ID).Count(&count).Error; err != nil {
		return Subscription{}, err
	}
	return s.preview(ctx, author, count, recipesLimit)
}

func (s *FollowService) preview(ctx context.Context, author model.User, count int64, recipesLimit int) (Subscription, error) {
	sub := Subscription{Author: author, RecipesCount: count, Recipes: []model.Recipe{}}
	if recipesLimit == 0 || count == 0 {
		return sub, nil
	}
	err := s.db.WithContext(ctx).
		Where("author_id = ?", author.ID).
		Order("created_at DESC").Order("id DESC").
		Limit(recipesLimit).
		Find(&sub.Recipes).Error
	return sub, err
}
