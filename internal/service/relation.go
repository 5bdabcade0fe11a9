package service

import (
	"context"
	"errors"

	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertUnique creates row and relies on the table's unique index to reject
// duplicates, so concurrent inserts of the same pair cannot both succeed.
func insertUnique(ctx context.Context, db *gorm.DB, row interface{}, duplicateMsg string) error {
	err := db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
	if database.IsDuplicateKey(err) {
		return conflict(duplicateMsg)
	}
	return err
}

// deleteExisting removes the rows matching query; no match is ErrNotFound
func deleteExisting(ctx context.Context, db *gorm.DB, value interface{}, missingMsg string, query string, args ...interface{}) error {
	res := db.WithContext(ctx).Where(query, args...).Delete(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(missingMsg)
	}
	return nil
}

// memberSet returns which of ids appear in column of table for userID
func memberSet(ctx context.Context, db *gorm.DB, value interface{}, column string, userID uint, ids []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(ids))
	if userID == 0 || len(ids) == 0 {
		return set, nil
	}
	var found []uint
	err := db.WithContext(ctx).Model(value).
		Where("user_id = ? AND "+column+" IN ?", userID, ids).
		Pluck(column, &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		set[id] = true
	}
	return set, nil
}

func findRecipe(ctx context.Context, db *gorm.DB, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("recipe not found")
		}
		return nil, err
	}
	return &recipe, nil
}

func findUser(ctx context.Context, db *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}
