package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/foodgram/backend/config"
	"github.com/foodgram/backend/internal/model"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestRunMigrationsCreatesTables(t *testing.T) {
	db := openMemory(t)

	for _, table := range []string{
		"users", "tags", "ingredients", "recipes", "recipe_ingredients",
		"recipe_tags", "favorites", "shopping_cart_entries", "follows", "auth_tokens",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	require.NoError(t, HealthCheck(context.Background(), db))
}

func TestUniqueIndexesReportDuplicateKey(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, db.Create(&model.Ingredient{Name: "salt", MeasurementUnit: "g"}).Error)
	err := db.Create(&model.Ingredient{Name: "salt", MeasurementUnit: "g"}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	// same name, other unit is a different catalog entry
	require.NoError(t, db.Create(&model.Ingredient{Name: "salt", MeasurementUnit: "pinch"}).Error)

	u := model.User{Email: "a@b.c", Username: "a", FirstName: "A", LastName: "B", PasswordHash: "x"}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&model.Follow{UserID: u.ID, AuthorID: u.ID}).Error)
	err = db.Create(&model.Follow{UserID: u.ID, AuthorID: u.ID}).Error
	assert.True(t, IsDuplicateKey(err))
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsDuplicateKey(&pq.Error{Code: "23503"}))
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestQueryLogSkipsUniqueViolations(t *testing.T) {
	db := openMemory(t)

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	require.NoError(t, db.Create(&model.Tag{Name: "Lunch", Color: "#fff", Slug: "lunch"}).Error)
	for i := 0; i < 3; i++ {
		err := db.Create(&model.Tag{Name: "Lunch", Color: "#fff", Slug: "lunch"}).Error
		require.True(t, IsDuplicateKey(err))
	}
	assert.Empty(t, buf.String())

	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	assert.Contains(t, buf.String(), "no_such_table")
	assert.Contains(t, buf.String(), `"component":"gorm"`)
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(&config.Config{RedisHost: "cache", RedisPort: "6380", RedisPassword: "pw", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = redisOptions(&config.Config{RedisURL: "redis://:secret@redis.internal:6379/1", RedisHost: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)

	_, err = redisOptions(&config.Config{RedisURL: "http://nope"})
	assert.ErrorContains(t, err, "REDIS_URL")
}
