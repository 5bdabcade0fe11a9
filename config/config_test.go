package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "foodgram")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "foodgram")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, StorageS3, cfg.Storage.Driver)
	assert.Equal(t, "host=db port=5433 user=foodgram password=secret dbname=foodgram sslmode=disable", cfg.PostgresDSN())
}

func TestLoadConfigReadsSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret-file\n"), 0o600))
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret-file", cfg.JWTSecret)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "TOKEN_TTL")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("minio without endpoint", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "minio")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "MINIO_ENDPOINT")
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment(" PROD "))
	assert.Equal(t, Test, ParseEnvironment("test"))
	assert.Equal(t, Development, ParseEnvironment("staging"))
	assert.Equal(t, "release", Production.GinMode())
	assert.Equal(t, "debug", Development.GinMode())
}
