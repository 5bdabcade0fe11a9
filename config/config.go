package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Auth configuration
	JWTSecret string
	TokenTTL  time.Duration

	// Logging
	LogLevel string

	CORSOrigins []string

	// Image storage
	Storage StorageConfig

	RecipesPerHour int
}

// LoadConfig builds a Config from the environment. A .env file in the working
// directory is loaded first when present; Docker secrets in SECRETS_DIR are used
// as a fallback for every key.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Env: GetEnvironment()}

	cfg.ServerHost = lookup("SERVER_HOST", "0.0.0.0")
	cfg.ServerPort = lookup("SERVER_PORT", "8080")

	cfg.DBDriver = strings.ToLower(lookup("DB_DRIVER", "postgres"))
	cfg.DBHost = lookup("DB_HOST", "localhost")
	cfg.DBPort = lookup("DB_PORT", "5432")
	cfg.DBUser = lookup("DB_USER", "postgres")
	cfg.DBPassword = lookup("DB_PASSWORD", "")
	cfg.DBName = lookup("DB_NAME", "foodgram")
	cfg.DBSSLMode = lookup("DB_SSL_MODE", "disable")
	cfg.SQLitePath = lookup("SQLITE_PATH", "foodgram.db")

	cfg.RedisURL = lookup("REDIS_URL", "")
	cfg.RedisHost = lookup("REDIS_HOST", "")
	cfg.RedisPort = lookup("REDIS_PORT", "6379")
	cfg.RedisPassword = lookup("REDIS_PASSWORD", "")

	cfg.JWTSecret = lookup("JWT_SECRET", "")
	cfg.LogLevel = strings.ToLower(lookup("LOG_LEVEL", "info"))
	cfg.CORSOrigins = splitList(lookup("CORS_ORIGINS", "http://localhost:3000"))

	var err error
	if cfg.RedisDB, err = lookupInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = lookupDuration("TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RecipesPerHour, err = lookupInt("RATE_LIMIT_RECIPES_PER_HOUR", 30); err != nil {
		return nil, err
	}
	if cfg.Storage, err = loadStorageConfig(); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// PostgresDSN returns the lib/pq connection string for the configured database
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// lookup reads key from the environment, then from the Docker secret named
// after the lower-cased key, then falls back to def.
func lookup(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	if v := readSecret(strings.ToLower(key)); v != "" {
		return v
	}
	return def
}

func lookupInt(key string, def int) (int, error) {
	raw := lookup(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %w", key, err)
	}
	return v, nil
}

func lookupBool(key string, def bool) (bool, error) {
	raw := lookup(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value for %s: %w", key, err)
	}
	return v, nil
}

func lookupDuration(key string, def time.Duration) (time.Duration, error) {
	raw := lookup(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration value for %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
