package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// ValidateConfig checks the loaded configuration for the current environment
func ValidateConfig(cfg *Config) error {
	var problems []string
	add := func(field, msg string) {
		problems = append(problems, ValidationError{Field: field, Message: msg}.Error())
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBName == "" {
			add("DB_HOST", "postgres requires DB_HOST and DB_NAME")
		}
		if cfg.Env == Production && cfg.DBPassword == "" {
			add("DB_PASSWORD", "required in production")
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "required when DB_DRIVER=sqlite")
		}
	default:
		add("DB_DRIVER", "must be postgres or sqlite")
	}

	if cfg.JWTSecret == "" {
		add("JWT_SECRET", "is required")
	} else if cfg.Env == Production && len(cfg.JWTSecret) < 32 {
		add("JWT_SECRET", "must be at least 32 characters in production")
	}

	if cfg.TokenTTL <= 0 {
		add("TOKEN_TTL", "must be positive")
	}

	if !contains(validLogLevels, cfg.LogLevel) {
		add("LOG_LEVEL", "must be one of "+strings.Join(validLogLevels, ", "))
	}

	switch cfg.Storage.Driver {
	case StorageS3:
		if cfg.Storage.Bucket == "" {
			add("S3_BUCKET_NAME", "is required for s3 storage")
		}
	case StorageMinio:
		if cfg.Storage.MinioEndpoint == "" {
			add("MINIO_ENDPOINT", "is required for minio storage")
		}
	default:
		add("STORAGE_DRIVER", "must be s3 or minio")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
