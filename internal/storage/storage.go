package storage

import (
	"context"
	"fmt"

	"github.com/foodgram/backend/config"
)

// BlobStore keeps recipe images and returns a public URL for each
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by sc.Driver
func New(ctx context.Context, sc config.StorageConfig) (BlobStore, error) {
	switch sc.Driver {
	case config.StorageMinio:
		return NewMinIOStorage(ctx, sc)
	case config.StorageS3:
		s3cfg, err := config.NewS3Config(ctx, sc)
		if err != nil {
			return nil, err
		}
		if sc.S3PublicRead {
			if err := s3cfg.SetupBucketPolicy(ctx); err != nil {
				return nil, fmt.Errorf("apply bucket policy: %w", err)
			}
		}
		return NewS3Storage(s3cfg, sc.PublicURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", sc.Driver)
	}
}

func publicURL(base, fallback, key string) string {
	if base != "" {
		return base + "/" + key
	}
	return fallback + "/" + key
}
