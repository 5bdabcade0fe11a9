package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/foodgram/backend/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage handles image uploads to a MinIO (or any S3 compatible) server
type MinIOStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinIOStorage connects to MinIO and creates the bucket when missing
func NewMinIOStorage(ctx context.Context, sc config.StorageConfig) (*MinIOStorage, error) {
	client, err := minio.New(sc.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(sc.MinioAccessKey, sc.MinioSecretKey, ""),
		Secure: sc.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, sc.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, sc.Bucket, minio.MakeBucketOptions{Region: sc.AWSRegion}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{client: client, bucket: sc.Bucket, baseURL: sc.PublicURL}, nil
}

func (s *MinIOStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	endpoint := s.client.EndpointURL()
	return publicURL(s.baseURL, fmt.Sprintf("%s://%s/%s", endpoint.Scheme, endpoint.Host, s.bucket), key), nil
}

func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
