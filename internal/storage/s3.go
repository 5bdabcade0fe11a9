package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/foodgram/backend/config"
)

// S3Storage uploads objects to an AWS S3 bucket
type S3Storage struct {
	cfg     *config.S3Config
	baseURL string
}

func NewS3Storage(cfg *config.S3Config, baseURL string) *S3Storage {
	return &S3Storage{cfg: cfg, baseURL: baseURL}
}

func (s *S3Storage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return publicURL(s.baseURL, fmt.Sprintf("https://%s.s3.amazonaws.com", s.cfg.BucketName), key), nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.cfg.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
