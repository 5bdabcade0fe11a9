package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	StorageS3    = "s3"
	StorageMinio = "minio"
)

// StorageConfig describes where uploaded recipe images are kept
type StorageConfig struct {
	Driver string
	Bucket string

	// S3
	AWSRegion string
	// S3PublicRead applies a public-read bucket policy at startup
	S3PublicRead bool

	// MinIO
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	// PublicURL overrides the base URL used to build object links,
	// e.g. a CDN in front of the bucket.
	PublicURL string
}

func loadStorageConfig() (StorageConfig, error) {
	sc := StorageConfig{
		Driver:         strings.ToLower(lookup("STORAGE_DRIVER", StorageS3)),
		Bucket:         lookup("S3_BUCKET_NAME", "foodgram-recipe-images"),
		AWSRegion:      lookup("AWS_REGION", "us-east-1"),
		MinioEndpoint:  lookup("MINIO_ENDPOINT", ""),
		MinioAccessKey: lookup("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: lookup("MINIO_SECRET_KEY", ""),
		PublicURL:      strings.TrimRight(lookup("PUBLIC_MEDIA_URL", ""), "/"),
	}
	useSSL, err := lookupBool("MINIO_USE_SSL", false)
	if err != nil {
		return sc, err
	}
	sc.MinioUseSSL = useSSL
	if sc.S3PublicRead, err = lookupBool("S3_PUBLIC_READ", false); err != nil {
		return sc, err
	}
	return sc, nil
}

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Region     string
}

// NewS3Config initializes the S3 client from the default AWS credential chain
func NewS3Config(ctx context.Context, sc StorageConfig) (*S3Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(sc.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: sc.Bucket,
		Region:     sc.AWSRegion,
	}, nil
}

// SetupBucketPolicy applies a bucket policy to allow public read access
func (s *S3Config) SetupBucketPolicy(ctx context.Context) error {
	policy := `{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Sid": "PublicReadGetObject",
				"Effect": "Allow",
				"Principal": "*",
				"Action": "s3:GetObject",
				"Resource": "arn:aws:s3:::` + s.BucketName + `/*"
			}
		]
	}`
	_, err := s.Client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(s.BucketName),
		Policy: aws.String(policy),
	})
	return err
}
