package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type s3PhotoStore struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3PhotoStore creates a PhotoStore backed by an S3-compatible bucket.
// If endpoint is non-empty, path-style addressing is enabled (for MinIO and
// similar). publicBase is the URL prefix photos are served from.
func NewS3PhotoStore(ctx context.Context, bucket, region, endpoint, publicBase string) (domain.PhotoStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(cfg, s3opts...)
	return &s3PhotoStore{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *s3PhotoStore) Enabled() bool { return true }

// Put uploads the photo to S3 under key and returns its public URL.
func (s *s3PhotoStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	if s.publicBase != "" {
		return s.publicBase + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

type disabledPhotoStore struct{}

// NewDisabledPhotoStore returns the PhotoStore variant used when no bucket is
// configured. Put always fails with ErrStorageDisabled.
func NewDisabledPhotoStore() domain.PhotoStore {
	return &disabledPhotoStore{}
}

func (d *disabledPhotoStore) Enabled() bool { return false }

func (d *disabledPhotoStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	return "", domain.ErrStorageDisabled
}
