// Package storage wraps the S3-compatible object store behind a small
// interface so the repository can take a test double.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Bucket names are fixed; their upload policy (size ceiling, images
// only) lives in pkg/utils/validation and on the buckets themselves.
const (
	PropertyImagesBucket = "property-images"
	AvatarsBucket        = "avatars"
)

type ObjectStorage interface {
	Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error
	Delete(ctx context.Context, bucket, key string) error
	PublicURL(bucket, key string) string
}

type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	// PublicBaseURL is the host public object URLs hang off.
	PublicBaseURL string
}

type S3Storage struct {
	client  *s3.Client
	baseURL string
}

func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// EnsureBuckets creates the two marketplace buckets. An already existing
// bucket is not an error; anything else is.
func (s *S3Storage) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range []string{PropertyImagesBucket, AvatarsBucket} {
		_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: aws.String(bucket),
		})
		if err != nil {
			var owned *types.BucketAlreadyOwnedByYou
			var exists *types.BucketAlreadyExists
			if errors.As(err, &owned) || errors.As(err, &exists) {
				continue
			}
			return fmt.Errorf("could not create bucket %s: %w", bucket, err)
		}
	}
	return nil
}

func (s *S3Storage) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("could not upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *S3Storage) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, key)
}

// PropertyImageKey builds a unique, URL-safe object key scoped by
// property id.
func PropertyImageKey(propertyID, filename string) string {
	return path.Join("properties", propertyID, uniqueFilename(filename))
}

// AvatarKey builds a unique object key scoped by user id.
func AvatarKey(userID, filename string) string {
	return path.Join("users", userID, uniqueFilename(filename))
}

func uniqueFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
}
