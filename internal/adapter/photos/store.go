package photos

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
)

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store keeps photos in a private bucket and hands out presigned links.
type S3Store struct {
	objects   objectAPI
	presigner presignAPI
	bucket    string
	ttl       time.Duration
}

// NewS3Store connects to S3 or an S3 compatible endpoint.
func NewS3Store(ctx context.Context, cfg config.S3Config, ttl time.Duration) (*S3Store, error) {
	opts := []func(*awsConfig.LoadOptions) error{awsConfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{
		objects:   client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		ttl:       ttl,
	}, nil
}

// Upload stores body under key.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload photo %s: %w", key, err)
	}
	return nil
}

// URL returns a presigned GET link valid for the configured TTL.
func (s *S3Store) URL(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("presign photo %s: %w", key, err)
	}
	return req.URL, nil
}

// DisabledStore rejects every call when no bucket is configured.
type DisabledStore struct{}

func (DisabledStore) Upload(context.Context, string, string, io.Reader) error {
	return domainErrors.ErrPhotosDisabled
}

func (DisabledStore) URL(context.Context, string) (string, error) {
	return "", domainErrors.ErrPhotosDisabled
}
