package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/config"
)

// S3Store writes objects to an S3 compatible bucket.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
	log     *zap.Logger
}

func NewS3Store(cfg config.S3Config, log *zap.Logger) *S3Store {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		log:     log,
	}
}

func (s *S3Store) Enabled() bool {
	return true
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		CacheControl:  aws.String("public, max-age=31536000"),
	})
	if err != nil {
		s.log.Error("s3 put failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

func publicBaseURL(cfg config.S3Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// Disabled is the store used when no bucket is configured.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Put(context.Context, string, string, []byte) (string, error) {
	return "", fmt.Errorf("image storage disabled")
}
