package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// ObjectPutter is the slice of the S3 client S3Store needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3-compatible stores
	PublicURL string // optional CDN or bucket URL prefix
}

// S3Store uploads to a bucket through a circuit breaker so a failing S3 fails fast.
type S3Store struct {
	client    ObjectPutter
	bucket    string
	publicURL string
	breaker   *gobreaker.CircuitBreaker[string]
	now       func() time.Time
}

func NewS3Store(ctx context.Context, cfg S3Config, logger *zap.Logger) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg, logger), nil
}

func newS3Store(client ObjectPutter, cfg S3Config, logger *zap.Logger) *S3Store {
	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	settings := gobreaker.Settings{
		Name:        "s3-upload",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	}
	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		breaker:   gobreaker.NewCircuitBreaker[string](settings),
		now:       time.Now,
	}
}

func (s *S3Store) Save(ctx context.Context, data []byte, mimeType string) (string, error) {
	return s.breaker.Execute(func() (string, error) {
		key := objectKey(mimeType, s.now())
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(mimeType),
		})
		if err != nil {
			return "", fmt.Errorf("put object: %w", err)
		}
		return s.publicURL + "/" + key, nil
	})
}
