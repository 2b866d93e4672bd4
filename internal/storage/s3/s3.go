package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"contacts/internal/config"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Storage struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	const op = "storage.s3.New"

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: Loading aws config error: %w", op, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, cfg), nil
}

// NewWithClient builds a Storage on top of an existing client.
func NewWithClient(client ObjectPutter, cfg config.Storage) *Storage {
	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = defaultPublicURL(cfg)
	}

	return &Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores body under key and returns the public URL of the object.
func (s *Storage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	const op = "storage.s3.Upload"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("%s: Putting object error: %w", op, err)
	}

	return s.publicURL + "/" + key, nil
}

func defaultPublicURL(cfg config.Storage) string {
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
