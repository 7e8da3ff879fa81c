package infra

// storage.go — Object storage gateway for receipt PDFs, backed by any
// S3-compatible service (AWS S3, MinIO, RustFS). The client is constructed
// explicitly with its configuration validated up front; callers receive it
// by injection rather than through an ambient singleton.

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// receiptContentType is fixed: the gateway only ever stores receipt PDFs.
const receiptContentType = "application/pdf"

// ObjectStorage uploads binary payloads and returns public URLs.
// Implemented by S3Storage; tests use a stub.
type ObjectStorage interface {
	// Upload puts payload at key with overwrite-on-conflict semantics and
	// returns the publicly resolvable URL. Single best-effort attempt — no
	// retry, checksum, or size-limit policy. Errors propagate verbatim.
	Upload(ctx context.Context, key string, payload []byte) (string, error)
}

// S3Storage is the S3-compatible ObjectStorage implementation.
type S3Storage struct {
	client   *s3.Client
	endpoint string
	bucket   string
}

// NewS3Storage validates the storage configuration and builds the client.
// Missing credentials are a construction error, not a deferred warning.
func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	if cfg.StorageBucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	endpoint := cfg.StorageEndpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid storage endpoint: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.StorageRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &S3Storage{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		bucket:   cfg.StorageBucket,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, key string, payload []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(receiptContentType),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}
