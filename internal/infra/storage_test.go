package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/config"
)

func storageConfig() *config.Config {
	return &config.Config{
		StorageEndpoint:  "minio.local:9000",
		StorageRegion:    "us-east-1",
		StorageBucket:    "receipts",
		StorageAccessKey: "access",
		StorageSecretKey: "secret",
	}
}

func TestNewS3StorageValidConfig(t *testing.T) {
	s, err := NewS3Storage(storageConfig())
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local:9000", s.endpoint)
	assert.Equal(t, "receipts", s.bucket)
}

func TestNewS3StorageKeepsExplicitScheme(t *testing.T) {
	cfg := storageConfig()
	cfg.StorageEndpoint = "http://localhost:9000"

	s, err := NewS3Storage(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", s.endpoint)
}

func TestNewS3StorageMissingBucket(t *testing.T) {
	cfg := storageConfig()
	cfg.StorageBucket = ""

	_, err := NewS3Storage(cfg)
	require.EqualError(t, err, "storage bucket is required")
}

func TestNewS3StorageMissingCredentials(t *testing.T) {
	cfg := storageConfig()
	cfg.StorageSecretKey = ""

	_, err := NewS3Storage(cfg)
	require.EqualError(t, err, "storage credentials are required")
}
