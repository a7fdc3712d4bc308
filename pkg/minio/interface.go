package minio

import (
	"context"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the object store used for report artifacts.
// All object operations work against the single configured bucket.
type MinIO interface {
	Connection
	ObjectStore
}

// Connection defines interface for MinIO connection operations.
type Connection interface {
	Connect(ctx context.Context) error
	ConnectWithRetry(ctx context.Context, maxRetries int) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// ObjectStore defines byte-level object operations.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (*ObjectInfo, error)
	GetObject(ctx context.Context, key string) ([]byte, error)
	RemoveObject(ctx context.Context, key string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
}

// NewMinIO creates a new MinIO client. Returns the MinIO interface.
func NewMinIO(cfg Config) (MinIO, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  disableCompression,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{
		client: client,
		config: cfg,
	}, nil
}

// NewMinIOWithRetry creates a new MinIO client and connects with retry.
func NewMinIOWithRetry(ctx context.Context, cfg Config, maxRetries int) (MinIO, error) {
	client, err := NewMinIO(cfg)
	if err != nil {
		return nil, err
	}
	if err := client.ConnectWithRetry(ctx, maxRetries); err != nil {
		return nil, err
	}
	return client, nil
}
