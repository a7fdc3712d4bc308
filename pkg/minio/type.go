package minio

import (
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Bucket       string
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

type implMinIO struct {
	client    *minio.Client
	config    Config
	mu        sync.RWMutex
	connected bool
}
