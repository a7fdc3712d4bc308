package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
)

const (
	// DefaultEndpointPort is appended to endpoint if no port.
	DefaultEndpointPort = ":9000"
	// MaxObjectSizeBytes caps a single artifact upload (512MB).
	MaxObjectSizeBytes = 512 * 1024 * 1024
)

// Error codes carried by StorageError.
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeConnection     = "CONNECTION"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodePermission     = "PERMISSION"
)
