package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// --- connection ---

// Connect verifies the bucket is reachable and creates it when missing.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists, err := m.client.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.config.Bucket, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
			return handleMinIOError(err, "create_bucket")
		}
	}
	m.connected = true
	return nil
}

func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := m.Connect(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		backoff := time.Duration(1<<uint(i)) * time.Second
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return NewConnectionError(errors.New("not connected"))
	}
	if _, err := m.client.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// --- objects ---

func (m *implMinIO) PutObject(ctx context.Context, key string, data []byte, contentType string) (*ObjectInfo, error) {
	if err := validateObjectKey(key); err != nil {
		return nil, err
	}
	if len(data) > MaxObjectSizeBytes {
		return nil, NewInvalidInputError("object exceeds maximum size")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	info, err := m.client.PutObject(ctx, m.config.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, handleMinIOError(err, "put_object")
	}
	return &ObjectInfo{
		Bucket:       m.config.Bucket,
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  contentType,
		LastModified: time.Now(),
	}, nil
}

func (m *implMinIO) GetObject(ctx context.Context, key string) ([]byte, error) {
	if err := validateObjectKey(key); err != nil {
		return nil, err
	}
	obj, err := m.client.GetObject(ctx, m.config.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_object")
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, handleMinIOError(err, "get_object")
	}
	return data, nil
}

// RemoveObject deletes key. Removing a missing object is not an error.
func (m *implMinIO) RemoveObject(ctx context.Context, key string) error {
	if err := validateObjectKey(key); err != nil {
		return err
	}
	err := m.client.RemoveObject(ctx, m.config.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if serr := handleMinIOError(err, "remove_object"); serr.Code != ErrCodeObjectNotFound {
			return serr
		}
	}
	return nil
}

func (m *implMinIO) ObjectExists(ctx context.Context, key string) (bool, error) {
	if err := validateObjectKey(key); err != nil {
		return false, err
	}
	_, err := m.client.StatObject(ctx, m.config.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		serr := handleMinIOError(err, "stat_object")
		if serr.Code == ErrCodeObjectNotFound {
			return false, nil
		}
		return false, serr
	}
	return true, nil
}

func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		e := NewBucketNotFoundError(resp.BucketName)
		e.Operation, e.Cause = operation, err
		return e
	case "NoSuchKey":
		e := NewObjectNotFoundError(resp.Key)
		e.Operation, e.Cause = operation, err
		return e
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	case "":
		e := NewConnectionError(err)
		e.Operation = operation
		return e
	default:
		return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("operation failed: %s", resp.Code), Operation: operation, Cause: err}
	}
}
