package minio

import (
	"errors"
	"fmt"
)

// StorageError is returned by every MinIO operation that fails.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("minio %s: %s", e.Operation, e.Message)
	}
	return "minio: " + e.Message
}

func (e *StorageError) Unwrap() error { return e.Cause }

func NewInvalidInputError(msg string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: msg}
}

func NewConnectionError(err error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: err}
}

func NewBucketNotFoundError(bucket string) *StorageError {
	return &StorageError{Code: ErrCodeBucketNotFound, Message: fmt.Sprintf("bucket not found: %s", bucket)}
}

func NewObjectNotFoundError(key string) *StorageError {
	return &StorageError{Code: ErrCodeObjectNotFound, Message: fmt.Sprintf("object not found: %s", key)}
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Code == ErrCodeObjectNotFound
	}
	return false
}
