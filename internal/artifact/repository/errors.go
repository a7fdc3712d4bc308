package repository

import "errors"

var (
	ErrNotFound      = errors.New("repository: artifact not found")
	ErrFailedToQuery = errors.New("repository: failed to query artifacts")
	ErrFailedToWrite = errors.New("repository: failed to write artifact")
	ErrLockFailed    = errors.New("repository: reclaim lock unavailable")
)
