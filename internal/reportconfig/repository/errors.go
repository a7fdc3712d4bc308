package repository

import "errors"

var (
	ErrNotFound      = errors.New("repository: configuration not found")
	ErrFailedToQuery = errors.New("repository: failed to query configurations")
	ErrFailedToWrite = errors.New("repository: failed to write configuration")
)
