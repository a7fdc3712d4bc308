package repository

import "errors"

var (
	ErrNotFound      = errors.New("repository: report job not found")
	ErrFailedToQuery = errors.New("repository: failed to query report jobs")
	ErrFailedToWrite = errors.New("repository: failed to write report job")
	ErrStateConflict = errors.New("repository: report job is not in the expected state")
)
