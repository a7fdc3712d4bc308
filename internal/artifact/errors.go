package artifact

import "errors"

var (
	ErrNotFound       = errors.New("artifact not found")
	ErrStorageFailure = errors.New("artifact storage failure")
	ErrInvalidInput   = errors.New("invalid artifact request")
)
