package reportconfig

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid report configuration")
	ErrInvalidRange         = errors.New("invalid date range")
	ErrNotFound             = errors.New("report configuration not found")
	ErrUnknownQuickReport   = errors.New("unknown quick report kind")
)
