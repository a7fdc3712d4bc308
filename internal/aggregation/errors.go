package aggregation

import "errors"

var (
	ErrInvalidRange      = errors.New("start date must not be after end date")
	ErrInvalidInput      = errors.New("invalid aggregation input")
	ErrSourceUnavailable = errors.New("data source unavailable")
)
