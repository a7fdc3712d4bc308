package report

import (
	"errors"
	"fmt"

	"vendor-report-srv/internal/model"
)

var (
	ErrInvalidConfiguration = errors.New("invalid report configuration")
	ErrInvalidRange         = errors.New("invalid date range")
	ErrNotFound             = errors.New("report job not found")
	ErrGenerationFailed     = errors.New("report generation failed")
)

// GenerationError is returned when a job run ends in FAILED.
type GenerationError struct {
	JobID string
	Code  model.FailureCode
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("report job %s failed: %s", e.JobID, e.Code)
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}
