package usecase

import (
	"context"
	"errors"
	"fmt"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/render"
)

var errPanic = errors.New("panic during generation")

// classify maps a stage error to the failure code stored on the job.
func classify(err error) model.FailureCode {
	switch {
	case errors.Is(err, errPanic):
		return model.FailureInternal
	case errors.Is(err, context.DeadlineExceeded):
		return model.FailureTimeout
	case errors.Is(err, aggregation.ErrInvalidRange):
		return model.FailureInvalidRange
	case errors.Is(err, aggregation.ErrSourceUnavailable):
		return model.FailureSourceUnavailable
	case errors.Is(err, render.ErrRenderFailure), errors.Is(err, render.ErrUnknownFormat):
		return model.FailureRenderFailure
	case errors.Is(err, artifact.ErrStorageFailure):
		return model.FailureStorageFailure
	}
	return model.FailureInternal
}

// stageErr marks an error as a timeout when the stage deadline passed, whatever the
// callee wrapped it in.
func stageErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}
