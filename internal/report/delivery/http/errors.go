package http

import (
	"errors"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report"
	configHTTP "vendor-report-srv/internal/reportconfig/delivery/http"
	pkgErrors "vendor-report-srv/pkg/errors"
)

var (
	errInvalidConfiguration = pkgErrors.NewHTTPError(400, "Invalid report configuration")
	errInvalidRange         = pkgErrors.NewHTTPError(400, "Invalid date range")
	errConfigurationMissing = pkgErrors.NewHTTPError(400, "Either config_id or configuration is required")
	errJobNotFound          = pkgErrors.NewHTTPError(404, "Report job not found")
	errSourceUnavailable    = pkgErrors.NewHTTPError(503, model.FailureSourceUnavailable.Summary())
	errRangeFailure         = pkgErrors.NewHTTPError(400, model.FailureInvalidRange.Summary())
	errRenderFailure        = pkgErrors.NewHTTPError(422, model.FailureRenderFailure.Summary())
	errStorageFailure       = pkgErrors.NewHTTPError(503, model.FailureStorageFailure.Summary())
	errTimeout              = pkgErrors.NewHTTPError(504, model.FailureTimeout.Summary())
	errInternalFailure      = pkgErrors.NewHTTPError(500, model.FailureInternal.Summary())
)

var failureErrors = map[model.FailureCode]error{
	model.FailureSourceUnavailable: errSourceUnavailable,
	model.FailureInvalidRange:      errRangeFailure,
	model.FailureRenderFailure:     errRenderFailure,
	model.FailureStorageFailure:    errStorageFailure,
	model.FailureTimeout:           errTimeout,
	model.FailureInternal:          errInternalFailure,
}

func (h *handler) mapError(err error) error {
	var genErr *report.GenerationError
	if errors.As(err, &genErr) {
		if mapped, ok := failureErrors[genErr.Code]; ok {
			return mapped
		}
		return errInternalFailure
	}

	switch {
	case errors.Is(err, report.ErrInvalidConfiguration):
		return errInvalidConfiguration
	case errors.Is(err, report.ErrInvalidRange):
		return errInvalidRange
	case errors.Is(err, report.ErrNotFound):
		return errJobNotFound
	}
	if mapped, ok := configHTTP.MapError(err); ok {
		return mapped
	}
	panic(err)
}
