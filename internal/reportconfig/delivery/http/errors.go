package http

import (
	"errors"

	"vendor-report-srv/internal/reportconfig"
	pkgErrors "vendor-report-srv/pkg/errors"
)

var (
	errInvalidConfiguration = pkgErrors.NewHTTPError(400, "Invalid report configuration")
	errInvalidRange         = pkgErrors.NewHTTPError(400, "Invalid date range")
	errConfigNotFound       = pkgErrors.NewHTTPError(404, "Report configuration not found")
)

// MapError translates configuration errors. It reports false for anything else.
func MapError(err error) (error, bool) {
	switch {
	case errors.Is(err, reportconfig.ErrInvalidConfiguration), errors.Is(err, reportconfig.ErrUnknownQuickReport):
		return errInvalidConfiguration, true
	case errors.Is(err, reportconfig.ErrInvalidRange):
		return errInvalidRange, true
	case errors.Is(err, reportconfig.ErrNotFound):
		return errConfigNotFound, true
	}
	return nil, false
}

func (h *handler) mapError(err error) error {
	if mapped, ok := MapError(err); ok {
		return mapped
	}
	panic(err)
}
