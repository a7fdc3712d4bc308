package http

import (
	"errors"

	"vendor-report-srv/internal/artifact"
	pkgErrors "vendor-report-srv/pkg/errors"
)

var (
	errArtifactNotFound = pkgErrors.NewHTTPError(404, "Report not found")
	errInvalidFilter    = pkgErrors.NewHTTPError(400, "Invalid filter")
	errStorageFailure   = pkgErrors.NewHTTPError(503, "Report storage is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, artifact.ErrNotFound):
		return errArtifactNotFound
	case errors.Is(err, artifact.ErrInvalidInput):
		return errInvalidFilter
	case errors.Is(err, artifact.ErrStorageFailure):
		return errStorageFailure
	default:
		panic(err)
	}
}
