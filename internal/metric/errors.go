package metric

import "errors"

var (
	ErrEmptyMetrics     = errors.New("at least one metric is required")
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrDuplicateMetric  = errors.New("duplicate metric")
	ErrDuplicateCatalog = errors.New("metric registered twice")
)
