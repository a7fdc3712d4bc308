package usecase

import (
	"time"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/aggregation/repository"
	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/metrics"
	"vendor-report-srv/pkg/log"
)

const defaultViewsTTL = 800 * 24 * time.Hour

// Config holds configuration for aggregation.
type Config struct {
	// Location is used when an input carries none.
	Location *time.Location
	ViewsTTL time.Duration
	Metrics  *metrics.Collector
}

type implUseCase struct {
	ledger  repository.PostgresRepository
	views   repository.ViewsRepository
	catalog *metric.Catalog
	l       log.Logger
	config  Config
}

// New creates a new aggregation UseCase implementation.
func New(
	ledger repository.PostgresRepository,
	views repository.ViewsRepository,
	catalog *metric.Catalog,
	l log.Logger,
	cfg Config,
) aggregation.UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ViewsTTL <= 0 {
		cfg.ViewsTTL = defaultViewsTTL
	}
	if catalog == nil {
		catalog = metric.Builtin()
	}

	return &implUseCase{
		ledger:  ledger,
		views:   views,
		catalog: catalog,
		l:       l,
		config:  cfg,
	}
}
