package usecase

import (
	"time"

	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/internal/reportconfig/repository"
	"vendor-report-srv/pkg/log"
)

// Config holds configuration for the configuration store.
type Config struct {
	// Location is the zone used when a configuration names none.
	Location *time.Location
	Now      func() time.Time
}

type implUseCase struct {
	repo    repository.PostgresRepository
	catalog *metric.Catalog
	l       log.Logger
	config  Config
}

// New creates a new reportconfig UseCase.
func New(repo repository.PostgresRepository, catalog *metric.Catalog, l log.Logger, cfg Config) reportconfig.UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if catalog == nil {
		catalog = metric.Builtin()
	}

	return &implUseCase{
		repo:    repo,
		catalog: catalog,
		l:       l,
		config:  cfg,
	}
}
