package usecase

import (
	"sync"
	"time"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/metrics"
	"vendor-report-srv/internal/report"
	"vendor-report-srv/internal/report/repository"
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/pkg/log"
)

const (
	defaultAggregateTimeout = 60 * time.Second
	defaultRenderTimeout    = 60 * time.Second
	defaultStoreTimeout     = 30 * time.Second
	defaultSweepInterval    = 5 * time.Minute
)

// Config holds configuration for report generation.
type Config struct {
	// Per-stage deadlines of a job run.
	AggregateTimeout time.Duration
	RenderTimeout    time.Duration
	StoreTimeout     time.Duration
	// StaleAfter is the age at which a job still PENDING or GENERATING is treated as
	// abandoned. Defaults to twice the sum of the stage deadlines.
	StaleAfter    time.Duration
	SweepInterval time.Duration
	// Location is used when a job's timezone cannot be loaded.
	Location *time.Location
	Metrics  *metrics.Collector
	Now      func() time.Time
}

type implUseCase struct {
	repo       repository.PostgresRepository
	aggUC      aggregation.UseCase
	configUC   reportconfig.UseCase
	artifactUC artifact.UseCase
	prod       report.Producer
	l          log.Logger
	config     Config

	inflight sync.WaitGroup
}

// New creates a new report UseCase. prod may be nil, in which case no lifecycle events are sent.
func New(
	repo repository.PostgresRepository,
	aggUC aggregation.UseCase,
	configUC reportconfig.UseCase,
	artifactUC artifact.UseCase,
	prod report.Producer,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.AggregateTimeout <= 0 {
		cfg.AggregateTimeout = defaultAggregateTimeout
	}
	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = defaultRenderTimeout
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 2 * (cfg.AggregateTimeout + cfg.RenderTimeout + cfg.StoreTimeout)
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		repo:       repo,
		aggUC:      aggUC,
		configUC:   configUC,
		artifactUC: artifactUC,
		prod:       prod,
		l:          l,
		config:     cfg,
	}
}
