package usecase

import (
	"time"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/metrics"
	"vendor-report-srv/pkg/log"
	"vendor-report-srv/pkg/minio"
)

const (
	defaultRetention          = 30 * 24 * time.Hour
	defaultReclaimInterval    = time.Hour
	defaultReclaimParallelism = 8
	defaultReclaimBatch       = 200
	compensateTimeout         = 10 * time.Second
)

// Config holds configuration for the artifact store.
type Config struct {
	Retention          time.Duration
	ReclaimInterval    time.Duration
	ReclaimParallelism int
	ReclaimBatch       int
	Metrics            *metrics.Collector
	// Now overrides the clock in tests.
	Now func() time.Time
}

type implUseCase struct {
	repo   repository.PostgresRepository
	lock   repository.LockRepository
	store  minio.ObjectStore
	l      log.Logger
	config Config
}

// New creates a new artifact UseCase. lock may be nil when a single instance runs the reclaimer.
func New(
	repo repository.PostgresRepository,
	lock repository.LockRepository,
	store minio.ObjectStore,
	l log.Logger,
	cfg Config,
) artifact.UseCase {
	if cfg.Retention <= 0 {
		cfg.Retention = defaultRetention
	}
	if cfg.ReclaimInterval <= 0 {
		cfg.ReclaimInterval = defaultReclaimInterval
	}
	if cfg.ReclaimParallelism <= 0 {
		cfg.ReclaimParallelism = defaultReclaimParallelism
	}
	if cfg.ReclaimBatch <= 0 {
		cfg.ReclaimBatch = defaultReclaimBatch
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		repo:   repo,
		lock:   lock,
		store:  store,
		l:      l,
		config: cfg,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.config.Now().UTC()
}
