package repository

import (
	"context"
	"time"

	"vendor-report-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateArtifact(ctx context.Context, opts CreateArtifactOptions) (model.ReportArtifact, error)
	// GetArtifact returns the owner's artifact whatever its liveness.
	GetArtifact(ctx context.Context, opts GetArtifactOptions) (model.ReportArtifact, error)
	// IncrementDownload bumps the counter of a live artifact and returns the new value.
	IncrementDownload(ctx context.Context, opts IncrementDownloadOptions) (int64, error)
	// MarkDeleted sets deleted_at once. It reports whether this call made the transition.
	MarkDeleted(ctx context.Context, opts MarkDeletedOptions) (bool, error)
	ListExpired(ctx context.Context, opts ListExpiredOptions) ([]model.ReportArtifact, error)
	ListHistory(ctx context.Context, opts ListHistoryOptions) ([]HistoryRow, int64, error)
}

//go:generate mockery --name LockRepository
type LockRepository interface {
	AcquireReclaimLock(ctx context.Context, token string, ttl time.Duration) (bool, error)
	ReleaseReclaimLock(ctx context.Context, token string) error
}

// HistoryRow is a job joined with its live artifact. Artifact is nil until the job is READY.
type HistoryRow struct {
	JobID         string
	Name          string
	Type          string
	Format        string
	State         model.JobState
	FailureCode   string
	FailureReason string
	CreatedAt     time.Time
	Artifact      *model.ReportArtifact
}
