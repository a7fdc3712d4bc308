package repository

import (
	"context"

	"vendor-report-srv/internal/model"
)

//go:generate mockery --name JobRepository
type JobRepository interface {
	CreateJob(ctx context.Context, opts CreateJobOptions) (model.ReportJob, error)
	GetJob(ctx context.Context, opts GetJobOptions) (model.ReportJob, error)
	// MarkGenerating moves a PENDING job to GENERATING. ErrStateConflict if it was not PENDING.
	MarkGenerating(ctx context.Context, opts MarkGeneratingOptions) error
	// MarkReady only leaves GENERATING. MarkFailed leaves PENDING or GENERATING.
	// Both return ErrStateConflict for any other state.
	MarkReady(ctx context.Context, opts MarkReadyOptions) error
	MarkFailed(ctx context.Context, opts MarkFailedOptions) error
	// FailStaleJobs fails every PENDING or GENERATING job created before opts.CreatedBefore
	// and returns the jobs it changed.
	FailStaleJobs(ctx context.Context, opts FailStaleJobsOptions) ([]model.ReportJob, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	JobRepository
}
