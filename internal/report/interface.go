package report

import (
	"context"

	"vendor-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate validates the configuration, creates a PENDING job and starts it in the background.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	// GenerateSync creates a job and runs it before returning the document.
	GenerateSync(ctx context.Context, sc model.Scope, input GenerateInput) (SyncOutput, error)
	GenerateQuick(ctx context.Context, sc model.Scope, input QuickInput) (GenerateOutput, error)
	GetJob(ctx context.Context, sc model.Scope, input GetJobInput) (JobOutput, error)

	// FailStaleJobs fails jobs left PENDING or GENERATING past the staleness limit,
	// typically by a process that stopped mid-run. Returns how many were failed.
	FailStaleJobs(ctx context.Context) (int, error)
	// StartJobSweeper runs FailStaleJobs at start and on every sweep interval until ctx is done.
	StartJobSweeper(ctx context.Context)
	// Wait blocks until every background job started by this process has finished, or ctx is done.
	Wait(ctx context.Context) error
}

// Producer publishes job lifecycle events.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishJobEvent(ctx context.Context, event Event) error
}
