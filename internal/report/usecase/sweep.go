package usecase

import (
	"context"
	"time"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report"
	"vendor-report-srv/internal/report/repository"
)

// FailStaleJobs - Fail jobs nobody is running any more.
func (uc *implUseCase) FailStaleJobs(ctx context.Context) (int, error) {
	now := uc.config.Now()
	jobs, err := uc.repo.FailStaleJobs(ctx, repository.FailStaleJobsOptions{
		CreatedBefore: now.Add(-uc.config.StaleAfter),
		Code:          model.FailureTimeout,
		Reason:        model.FailureTimeout.Summary(),
		CompletedAt:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.FailStaleJobs: repo.FailStaleJobs failed: %v", err)
		return 0, err
	}

	for _, job := range jobs {
		uc.config.Metrics.RecordJob(string(model.JobStateFailed), string(model.FailureTimeout))
		uc.publish(ctx, report.Event{
			Type:        report.EventJobFailed,
			JobID:       job.ID,
			OwnerID:     job.OwnerID,
			State:       model.JobStateFailed,
			FailureCode: string(model.FailureTimeout),
		})
	}
	if len(jobs) > 0 {
		uc.l.Warnf(ctx, "report.usecase.FailStaleJobs: Failed %d abandoned jobs", len(jobs))
	}
	return len(jobs), nil
}

// StartJobSweeper - Sweep once now, then on every interval.
func (uc *implUseCase) StartJobSweeper(ctx context.Context) {
	ticker := time.NewTicker(uc.config.SweepInterval)
	defer ticker.Stop()

	uc.l.Infof(ctx, "report.usecase.StartJobSweeper: Failing jobs open longer than %s, every %s", uc.config.StaleAfter, uc.config.SweepInterval)
	_, _ = uc.FailStaleJobs(ctx)
	for {
		select {
		case <-ctx.Done():
			uc.l.Info(ctx, "report.usecase.StartJobSweeper: Stopped")
			return
		case <-ticker.C:
			_, _ = uc.FailStaleJobs(ctx)
		}
	}
}

// Wait - Drain background jobs.
func (uc *implUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
