package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/render"
	"vendor-report-srv/internal/report"
	"vendor-report-srv/internal/report/repository"
)

const (
	stageAggregate = "aggregate"
	stageRender    = "render"
	stageStore     = "store"
)

type outcome struct {
	artifact model.ReportArtifact
	format   render.Format
	data     []byte
}

func (o outcome) fileName() string {
	return artifact.FileName(o.artifact.Name, o.format.Extension())
}

// run drives a job from PENDING to READY or FAILED. Stages run strictly in order,
// each under its own deadline.
func (uc *implUseCase) run(ctx context.Context, job model.ReportJob, vendor string) (out outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "report.usecase.run: panic recovered for job %s: %v", job.ID, r)
			out, err = outcome{}, uc.fail(ctx, job, fmt.Errorf("%w: %v", errPanic, r))
		}
	}()

	if err := uc.repo.MarkGenerating(ctx, repository.MarkGeneratingOptions{ID: job.ID, StartedAt: uc.config.Now()}); err != nil {
		if errors.Is(err, repository.ErrStateConflict) {
			uc.l.Warnf(ctx, "report.usecase.run: job %s is no longer pending", job.ID)
			return outcome{}, &report.GenerationError{JobID: job.ID, Code: model.FailureInternal}
		}
		return outcome{}, uc.fail(ctx, job, err)
	}
	uc.config.Metrics.RecordJob(string(model.JobStateGenerating), "")
	uc.publish(ctx, report.Event{Type: report.EventJobGenerating, JobID: job.ID, OwnerID: job.OwnerID, State: model.JobStateGenerating})
	uc.l.Infof(ctx, "report.usecase.run: Starting generation for job %s", job.ID)

	cfg := job.Configuration
	loc := uc.location(cfg.Timezone)
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return outcome{}, uc.fail(ctx, job, err)
	}

	res, err := uc.aggregate(ctx, job, loc)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.run: Aggregate stage failed for job %s: %v", job.ID, err)
		return outcome{}, uc.fail(ctx, job, err)
	}

	table := render.BuildTable(render.Meta{
		Title:       cfg.Name,
		VendorName:  vendor,
		GroupBy:     string(cfg.GroupBy),
		GeneratedAt: uc.config.Now().In(loc),
	}, res)
	data, err := uc.render(ctx, format, table)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.run: Render stage failed for job %s: %v", job.ID, err)
		return outcome{}, uc.fail(ctx, job, err)
	}

	a, err := uc.store(ctx, job, format, data)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.run: Store stage failed for job %s: %v", job.ID, err)
		return outcome{}, uc.fail(ctx, job, err)
	}

	if err := uc.repo.MarkReady(ctx, repository.MarkReadyOptions{ID: job.ID, ArtifactID: a.ID, CompletedAt: uc.config.Now()}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.run: repo.MarkReady failed for job %s: %v", job.ID, err)
		if derr := uc.artifactUC.Delete(ctx, model.Scope{UserID: job.OwnerID}, artifact.DeleteInput{ArtifactID: a.ID}); derr != nil {
			uc.l.Errorf(ctx, "report.usecase.run: artifactUC.Delete failed for artifact %s: %v", a.ID, derr)
		}
		return outcome{}, uc.fail(ctx, job, fmt.Errorf("%w: %w", artifact.ErrStorageFailure, err))
	}

	uc.config.Metrics.RecordJob(string(model.JobStateReady), "")
	uc.publish(ctx, report.Event{Type: report.EventJobReady, JobID: job.ID, OwnerID: job.OwnerID, State: model.JobStateReady, ArtifactID: a.ID})
	uc.l.Infof(ctx, "report.usecase.run: Job %s ready, artifact %s (%d bytes)", job.ID, a.ID, len(data))

	return outcome{artifact: a, format: format, data: data}, nil
}

func (uc *implUseCase) aggregate(ctx context.Context, job model.ReportJob, loc *time.Location) (aggregation.Result, error) {
	sctx, cancel := context.WithTimeout(ctx, uc.config.AggregateTimeout)
	defer cancel()
	defer uc.observe(stageAggregate, uc.config.Now())

	cfg := job.Configuration
	res, err := uc.aggUC.Aggregate(sctx, aggregation.AggregateInput{
		OwnerID:   job.OwnerID,
		DateRange: cfg.DateRange,
		Metrics:   cfg.Metrics,
		GroupBy:   cfg.GroupBy,
		Filters:   cfg.Filters,
		Location:  loc,
	})
	return res, stageErr(sctx, err)
}

type renderResult struct {
	data []byte
	err  error
}

// render - Encode the table in a goroutine raced against the stage deadline.
func (uc *implUseCase) render(ctx context.Context, f render.Format, t render.Table) ([]byte, error) {
	r, err := render.New(f)
	if err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, uc.config.RenderTimeout)
	defer cancel()
	defer uc.observe(stageRender, uc.config.Now())

	done := make(chan renderResult, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- renderResult{err: fmt.Errorf("%w: %v", errPanic, p)}
			}
		}()
		data, err := r.Render(sctx, t)
		done <- renderResult{data: data, err: err}
	}()

	select {
	case res := <-done:
		return res.data, stageErr(sctx, res.err)
	case <-sctx.Done():
		return nil, sctx.Err()
	}
}

func (uc *implUseCase) store(ctx context.Context, job model.ReportJob, f render.Format, data []byte) (model.ReportArtifact, error) {
	sctx, cancel := context.WithTimeout(ctx, uc.config.StoreTimeout)
	defer cancel()
	defer uc.observe(stageStore, uc.config.Now())

	a, err := uc.artifactUC.Persist(sctx, artifact.PersistInput{
		JobID:   job.ID,
		OwnerID: job.OwnerID,
		Name:    job.Configuration.Name,
		Format:  f,
		Data:    data,
	})
	return a, stageErr(sctx, err)
}

// fail - Move the job to FAILED with a classified code and its fixed summary.
func (uc *implUseCase) fail(ctx context.Context, job model.ReportJob, cause error) error {
	code := classify(cause)

	err := uc.repo.MarkFailed(ctx, repository.MarkFailedOptions{
		ID:          job.ID,
		Code:        code,
		Reason:      code.Summary(),
		CompletedAt: uc.config.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.fail: repo.MarkFailed failed for job %s: %v", job.ID, err)
	}

	uc.config.Metrics.RecordJob(string(model.JobStateFailed), string(code))
	uc.publish(ctx, report.Event{Type: report.EventJobFailed, JobID: job.ID, OwnerID: job.OwnerID, State: model.JobStateFailed, FailureCode: string(code)})
	uc.l.Warnf(ctx, "report.usecase.fail: job %s failed with %s: %v", job.ID, code, cause)

	return &report.GenerationError{JobID: job.ID, Code: code}
}

// publish - Best effort. A broker failure never changes the job outcome.
func (uc *implUseCase) publish(ctx context.Context, event report.Event) {
	if uc.prod == nil {
		return
	}
	event.OccurredAt = uc.config.Now()
	if err := uc.prod.PublishJobEvent(ctx, event); err != nil {
		uc.l.Warnf(ctx, "report.usecase.publish: %s for job %s not sent: %v", event.Type, event.JobID, err)
	}
}

func (uc *implUseCase) observe(stage string, start time.Time) {
	uc.config.Metrics.ObserveStage(stage, uc.config.Now().Sub(start))
}

func (uc *implUseCase) location(name string) *time.Location {
	if name == "" {
		return uc.config.Location
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return uc.config.Location
	}
	return loc
}
