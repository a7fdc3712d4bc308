package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report"
	"vendor-report-srv/internal/report/repository"
	"vendor-report-srv/internal/reportconfig"
)

// Generate - Create a PENDING job and run it in the background.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	job, err := uc.create(ctx, sc, input)
	if err != nil {
		return report.GenerateOutput{}, err
	}

	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		_, _ = uc.run(context.WithoutCancel(ctx), job, vendorName(sc))
	}()

	return report.GenerateOutput{JobID: job.ID, State: job.State}, nil
}

// GenerateSync - Create a job and run it inline, returning the document.
func (uc *implUseCase) GenerateSync(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.SyncOutput, error) {
	job, err := uc.create(ctx, sc, input)
	if err != nil {
		return report.SyncOutput{}, err
	}

	out, err := uc.run(context.WithoutCancel(ctx), job, vendorName(sc))
	if err != nil {
		return report.SyncOutput{}, err
	}

	return report.SyncOutput{
		JobID:       job.ID,
		ArtifactID:  out.artifact.ID,
		FileName:    out.fileName(),
		ContentType: out.format.ContentType(),
		Data:        out.data,
	}, nil
}

// GenerateQuick - Resolve a built-in daily, weekly or monthly report and generate it.
func (uc *implUseCase) GenerateQuick(ctx context.Context, sc model.Scope, input report.QuickInput) (report.GenerateOutput, error) {
	cfg, err := uc.configUC.ResolveQuick(ctx, reportconfig.QuickInput{Kind: input.Kind, Format: input.Format})
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.GenerateQuick: configUC.ResolveQuick failed: %v", err)
		return report.GenerateOutput{}, fmt.Errorf("%w: %w", report.ErrInvalidConfiguration, err)
	}

	return uc.Generate(ctx, sc, report.GenerateInput{Configuration: cfg})
}

// GetJob - Get one of the caller's jobs.
func (uc *implUseCase) GetJob(ctx context.Context, sc model.Scope, input report.GetJobInput) (report.JobOutput, error) {
	if _, err := uuid.Parse(input.JobID); err != nil {
		return report.JobOutput{}, report.ErrNotFound
	}

	job, err := uc.repo.GetJob(ctx, repository.GetJobOptions{ID: input.JobID, OwnerID: sc.UserID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return report.JobOutput{}, report.ErrNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.GetJob: repo.GetJob failed: %v", err)
		return report.JobOutput{}, err
	}

	return report.JobOutput{Job: job}, nil
}

// create - Validate the configuration and insert a PENDING job holding a frozen copy of it.
// Nothing is written when validation fails.
func (uc *implUseCase) create(ctx context.Context, sc model.Scope, input report.GenerateInput) (model.ReportJob, error) {
	cfg, err := uc.resolveConfiguration(ctx, sc, input)
	if err != nil {
		return model.ReportJob{}, err
	}

	if err := uc.configUC.Validate(&cfg); err != nil {
		uc.l.Warnf(ctx, "report.usecase.create: invalid configuration: %v", err)
		if errors.Is(err, reportconfig.ErrInvalidRange) {
			return model.ReportJob{}, fmt.Errorf("%w: %w", report.ErrInvalidRange, err)
		}
		return model.ReportJob{}, fmt.Errorf("%w: %w", report.ErrInvalidConfiguration, err)
	}
	cfg.OwnerID = sc.UserID

	job, err := uc.repo.CreateJob(ctx, repository.CreateJobOptions{
		ID:            uuid.NewString(),
		OwnerID:       sc.UserID,
		Configuration: cfg.Clone(),
		CreatedAt:     uc.config.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.create: repo.CreateJob failed: %v", err)
		return model.ReportJob{}, err
	}

	uc.config.Metrics.RecordJob(string(model.JobStatePending), "")
	uc.l.Infof(ctx, "report.usecase.create: job %s created for owner %s", job.ID, sc.UserID)
	return job, nil
}

// resolveConfiguration - A saved configuration when ConfigID is set, the ad-hoc one otherwise.
func (uc *implUseCase) resolveConfiguration(ctx context.Context, sc model.Scope, input report.GenerateInput) (model.ReportConfiguration, error) {
	if input.ConfigID == "" {
		return input.Configuration.Clone(), nil
	}

	cfg, err := uc.configUC.Load(ctx, sc, reportconfig.LoadInput{ID: input.ConfigID})
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.resolveConfiguration: configUC.Load failed: %v", err)
		return model.ReportConfiguration{}, err
	}
	return cfg, nil
}

func vendorName(sc model.Scope) string {
	if sc.Username != "" {
		return sc.Username
	}
	return sc.UserID
}
