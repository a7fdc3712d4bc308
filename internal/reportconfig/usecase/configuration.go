package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/internal/reportconfig/repository"
	"vendor-report-srv/pkg/paginator"
)

// Validate normalizes cfg in place using the service catalog and zone.
func (uc *implUseCase) Validate(cfg *model.ReportConfiguration) error {
	return reportconfig.Validate(cfg, uc.catalog, uc.config.Location)
}

func (uc *implUseCase) Save(ctx context.Context, sc model.Scope, input reportconfig.SaveInput) (model.ReportConfiguration, error) {
	cfg := input.Configuration.Clone()
	if err := uc.Validate(&cfg); err != nil {
		return model.ReportConfiguration{}, err
	}
	cfg.OwnerID = sc.UserID

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
		saved, err := uc.repo.CreateConfiguration(ctx, repository.CreateOptions{Configuration: cfg})
		if err != nil {
			uc.l.Errorf(ctx, "reportconfig.usecase.Save: Failed to create: %v", err)
			return model.ReportConfiguration{}, err
		}
		return saved, nil
	}

	if _, err := uuid.Parse(cfg.ID); err != nil {
		return model.ReportConfiguration{}, reportconfig.ErrNotFound
	}
	saved, err := uc.repo.UpdateConfiguration(ctx, repository.UpdateOptions{Configuration: cfg})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ReportConfiguration{}, reportconfig.ErrNotFound
		}
		uc.l.Errorf(ctx, "reportconfig.usecase.Save: Failed to update: %v", err)
		return model.ReportConfiguration{}, err
	}
	return saved, nil
}

func (uc *implUseCase) Load(ctx context.Context, sc model.Scope, input reportconfig.LoadInput) (model.ReportConfiguration, error) {
	if _, err := uuid.Parse(input.ID); err != nil {
		return model.ReportConfiguration{}, reportconfig.ErrNotFound
	}

	cfg, err := uc.repo.GetConfiguration(ctx, repository.GetOptions{ID: input.ID, OwnerID: sc.UserID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ReportConfiguration{}, reportconfig.ErrNotFound
		}
		uc.l.Errorf(ctx, "reportconfig.usecase.Load: Failed to get: %v", err)
		return model.ReportConfiguration{}, err
	}
	return cfg, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input reportconfig.ListInput) (reportconfig.ListOutput, error) {
	input.Paginate.Adjust()

	configs, total, err := uc.repo.ListConfigurations(ctx, repository.ListOptions{
		OwnerID: sc.UserID,
		Offset:  input.Paginate.Offset(),
		Limit:   input.Paginate.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reportconfig.usecase.List: Failed to list: %v", err)
		return reportconfig.ListOutput{}, err
	}

	return reportconfig.ListOutput{
		Configurations: configs,
		Paginator:      paginator.New(input.Paginate, total, int64(len(configs))),
	}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input reportconfig.DeleteInput) error {
	if _, err := uuid.Parse(input.ID); err != nil {
		return reportconfig.ErrNotFound
	}

	err := uc.repo.DeleteConfiguration(ctx, repository.DeleteOptions{ID: input.ID, OwnerID: sc.UserID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return reportconfig.ErrNotFound
		}
		uc.l.Errorf(ctx, "reportconfig.usecase.Delete: Failed to delete: %v", err)
		return fmt.Errorf("reportconfig.usecase.Delete: %w", err)
	}
	return nil
}
