package usecase

import (
	"context"
	"fmt"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/render"
	"vendor-report-srv/internal/reportconfig"
)

func (uc *implUseCase) ListQuickTemplates(ctx context.Context) []model.ReportConfiguration {
	return reportconfig.Templates(uc.config.Now(), uc.config.Location)
}

func (uc *implUseCase) ResolveQuick(ctx context.Context, input reportconfig.QuickInput) (model.ReportConfiguration, error) {
	cfg, err := reportconfig.Quick(input.Kind, uc.config.Now(), uc.config.Location)
	if err != nil {
		return model.ReportConfiguration{}, err
	}

	if input.Format != "" {
		f, err := render.ParseFormat(input.Format)
		if err != nil {
			return model.ReportConfiguration{}, fmt.Errorf("%w: %w", reportconfig.ErrInvalidConfiguration, err)
		}
		cfg.Format = f.String()
	}
	cfg.ID = ""
	return cfg, nil
}
