package usecase

import (
	"context"
	"fmt"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/aggregation/repository"
)

// RecordView adds product views to the vendor's quarter-hour slot holding ViewedAt.
func (uc *implUseCase) RecordView(ctx context.Context, input aggregation.RecordViewInput) error {
	if input.VendorID == "" || input.ViewedAt.IsZero() {
		return fmt.Errorf("%w: vendor id and view time are required", aggregation.ErrInvalidInput)
	}
	count := input.Count
	if count <= 0 {
		count = 1
	}

	_, err := uc.views.IncrementViews(ctx, repository.IncrementViewsOptions{
		VendorID: input.VendorID,
		At:       input.ViewedAt,
		Count:    count,
		TTL:      uc.config.ViewsTTL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "aggregation.usecase.RecordView: Failed to increment views: %v", err)
		return fmt.Errorf("%w: %w", aggregation.ErrSourceUnavailable, err)
	}
	uc.config.Metrics.RecordViews(count)
	return nil
}
