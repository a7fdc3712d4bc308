package repository

import (
	"context"

	"vendor-report-srv/internal/model"
)

//go:generate mockery --name LedgerRepository
type LedgerRepository interface {
	ListLines(ctx context.Context, opts ListLinesOptions) ([]model.LedgerLine, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	LedgerRepository
}

//go:generate mockery --name ViewsRepository
type ViewsRepository interface {
	// GetViews returns the recorded slots inside [From, To), ordered by time.
	// Slots without a counter are absent.
	GetViews(ctx context.Context, opts GetViewsOptions) ([]model.ViewSlot, error)
	IncrementViews(ctx context.Context, opts IncrementViewsOptions) (int64, error)
}
