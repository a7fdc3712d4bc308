package repository

import (
	"context"

	"vendor-report-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateConfiguration(ctx context.Context, opts CreateOptions) (model.ReportConfiguration, error)
	UpdateConfiguration(ctx context.Context, opts UpdateOptions) (model.ReportConfiguration, error)
	GetConfiguration(ctx context.Context, opts GetOptions) (model.ReportConfiguration, error)
	ListConfigurations(ctx context.Context, opts ListOptions) ([]model.ReportConfiguration, int64, error)
	DeleteConfiguration(ctx context.Context, opts DeleteOptions) error
}
