package reportconfig

import (
	"context"

	"vendor-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Save validates and stores a configuration. A configuration with an ID replaces the owner's copy.
	Save(ctx context.Context, sc model.Scope, input SaveInput) (model.ReportConfiguration, error)
	Load(ctx context.Context, sc model.Scope, input LoadInput) (model.ReportConfiguration, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
	// ListQuickTemplates returns the built-in configurations resolved against the current time.
	ListQuickTemplates(ctx context.Context) []model.ReportConfiguration
	// ResolveQuick builds the configuration of a daily, weekly or monthly quick report.
	ResolveQuick(ctx context.Context, input QuickInput) (model.ReportConfiguration, error)
	// Validate normalizes cfg in place and checks it.
	Validate(cfg *model.ReportConfiguration) error
}
