package reportconfig

import (
	"fmt"
	"strings"
	"time"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/render"
)

const maxNameLen = 200

// Validate normalizes cfg in place and checks every field a report needs.
// Empty type, group by, format and timezone take their defaults; defaultZone may be nil.
func Validate(cfg *model.ReportConfiguration, catalog *metric.Catalog, defaultZone *time.Location) error {
	cfg.Name = strings.TrimSpace(cfg.Name)
	if cfg.Name == "" || len(cfg.Name) > maxNameLen {
		return fmt.Errorf("%w: name must be 1 to %d characters", ErrInvalidConfiguration, maxNameLen)
	}

	if cfg.Type == "" {
		cfg.Type = model.ReportTypeCustom
	}
	if !cfg.Type.IsValid() {
		return fmt.Errorf("%w: type %q", ErrInvalidConfiguration, cfg.Type)
	}

	if _, err := catalog.Validate(cfg.Metrics); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	if cfg.GroupBy == "" {
		cfg.GroupBy = model.GranularityDay
	}
	if !cfg.GroupBy.IsValid() {
		return fmt.Errorf("%w: group by %q", ErrInvalidConfiguration, cfg.GroupBy)
	}

	if cfg.Format == "" {
		cfg.Format = render.FormatPDF.String()
	}
	f, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	cfg.Format = f.String()

	loc, err := resolveZone(cfg.Timezone, defaultZone)
	if err != nil {
		return fmt.Errorf("%w: timezone %q", ErrInvalidConfiguration, cfg.Timezone)
	}
	cfg.Timezone = loc.String()

	if _, _, err := aggregation.ParseRange(cfg.DateRange, loc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}

	return validateFilters(&cfg.Filters)
}

func validateFilters(f *model.Filters) error {
	f.Category = strings.TrimSpace(f.Category)

	statuses := make([]string, 0, len(f.Statuses))
	for _, s := range f.Statuses {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	f.Statuses = statuses

	if f.MinAmount != nil && f.MinAmount.IsNegative() {
		return fmt.Errorf("%w: min amount is negative", ErrInvalidConfiguration)
	}
	if f.MaxAmount != nil && f.MaxAmount.IsNegative() {
		return fmt.Errorf("%w: max amount is negative", ErrInvalidConfiguration)
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.GreaterThan(*f.MaxAmount) {
		return fmt.Errorf("%w: min amount exceeds max amount", ErrInvalidConfiguration)
	}
	return nil
}

func resolveZone(name string, fallback *time.Location) (*time.Location, error) {
	if name == "" {
		if fallback == nil {
			return time.UTC, nil
		}
		return fallback, nil
	}
	return time.LoadLocation(name)
}
