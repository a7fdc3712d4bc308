package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/reportconfig/repository"
)

// CreateConfiguration - Insert a configuration.
func (r *implRepository) CreateConfiguration(ctx context.Context, opts repository.CreateOptions) (model.ReportConfiguration, error) {
	cfg := opts.Configuration
	doc, err := buildConfigurationJSON(cfg)
	if err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.CreateConfiguration: Failed to encode: %v", err)
		return model.ReportConfiguration{}, repository.ErrFailedToWrite
	}

	saved, err := scanConfiguration(r.db.QueryRowContext(ctx, insertConfigurationQuery,
		cfg.ID, cfg.OwnerID, cfg.Name, string(cfg.Type), doc, time.Now().UTC()))
	if err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.CreateConfiguration: Failed to insert: %v", err)
		return model.ReportConfiguration{}, repository.ErrFailedToWrite
	}
	return saved, nil
}

// UpdateConfiguration - Replace the owner's configuration.
func (r *implRepository) UpdateConfiguration(ctx context.Context, opts repository.UpdateOptions) (model.ReportConfiguration, error) {
	cfg := opts.Configuration
	doc, err := buildConfigurationJSON(cfg)
	if err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.UpdateConfiguration: Failed to encode: %v", err)
		return model.ReportConfiguration{}, repository.ErrFailedToWrite
	}

	saved, err := scanConfiguration(r.db.QueryRowContext(ctx, updateConfigurationQuery,
		cfg.ID, cfg.OwnerID, cfg.Name, string(cfg.Type), doc, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReportConfiguration{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "reportconfig.repository.postgre.UpdateConfiguration: Failed to update: %v", err)
		return model.ReportConfiguration{}, repository.ErrFailedToWrite
	}
	return saved, nil
}

// GetConfiguration - Get a configuration by id, scoped to its owner.
func (r *implRepository) GetConfiguration(ctx context.Context, opts repository.GetOptions) (model.ReportConfiguration, error) {
	cfg, err := scanConfiguration(r.db.QueryRowContext(ctx, getConfigurationQuery, opts.ID, opts.OwnerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReportConfiguration{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "reportconfig.repository.postgre.GetConfiguration: Failed to get: %v", err)
		return model.ReportConfiguration{}, repository.ErrFailedToQuery
	}
	return cfg, nil
}

// ListConfigurations - One page of the owner's configurations, newest first, plus the total.
func (r *implRepository) ListConfigurations(ctx context.Context, opts repository.ListOptions) ([]model.ReportConfiguration, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countConfigurationsQuery, opts.OwnerID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.ListConfigurations: Failed to count: %v", err)
		return nil, 0, repository.ErrFailedToQuery
	}
	if total == 0 {
		return []model.ReportConfiguration{}, 0, nil
	}

	rows, err := r.db.QueryContext(ctx, listConfigurationsQuery, opts.OwnerID, opts.Limit, opts.Offset)
	if err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.ListConfigurations: Failed to query: %v", err)
		return nil, 0, repository.ErrFailedToQuery
	}
	defer rows.Close()

	configs := []model.ReportConfiguration{}
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			r.l.Errorf(ctx, "reportconfig.repository.postgre.ListConfigurations: Failed to scan: %v", err)
			return nil, 0, repository.ErrFailedToQuery
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.ListConfigurations: Failed to iterate rows: %v", err)
		return nil, 0, repository.ErrFailedToQuery
	}
	return configs, total, nil
}

// DeleteConfiguration - Hard delete. Jobs keep their own copies.
func (r *implRepository) DeleteConfiguration(ctx context.Context, opts repository.DeleteOptions) error {
	res, err := r.db.ExecContext(ctx, deleteConfigurationQuery, opts.ID, opts.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.DeleteConfiguration: Failed to delete: %v", err)
		return repository.ErrFailedToWrite
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "reportconfig.repository.postgre.DeleteConfiguration: Failed to read affected rows: %v", err)
		return repository.ErrFailedToWrite
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
