package postgre

import (
	"context"
	"database/sql"
	"errors"

	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
)

// CreateArtifact - Insert a registry row.
func (r *implRepository) CreateArtifact(ctx context.Context, opts repository.CreateArtifactOptions) (model.ReportArtifact, error) {
	row := r.db.QueryRowContext(ctx, insertArtifactQuery,
		opts.ID,
		opts.JobID,
		opts.OwnerID,
		opts.Name,
		opts.Format,
		opts.ByteSize,
		opts.StorageRef,
		opts.ContentType,
		opts.GeneratedAt,
		opts.ExpiresAt,
	)
	a, err := scanArtifact(row)
	if err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.CreateArtifact: Failed to insert artifact: %v", err)
		return model.ReportArtifact{}, repository.ErrFailedToWrite
	}
	return a, nil
}

// GetArtifact - Get an artifact by id, scoped to its owner.
func (r *implRepository) GetArtifact(ctx context.Context, opts repository.GetArtifactOptions) (model.ReportArtifact, error) {
	a, err := scanArtifact(r.db.QueryRowContext(ctx, getArtifactQuery, opts.ID, opts.OwnerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReportArtifact{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "artifact.repository.postgre.GetArtifact: Failed to get artifact: %v", err)
		return model.ReportArtifact{}, repository.ErrFailedToQuery
	}
	return a, nil
}

// IncrementDownload - Atomically bump download_count of a live artifact.
func (r *implRepository) IncrementDownload(ctx context.Context, opts repository.IncrementDownloadOptions) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, incrementDownloadQuery, opts.ID, opts.OwnerID, opts.Now).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "artifact.repository.postgre.IncrementDownload: Failed to increment: %v", err)
		return 0, repository.ErrFailedToWrite
	}
	return count, nil
}

// MarkDeleted - Set deleted_at if it is still NULL.
func (r *implRepository) MarkDeleted(ctx context.Context, opts repository.MarkDeletedOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, markDeletedQuery, opts.ID, opts.Now)
	if err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.MarkDeleted: Failed to mark deleted: %v", err)
		return false, repository.ErrFailedToWrite
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.MarkDeleted: Failed to read affected rows: %v", err)
		return false, repository.ErrFailedToWrite
	}
	return n > 0, nil
}

// ListExpired - List artifacts past their expiry that are not deleted yet.
func (r *implRepository) ListExpired(ctx context.Context, opts repository.ListExpiredOptions) ([]model.ReportArtifact, error) {
	query, args := r.buildListExpiredQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.ListExpired: Failed to query: %v", err)
		return nil, repository.ErrFailedToQuery
	}
	defer rows.Close()

	artifacts := []model.ReportArtifact{}
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			r.l.Errorf(ctx, "artifact.repository.postgre.ListExpired: Failed to scan: %v", err)
			return nil, repository.ErrFailedToQuery
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.ListExpired: Failed to iterate rows: %v", err)
		return nil, repository.ErrFailedToQuery
	}
	return artifacts, nil
}

// ListHistory - One page of the owner's jobs joined with their live artifacts, plus the total.
func (r *implRepository) ListHistory(ctx context.Context, opts repository.ListHistoryOptions) ([]repository.HistoryRow, int64, error) {
	query, args, countQuery, countArgs := r.buildListHistoryQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.ListHistory: Failed to count: %v", err)
		return nil, 0, repository.ErrFailedToQuery
	}
	if total == 0 {
		return []repository.HistoryRow{}, 0, nil
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.ListHistory: Failed to query: %v", err)
		return nil, 0, repository.ErrFailedToQuery
	}
	defer rows.Close()

	history := []repository.HistoryRow{}
	for rows.Next() {
		h, err := scanHistoryRow(rows)
		if err != nil {
			r.l.Errorf(ctx, "artifact.repository.postgre.ListHistory: Failed to scan: %v", err)
			return nil, 0, repository.ErrFailedToQuery
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "artifact.repository.postgre.ListHistory: Failed to iterate rows: %v", err)
		return nil, 0, repository.ErrFailedToQuery
	}
	return history, total, nil
}
