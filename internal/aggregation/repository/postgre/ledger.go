package postgre

import (
	"context"

	"vendor-report-srv/internal/aggregation/repository"
	"vendor-report-srv/internal/model"
)

// ListLines - Read the vendor's order lines in [From, To) matching the filters.
func (r *implRepository) ListLines(ctx context.Context, opts repository.ListLinesOptions) ([]model.LedgerLine, error) {
	query, args := r.buildListLinesQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.postgre.ListLines: Failed to query ledger: %v", err)
		return nil, repository.ErrLedgerQueryFailed
	}
	defer rows.Close()

	lines := []model.LedgerLine{}
	for rows.Next() {
		line, err := scanLedgerLine(rows)
		if err != nil {
			r.l.Errorf(ctx, "aggregation.repository.postgre.ListLines: Failed to scan line: %v", err)
			return nil, repository.ErrLedgerQueryFailed
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "aggregation.repository.postgre.ListLines: Failed to iterate rows: %v", err)
		return nil, repository.ErrLedgerQueryFailed
	}

	return lines, nil
}
