package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"vendor-report-srv/internal/artifact/repository"
)

const artifactColumns = `id, job_id, owner_id, name, format, byte_size, storage_ref, content_type,
	generated_at, expires_at, download_count, deleted_at`

const (
	insertArtifactQuery = `INSERT INTO report_artifacts
	(id, job_id, owner_id, name, format, byte_size, storage_ref, content_type, generated_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + artifactColumns

	getArtifactQuery = `SELECT ` + artifactColumns + `
FROM report_artifacts
WHERE id = $1 AND owner_id = $2`

	incrementDownloadQuery = `UPDATE report_artifacts
SET download_count = download_count + 1
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL AND expires_at > $3
RETURNING download_count`

	markDeletedQuery = `UPDATE report_artifacts
SET deleted_at = $2
WHERE id = $1 AND deleted_at IS NULL`
)

const historySelect = `SELECT j.id, j.name, j.type, j.format, j.state, j.failure_code, j.failure_reason, j.created_at,
	a.id, a.job_id, a.owner_id, a.name, a.format, a.byte_size, a.storage_ref, a.content_type,
	a.generated_at, a.expires_at, a.download_count, a.deleted_at
FROM report_jobs j
LEFT JOIN report_artifacts a ON a.job_id = j.id`

const historyCount = `SELECT COUNT(*)
FROM report_jobs j
LEFT JOIN report_artifacts a ON a.job_id = j.id`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListExpiredQuery - Build query and args for ListExpired.
func (r *implRepository) buildListExpiredQuery(opts repository.ListExpiredOptions) (string, []interface{}) {
	args := []interface{}{opts.Now}
	query := `SELECT ` + artifactColumns + `
FROM report_artifacts
WHERE deleted_at IS NULL AND expires_at <= $1`

	if opts.OwnerID != "" {
		args = append(args, opts.OwnerID)
		query += fmt.Sprintf(" AND owner_id = $%d", len(args))
	}
	query += "\nORDER BY expires_at"
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}

// buildHistoryWhere - Shared WHERE clause of the history page and its count.
func (r *implRepository) buildHistoryWhere(opts repository.ListHistoryOptions) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	add("j.owner_id = $%d", opts.OwnerID)
	add("(a.id IS NULL OR (a.deleted_at IS NULL AND a.expires_at > $%d))", opts.Now)
	if opts.Type != "" {
		add("j.type = $%d", opts.Type)
	}
	if opts.Format != "" {
		add("j.format = $%d", opts.Format)
	}
	if len(opts.States) > 0 {
		add("j.state = ANY($%d)", pq.Array(opts.States))
	}
	if search := strings.TrimSpace(opts.Search); search != "" {
		add("j.name ILIKE $%d", "%"+likeEscaper.Replace(search)+"%")
	}

	return "\nWHERE " + strings.Join(conds, " AND "), args
}

// buildListHistoryQuery - Build the page query and the count query for ListHistory.
func (r *implRepository) buildListHistoryQuery(opts repository.ListHistoryOptions) (query string, args []interface{}, countQuery string, countArgs []interface{}) {
	where, countArgs := r.buildHistoryWhere(opts)
	countQuery = historyCount + where

	args = append([]interface{}{}, countArgs...)
	args = append(args, opts.Limit, opts.Offset)
	query = historySelect + where +
		"\nORDER BY COALESCE(a.generated_at, j.created_at) DESC, j.id" +
		fmt.Sprintf("\nLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return query, args, countQuery, countArgs
}
