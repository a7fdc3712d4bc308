package postgre

import (
	"context"
	"database/sql"
	"errors"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report/repository"
)

// CreateJob - Insert a PENDING job with its frozen configuration.
func (r *implRepository) CreateJob(ctx context.Context, opts repository.CreateJobOptions) (model.ReportJob, error) {
	cfg := opts.Configuration
	doc, err := buildJobConfigurationJSON(cfg)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateJob: Failed to encode configuration: %v", err)
		return model.ReportJob{}, repository.ErrFailedToWrite
	}

	job, err := scanJob(r.db.QueryRowContext(ctx, insertJobQuery,
		opts.ID, opts.OwnerID, cfg.Name, string(cfg.Type), cfg.Format, doc, opts.CreatedAt))
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateJob: Failed to insert job: %v", err)
		return model.ReportJob{}, repository.ErrFailedToWrite
	}
	return job, nil
}

// GetJob - Get a job by id, scoped to its owner.
func (r *implRepository) GetJob(ctx context.Context, opts repository.GetJobOptions) (model.ReportJob, error) {
	job, err := scanJob(r.db.QueryRowContext(ctx, getJobQuery, opts.ID, opts.OwnerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReportJob{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "report.repository.postgre.GetJob: Failed to get job: %v", err)
		return model.ReportJob{}, repository.ErrFailedToQuery
	}
	return job, nil
}

func (r *implRepository) MarkGenerating(ctx context.Context, opts repository.MarkGeneratingOptions) error {
	return r.transition(ctx, "MarkGenerating", markGeneratingQuery, opts.ID, opts.StartedAt)
}

func (r *implRepository) MarkReady(ctx context.Context, opts repository.MarkReadyOptions) error {
	return r.transition(ctx, "MarkReady", markReadyQuery, opts.ID, opts.ArtifactID, opts.CompletedAt)
}

func (r *implRepository) MarkFailed(ctx context.Context, opts repository.MarkFailedOptions) error {
	return r.transition(ctx, "MarkFailed", markFailedQuery, opts.ID, string(opts.Code), opts.Reason, opts.CompletedAt)
}

// FailStaleJobs - Fail open jobs older than the cutoff in one statement.
func (r *implRepository) FailStaleJobs(ctx context.Context, opts repository.FailStaleJobsOptions) ([]model.ReportJob, error) {
	rows, err := r.db.QueryContext(ctx, failStaleJobsQuery,
		opts.CreatedBefore, string(opts.Code), opts.Reason, opts.CompletedAt)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.FailStaleJobs: Failed to update jobs: %v", err)
		return nil, repository.ErrFailedToWrite
	}
	defer rows.Close()

	var jobs []model.ReportJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.FailStaleJobs: Failed to scan job: %v", err)
			return nil, repository.ErrFailedToQuery
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.FailStaleJobs: Failed to iterate jobs: %v", err)
		return nil, repository.ErrFailedToQuery
	}
	return jobs, nil
}

// transition - Run a guarded state UPDATE. No affected row means the job left the expected state.
func (r *implRepository) transition(ctx context.Context, name, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.%s: Failed to update job: %v", name, err)
		return repository.ErrFailedToWrite
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.%s: Failed to read affected rows: %v", name, err)
		return repository.ErrFailedToWrite
	}
	if n == 0 {
		return repository.ErrStateConflict
	}
	return nil
}
