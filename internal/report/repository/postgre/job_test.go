package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/report/repository"
	"vendor-report-srv/pkg/log"
)

var columns = []string{"id", "owner_id", "configuration", "state", "failure_code", "failure_reason",
	"artifact_id", "created_at", "started_at", "completed_at"}

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func sampleConfig() model.ReportConfiguration {
	return model.ReportConfiguration{
		Name:      "January",
		Type:      model.ReportTypeCustom,
		DateRange: model.DateRange{Start: "2024-01-01", End: "2024-01-31"},
		Metrics:   []string{"revenue"},
		GroupBy:   model.GranularityDay,
		Format:    "pdf",
		Timezone:  "UTC",
	}
}

func TestCreateJob(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())
	cfg := sampleConfig()
	doc, err := buildJobConfigurationJSON(cfg)
	require.NoError(t, err)
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO report_jobs")).
		WithArgs("j1", "v1", "January", "custom", "pdf", sqlmock.AnyArg(), now).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("j1", "v1", doc, "PENDING", nil, nil, nil, now, nil, nil))

	job, err := repo.CreateJob(context.Background(), repository.CreateJobOptions{
		ID: "j1", OwnerID: "v1", Configuration: cfg, CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, model.JobStatePending, job.State)
	assert.Equal(t, "January", job.Configuration.Name)
	assert.Equal(t, []string{"revenue"}, job.Configuration.Metrics)
	assert.Nil(t, job.FailureCode)
	assert.Nil(t, job.ArtifactID)
	assert.Nil(t, job.StartedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJobInsertFails(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO report_jobs")).WillReturnError(errors.New("boom"))

	_, err := repo.CreateJob(context.Background(), repository.CreateJobOptions{
		ID: "j1", OwnerID: "v1", Configuration: sampleConfig(), CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrFailedToWrite)
}

func TestGetJob(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())
	doc, err := buildJobConfigurationJSON(sampleConfig())
	require.NoError(t, err)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM report_jobs")).
		WithArgs("j1", "v1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("j1", "v1", doc, "FAILED", "TIMEOUT", "Report generation took too long and was stopped.", nil, now, now, now))

	job, err := repo.GetJob(context.Background(), repository.GetJobOptions{ID: "j1", OwnerID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, model.JobStateFailed, job.State)
	require.NotNil(t, job.FailureCode)
	assert.Equal(t, model.FailureTimeout, *job.FailureCode)
	require.NotNil(t, job.CompletedAt)
}

func TestGetJobNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM report_jobs")).
		WithArgs("j1", "other").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetJob(context.Background(), repository.GetJobOptions{ID: "j1", OwnerID: "other"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTransitions(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		affected int64
		run      func(repository.PostgresRepository) error
		wantErr  error
	}{
		{
			name:     "generating",
			affected: 1,
			run: func(r repository.PostgresRepository) error {
				return r.MarkGenerating(context.Background(), repository.MarkGeneratingOptions{ID: "j1", StartedAt: now})
			},
		},
		{
			name:     "ready from terminal state",
			affected: 0,
			run: func(r repository.PostgresRepository) error {
				return r.MarkReady(context.Background(), repository.MarkReadyOptions{ID: "j1", ArtifactID: "a1", CompletedAt: now})
			},
			wantErr: repository.ErrStateConflict,
		},
		{
			name:     "failed",
			affected: 1,
			run: func(r repository.PostgresRepository) error {
				return r.MarkFailed(context.Background(), repository.MarkFailedOptions{
					ID: "j1", Code: model.FailureInternal, Reason: model.FailureInternal.Summary(), CompletedAt: now,
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := New(db, log.NewNop())
			mock.ExpectExec(regexp.QuoteMeta("UPDATE report_jobs")).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := tt.run(repo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkReadyGuardsOnGenerating(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND state = 'GENERATING'")).
		WithArgs("j1", "a1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkReady(context.Background(), repository.MarkReadyOptions{ID: "j1", ArtifactID: "a1", CompletedAt: time.Now()})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionExecFails(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE report_jobs")).WillReturnError(errors.New("conn reset"))

	err := repo.MarkGenerating(context.Background(), repository.MarkGeneratingOptions{ID: "j1", StartedAt: time.Now()})
	assert.ErrorIs(t, err, repository.ErrFailedToWrite)
}

func TestFailStaleJobs(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())
	doc, err := buildJobConfigurationJSON(sampleConfig())
	require.NoError(t, err)
	cutoff := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	now := cutoff.Add(5 * time.Minute)
	created := cutoff.Add(-time.Hour)
	reason := model.FailureTimeout.Summary()

	mock.ExpectQuery(regexp.QuoteMeta("state IN ('PENDING', 'GENERATING') AND created_at < $1")).
		WithArgs(cutoff, "TIMEOUT", reason, now).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("j1", "v1", doc, "FAILED", "TIMEOUT", reason, nil, created, nil, now).
			AddRow("j2", "v2", doc, "FAILED", "TIMEOUT", reason, nil, created, created, now))

	jobs, err := repo.FailStaleJobs(context.Background(), repository.FailStaleJobsOptions{
		CreatedBefore: cutoff, Code: model.FailureTimeout, Reason: reason, CompletedAt: now,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "j1", jobs[0].ID)
	assert.Equal(t, "v2", jobs[1].OwnerID)
	assert.Equal(t, model.JobStateFailed, jobs[1].State)
	require.NotNil(t, jobs[1].FailureCode)
	assert.Equal(t, model.FailureTimeout, *jobs[1].FailureCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFailStaleJobsNothingOpen(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE report_jobs")).
		WillReturnRows(sqlmock.NewRows(columns))

	jobs, err := repo.FailStaleJobs(context.Background(), repository.FailStaleJobsOptions{CreatedBefore: time.Now()})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFailStaleJobsQueryFails(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE report_jobs")).WillReturnError(errors.New("conn reset"))

	_, err := repo.FailStaleJobs(context.Background(), repository.FailStaleJobsOptions{CreatedBefore: time.Now()})
	assert.ErrorIs(t, err, repository.ErrFailedToWrite)
}
