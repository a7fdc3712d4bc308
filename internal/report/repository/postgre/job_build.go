package postgre

import (
	"database/sql"
	"encoding/json"
	"time"

	"vendor-report-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// buildJobConfigurationJSON - The frozen configuration stored with a job.
func buildJobConfigurationJSON(cfg model.ReportConfiguration) ([]byte, error) {
	return json.Marshal(cfg.Clone())
}

// scanJob - Scan jobColumns into a model.ReportJob.
func scanJob(row rowScanner) (model.ReportJob, error) {
	var (
		job           model.ReportJob
		doc           []byte
		state         string
		failureCode   sql.NullString
		failureReason sql.NullString
		artifactID    sql.NullString
		startedAt     sql.NullTime
		completedAt   sql.NullTime
	)
	err := row.Scan(
		&job.ID,
		&job.OwnerID,
		&doc,
		&state,
		&failureCode,
		&failureReason,
		&artifactID,
		&job.CreatedAt,
		&startedAt,
		&completedAt,
	)
	if err != nil {
		return model.ReportJob{}, err
	}
	if err := json.Unmarshal(doc, &job.Configuration); err != nil {
		return model.ReportJob{}, err
	}

	job.State = model.JobState(state)
	if failureCode.Valid {
		code := model.FailureCode(failureCode.String)
		job.FailureCode = &code
	}
	if failureReason.Valid {
		reason := failureReason.String
		job.FailureReason = &reason
	}
	if artifactID.Valid {
		id := artifactID.String
		job.ArtifactID = &id
	}
	job.StartedAt = nullTimePtr(startedAt)
	job.CompletedAt = nullTimePtr(completedAt)
	return job, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
