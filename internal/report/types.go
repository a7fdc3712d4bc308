package report

import (
	"time"

	"vendor-report-srv/internal/model"
)

// GenerateInput carries either a saved configuration id or an ad-hoc configuration.
// ConfigID wins when both are set.
type GenerateInput struct {
	ConfigID      string
	Configuration model.ReportConfiguration
}

type GenerateOutput struct {
	JobID string
	State model.JobState
}

// SyncOutput is the rendered document of a job run inline.
type SyncOutput struct {
	JobID       string
	ArtifactID  string
	FileName    string
	ContentType string
	Data        []byte
}

type QuickInput struct {
	Kind   model.ReportType
	Format string
}

type GetJobInput struct {
	JobID string
}

type JobOutput struct {
	Job model.ReportJob
}

// Event is a job lifecycle notification.
type Event struct {
	Type        string
	JobID       string
	OwnerID     string
	State       model.JobState
	FailureCode string
	ArtifactID  string
	OccurredAt  time.Time
}

const (
	EventJobGenerating = "report.job.generating"
	EventJobReady      = "report.job.ready"
	EventJobFailed     = "report.job.failed"
)
