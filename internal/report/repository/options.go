package repository

import (
	"time"

	"vendor-report-srv/internal/model"
)

type CreateJobOptions struct {
	ID            string
	OwnerID       string
	Configuration model.ReportConfiguration
	CreatedAt     time.Time
}

type GetJobOptions struct {
	ID      string
	OwnerID string
}

type MarkGeneratingOptions struct {
	ID        string
	StartedAt time.Time
}

type MarkReadyOptions struct {
	ID          string
	ArtifactID  string
	CompletedAt time.Time
}

type MarkFailedOptions struct {
	ID          string
	Code        model.FailureCode
	Reason      string
	CompletedAt time.Time
}

type FailStaleJobsOptions struct {
	CreatedBefore time.Time
	Code          model.FailureCode
	Reason        string
	CompletedAt   time.Time
}
