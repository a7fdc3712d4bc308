package model

import "time"

// JobState is the lifecycle state of a report job.
type JobState string

const (
	JobStatePending    JobState = "PENDING"
	JobStateGenerating JobState = "GENERATING"
	JobStateReady      JobState = "READY"
	JobStateFailed     JobState = "FAILED"
)

// IsTerminal reports whether no further transition is allowed.
func (s JobState) IsTerminal() bool {
	return s == JobStateReady || s == JobStateFailed
}

// FailureCode classifies why a job failed.
type FailureCode string

const (
	FailureSourceUnavailable FailureCode = "SOURCE_UNAVAILABLE"
	FailureInvalidRange      FailureCode = "INVALID_RANGE"
	FailureRenderFailure     FailureCode = "RENDER_FAILURE"
	FailureStorageFailure    FailureCode = "STORAGE_FAILURE"
	FailureTimeout           FailureCode = "TIMEOUT"
	FailureInternal          FailureCode = "INTERNAL"
)

var failureSummaries = map[FailureCode]string{
	FailureSourceUnavailable: "Sales data is temporarily unavailable. Please try again later.",
	FailureInvalidRange:      "The requested date range is invalid.",
	FailureRenderFailure:     "The report could not be rendered in the requested format.",
	FailureStorageFailure:    "The generated report could not be stored. Please try again later.",
	FailureTimeout:           "Report generation took too long and was stopped.",
	FailureInternal:          "An unexpected error occurred while generating the report.",
}

// Summary is the human readable reason stored with a failed job.
func (c FailureCode) Summary() string {
	if s, ok := failureSummaries[c]; ok {
		return s
	}
	return failureSummaries[FailureInternal]
}

// ReportJob tracks one generation request.
type ReportJob struct {
	ID            string
	OwnerID       string
	Configuration ReportConfiguration
	State         JobState
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
	FailureCode   *FailureCode
	FailureReason *string
	ArtifactID    *string
}
