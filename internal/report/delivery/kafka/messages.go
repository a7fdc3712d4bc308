package kafka

import "time"

// Headers set on every lifecycle event so consumers can route without decoding.
const (
	HeaderEventType   = "event-type"
	HeaderContentType = "content-type"
)

// JobEventMessage - Kafka message for report.job.* lifecycle events
type JobEventMessage struct {
	EventType   string    `json:"event_type"`
	JobID       string    `json:"job_id"`
	OwnerID     string    `json:"owner_id"`
	State       string    `json:"state"`
	FailureCode string    `json:"failure_code,omitempty"`
	ArtifactID  string    `json:"artifact_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
