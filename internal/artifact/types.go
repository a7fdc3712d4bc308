package artifact

import (
	"time"

	"vendor-report-srv/internal/render"
	"vendor-report-srv/pkg/paginator"
)

// Status is the download-history view of a job.
type Status string

const (
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
	StatusFailed     Status = "failed"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusGenerating || s == StatusReady || s == StatusFailed
}

type PersistInput struct {
	JobID   string
	OwnerID string
	Name    string
	Format  render.Format
	Data    []byte
}

// ListInput filters the caller's download history. Empty fields match everything.
type ListInput struct {
	Type     string
	Format   string
	Status   Status
	Search   string
	Paginate paginator.PaginateQuery
}

// ListItem is one job with its artifact, if any.
type ListItem struct {
	JobID         string
	ArtifactID    string
	Name          string
	Type          string
	Format        string
	Status        Status
	FailureCode   string
	FailureReason string
	ByteSize      int64
	DownloadCount int64
	CreatedAt     time.Time
	GeneratedAt   *time.Time
	ExpiresAt     *time.Time
}

type ListOutput struct {
	Items     []ListItem
	Paginator paginator.Paginator
}

type DownloadInput struct {
	ArtifactID string
}

type DownloadOutput struct {
	FileName      string
	ContentType   string
	Data          []byte
	DownloadCount int64
}

type DeleteInput struct {
	ArtifactID string
}
