package model

import "time"

// ReportArtifact is the registry entry for a generated document.
type ReportArtifact struct {
	ID            string
	JobID         string
	OwnerID       string
	Name          string
	Format        string
	ByteSize      int64
	StorageRef    string
	ContentType   string
	GeneratedAt   time.Time
	ExpiresAt     time.Time
	DownloadCount int64
	DeletedAt     *time.Time
}

// IsLive reports whether the artifact is neither deleted nor expired at now.
func (a ReportArtifact) IsLive(now time.Time) bool {
	return a.DeletedAt == nil && now.Before(a.ExpiresAt)
}
