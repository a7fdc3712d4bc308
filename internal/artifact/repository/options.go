package repository

import "time"

type CreateArtifactOptions struct {
	ID          string
	JobID       string
	OwnerID     string
	Name        string
	Format      string
	ByteSize    int64
	StorageRef  string
	ContentType string
	GeneratedAt time.Time
	ExpiresAt   time.Time
}

type GetArtifactOptions struct {
	ID      string
	OwnerID string
}

type IncrementDownloadOptions struct {
	ID      string
	OwnerID string
	Now     time.Time
}

type MarkDeletedOptions struct {
	ID  string
	Now time.Time
}

// ListExpiredOptions selects artifacts with expires_at <= Now. OwnerID is optional.
type ListExpiredOptions struct {
	OwnerID string
	Now     time.Time
	Limit   int
}

type ListHistoryOptions struct {
	OwnerID string
	Type    string
	Format  string
	States  []string
	Search  string
	Now     time.Time
	Offset  int64
	Limit   int64
}
