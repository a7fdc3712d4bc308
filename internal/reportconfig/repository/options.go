package repository

import "vendor-report-srv/internal/model"

type CreateOptions struct {
	Configuration model.ReportConfiguration
}

// UpdateOptions replaces the stored configuration with the same ID and owner.
type UpdateOptions struct {
	Configuration model.ReportConfiguration
}

type GetOptions struct {
	ID      string
	OwnerID string
}

type ListOptions struct {
	OwnerID string
	Offset  int64
	Limit   int64
}

type DeleteOptions struct {
	ID      string
	OwnerID string
}
