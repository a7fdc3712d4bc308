package artifact

import (
	"context"

	"vendor-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Persist stores the bytes and registers the artifact. Nothing is left behind on failure.
	Persist(ctx context.Context, input PersistInput) (model.ReportArtifact, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Download(ctx context.Context, sc model.Scope, input DownloadInput) (DownloadOutput, error)
	// Delete is idempotent for the owner.
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
	// ReclaimExpired deletes every expired artifact and returns how many were reclaimed.
	ReclaimExpired(ctx context.Context) (int, error)
	// StartReclaimer sweeps on an interval until ctx is cancelled.
	StartReclaimer(ctx context.Context)
}
