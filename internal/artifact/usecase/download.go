package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/minio"
)

// Download reads the bytes of a live artifact owned by the caller and counts the download.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, input artifact.DownloadInput) (artifact.DownloadOutput, error) {
	if _, err := uuid.Parse(input.ArtifactID); err != nil {
		return artifact.DownloadOutput{}, artifact.ErrNotFound
	}

	a, err := uc.repo.GetArtifact(ctx, repository.GetArtifactOptions{ID: input.ArtifactID, OwnerID: sc.UserID})
	if err != nil {
		return artifact.DownloadOutput{}, mapRepoError(err)
	}

	if !a.IsLive(uc.now()) {
		if a.DeletedAt == nil {
			uc.reclaimOne(ctx, a)
		}
		return artifact.DownloadOutput{}, artifact.ErrNotFound
	}

	data, err := uc.store.GetObject(ctx, a.StorageRef)
	if err != nil {
		if minio.IsNotFound(err) {
			uc.l.Errorf(ctx, "artifact.usecase.Download: Bytes missing for live artifact %s", a.ID)
			return artifact.DownloadOutput{}, artifact.ErrNotFound
		}
		uc.l.Errorf(ctx, "artifact.usecase.Download: Failed to read %s: %v", a.StorageRef, err)
		return artifact.DownloadOutput{}, fmt.Errorf("%w: %w", artifact.ErrStorageFailure, err)
	}

	// The same liveness predicate guards the counter, so a delete racing this read wins.
	count, err := uc.repo.IncrementDownload(ctx, repository.IncrementDownloadOptions{
		ID:      a.ID,
		OwnerID: sc.UserID,
		Now:     uc.now(),
	})
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "artifact.usecase.Download: Failed to count download: %v", err)
		}
		return artifact.DownloadOutput{}, mapRepoError(err)
	}

	uc.config.Metrics.RecordDownload(a.Format)
	return artifact.DownloadOutput{
		FileName:      artifact.FileName(a.Name, a.Format),
		ContentType:   a.ContentType,
		Data:          data,
		DownloadCount: count,
	}, nil
}
