package usecase

import (
	"context"

	"github.com/google/uuid"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
)

// Delete soft-deletes the registry row, then removes the bytes. Deleting twice is a no-op.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input artifact.DeleteInput) error {
	if _, err := uuid.Parse(input.ArtifactID); err != nil {
		return artifact.ErrNotFound
	}

	a, err := uc.repo.GetArtifact(ctx, repository.GetArtifactOptions{ID: input.ArtifactID, OwnerID: sc.UserID})
	if err != nil {
		return mapRepoError(err)
	}
	if a.DeletedAt != nil {
		return nil
	}

	done, err := uc.repo.MarkDeleted(ctx, repository.MarkDeletedOptions{ID: a.ID, Now: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "artifact.usecase.Delete: Failed to mark %s deleted: %v", a.ID, err)
		return mapRepoError(err)
	}
	if done {
		uc.removeBytes(ctx, a)
	}
	return nil
}

// removeBytes deletes the object of an artifact already marked deleted.
func (uc *implUseCase) removeBytes(ctx context.Context, a model.ReportArtifact) {
	if err := uc.store.RemoveObject(ctx, a.StorageRef); err != nil {
		uc.l.Errorf(ctx, "artifact.usecase.removeBytes: Failed to remove %s: %v", a.StorageRef, err)
	}
}
