package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
)

// Persist uploads the document, then registers it. A failed insert removes the object again.
func (uc *implUseCase) Persist(ctx context.Context, input artifact.PersistInput) (model.ReportArtifact, error) {
	if input.JobID == "" || input.OwnerID == "" || !input.Format.IsValid() {
		return model.ReportArtifact{}, artifact.ErrInvalidInput
	}

	key := storageKey(input.OwnerID, input.JobID, input.Format.Extension())
	contentType := input.Format.ContentType()

	if _, err := uc.store.PutObject(ctx, key, input.Data, contentType); err != nil {
		uc.l.Errorf(ctx, "artifact.usecase.Persist: Failed to upload %s: %v", key, err)
		return model.ReportArtifact{}, fmt.Errorf("%w: %w", artifact.ErrStorageFailure, err)
	}

	now := uc.now()
	a, err := uc.repo.CreateArtifact(ctx, repository.CreateArtifactOptions{
		ID:          uuid.NewString(),
		JobID:       input.JobID,
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Format:      input.Format.String(),
		ByteSize:    int64(len(input.Data)),
		StorageRef:  key,
		ContentType: contentType,
		GeneratedAt: now,
		ExpiresAt:   now.Add(uc.config.Retention),
	})
	if err != nil {
		uc.l.Errorf(ctx, "artifact.usecase.Persist: Failed to register %s: %v", key, err)
		uc.compensate(ctx, key)
		return model.ReportArtifact{}, fmt.Errorf("%w: %w", artifact.ErrStorageFailure, err)
	}

	uc.config.Metrics.RecordArtifact(a.Format, a.ByteSize)
	return a, nil
}

// compensate removes an uploaded object that never got a registry row.
func (uc *implUseCase) compensate(ctx context.Context, key string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	if err := uc.store.RemoveObject(cctx, key); err != nil {
		uc.l.Errorf(ctx, "artifact.usecase.compensate: Failed to remove orphan %s: %v", key, err)
	}
}
