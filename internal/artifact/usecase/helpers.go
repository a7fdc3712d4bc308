package usecase

import (
	"errors"
	"fmt"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
)

func storageKey(ownerID, jobID, ext string) string {
	return fmt.Sprintf("artifacts/%s/%s.%s", ownerID, jobID, ext)
}

func statusOf(state model.JobState) artifact.Status {
	switch state {
	case model.JobStateReady:
		return artifact.StatusReady
	case model.JobStateFailed:
		return artifact.StatusFailed
	}
	return artifact.StatusGenerating
}

func statesOf(s artifact.Status) []string {
	switch s {
	case artifact.StatusGenerating:
		return []string{string(model.JobStatePending), string(model.JobStateGenerating)}
	case artifact.StatusReady:
		return []string{string(model.JobStateReady)}
	case artifact.StatusFailed:
		return []string{string(model.JobStateFailed)}
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return artifact.ErrNotFound
	}
	return fmt.Errorf("%w: %w", artifact.ErrStorageFailure, err)
}
