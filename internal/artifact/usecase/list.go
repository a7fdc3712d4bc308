package usecase

import (
	"context"
	"fmt"

	"vendor-report-srv/internal/artifact"
	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/render"
	"vendor-report-srv/pkg/paginator"
)

// List returns the caller's download history, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input artifact.ListInput) (artifact.ListOutput, error) {
	opts := repository.ListHistoryOptions{
		OwnerID: sc.UserID,
		Type:    input.Type,
		Search:  input.Search,
	}

	if input.Format != "" {
		f, err := render.ParseFormat(input.Format)
		if err != nil {
			return artifact.ListOutput{}, fmt.Errorf("%w: %w", artifact.ErrInvalidInput, err)
		}
		opts.Format = f.String()
	}
	if input.Status != "" {
		if !input.Status.IsValid() {
			return artifact.ListOutput{}, fmt.Errorf("%w: unknown status %q", artifact.ErrInvalidInput, input.Status)
		}
		opts.States = statesOf(input.Status)
	}

	// Expired rows are already hidden by the query, so a failed sweep only delays byte removal.
	if _, err := uc.reclaim(ctx, sc.UserID); err != nil {
		uc.l.Warnf(ctx, "artifact.usecase.List: Lazy reclaim failed: %v", err)
	}

	input.Paginate.Adjust()
	opts.Now = uc.now()
	opts.Limit = input.Paginate.Limit
	opts.Offset = input.Paginate.Offset()

	rows, total, err := uc.repo.ListHistory(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "artifact.usecase.List: Failed to list history: %v", err)
		return artifact.ListOutput{}, mapRepoError(err)
	}

	items := make([]artifact.ListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toListItem(r))
	}

	return artifact.ListOutput{
		Items:     items,
		Paginator: paginator.New(input.Paginate, total, int64(len(items))),
	}, nil
}

func toListItem(r repository.HistoryRow) artifact.ListItem {
	item := artifact.ListItem{
		JobID:         r.JobID,
		Name:          r.Name,
		Type:          r.Type,
		Format:        r.Format,
		Status:        statusOf(r.State),
		FailureCode:   r.FailureCode,
		FailureReason: r.FailureReason,
		CreatedAt:     r.CreatedAt,
	}
	if a := r.Artifact; a != nil {
		generated, expires := a.GeneratedAt, a.ExpiresAt
		item.ArtifactID = a.ID
		item.ByteSize = a.ByteSize
		item.DownloadCount = a.DownloadCount
		item.GeneratedAt = &generated
		item.ExpiresAt = &expires
	}
	return item
}
