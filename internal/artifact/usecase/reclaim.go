package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"vendor-report-srv/internal/artifact/repository"
	"vendor-report-srv/internal/model"
)

// ReclaimExpired deletes every artifact whose expiry has passed.
func (uc *implUseCase) ReclaimExpired(ctx context.Context) (int, error) {
	n, err := uc.reclaim(ctx, "")
	uc.config.Metrics.RecordReclaimed(n)
	return n, err
}

// reclaim sweeps expired artifacts in batches, optionally for one owner only.
func (uc *implUseCase) reclaim(ctx context.Context, ownerID string) (int, error) {
	total := 0
	for {
		batch, err := uc.repo.ListExpired(ctx, repository.ListExpiredOptions{
			OwnerID: ownerID,
			Now:     uc.now(),
			Limit:   uc.config.ReclaimBatch,
		})
		if err != nil {
			uc.l.Errorf(ctx, "artifact.usecase.reclaim: Failed to list expired: %v", err)
			return total, mapRepoError(err)
		}
		if len(batch) == 0 {
			return total, nil
		}

		n := uc.reclaimBatch(ctx, batch)
		total += n
		if len(batch) < uc.config.ReclaimBatch || n == 0 {
			return total, nil
		}
	}
}

func (uc *implUseCase) reclaimBatch(ctx context.Context, batch []model.ReportArtifact) int {
	var reclaimed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.config.ReclaimParallelism)
	for _, a := range batch {
		g.Go(func() error {
			if uc.reclaimOne(gctx, a) {
				reclaimed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(reclaimed.Load())
}

// reclaimOne marks an expired artifact deleted and removes its bytes.
// It reports false when another caller got there first or the update failed.
func (uc *implUseCase) reclaimOne(ctx context.Context, a model.ReportArtifact) bool {
	done, err := uc.repo.MarkDeleted(ctx, repository.MarkDeletedOptions{ID: a.ID, Now: uc.now()})
	if err != nil {
		uc.l.Warnf(ctx, "artifact.usecase.reclaimOne: Failed to mark %s deleted: %v", a.ID, err)
		return false
	}
	if done {
		uc.removeBytes(ctx, a)
	}
	return done
}

// StartReclaimer sweeps once immediately, then on every tick until ctx is cancelled.
func (uc *implUseCase) StartReclaimer(ctx context.Context) {
	ticker := time.NewTicker(uc.config.ReclaimInterval)
	defer ticker.Stop()

	uc.l.Infof(ctx, "artifact.usecase.StartReclaimer: Sweeping every %s", uc.config.ReclaimInterval)
	uc.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			uc.l.Info(ctx, "artifact.usecase.StartReclaimer: Stopped")
			return
		case <-ticker.C:
			uc.sweep(ctx)
		}
	}
}

// sweep runs one reclaim pass while holding the cluster-wide lock.
func (uc *implUseCase) sweep(ctx context.Context) {
	if uc.lock != nil {
		token := uuid.NewString()
		ok, err := uc.lock.AcquireReclaimLock(ctx, token, uc.config.ReclaimInterval)
		if err != nil {
			uc.l.Warnf(ctx, "artifact.usecase.sweep: Lock unavailable: %v", err)
			return
		}
		if !ok {
			uc.l.Debug(ctx, "artifact.usecase.sweep: Another instance holds the lock")
			return
		}
		defer func() {
			_ = uc.lock.ReleaseReclaimLock(context.WithoutCancel(ctx), token)
		}()
	}

	n, err := uc.ReclaimExpired(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "artifact.usecase.sweep: Reclaim failed after %d artifacts: %v", n, err)
		return
	}
	if n > 0 {
		uc.l.Infof(ctx, "artifact.usecase.sweep: Reclaimed %d expired artifacts", n)
	}
}
