package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/aggregation/repository"
	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
)

// Aggregate computes bucketed metric values, whole-period totals and growth against the
// previous period of equal length.
func (uc *implUseCase) Aggregate(ctx context.Context, input aggregation.AggregateInput) (aggregation.Result, error) {
	loc := input.Location
	if loc == nil {
		loc = uc.config.Location
	}

	defs, err := uc.catalog.Validate(input.Metrics)
	if err != nil {
		return aggregation.Result{}, fmt.Errorf("%w: %w", aggregation.ErrInvalidInput, err)
	}

	from, to, err := aggregation.ParseRange(input.DateRange, loc)
	if err != nil {
		return aggregation.Result{}, err
	}

	windows, err := aggregation.Partition(from, to, input.GroupBy)
	if err != nil {
		return aggregation.Result{}, err
	}
	prev := aggregation.PreviousRange(from, to)

	src, err := uc.fetch(ctx, input, defs, from, to, prev)
	if err != nil {
		return aggregation.Result{}, err
	}

	buckets := make([]aggregation.Bucket, len(windows))
	for i, w := range windows {
		stats := windowStats(src.current, w, src.views, src.trackViews)
		buckets[i] = aggregation.Bucket{
			Window:       w,
			Values:       values(defs, stats),
			ViewsTracked: stats.ViewsTracked,
		}
	}

	period := aggregation.Window{Start: from, End: to}
	totals := values(defs, windowStats(src.current, period, src.views, src.trackViews))
	previous := values(defs, windowStats(src.previous, prev, src.views, src.trackViews))

	summaries := make([]aggregation.Summary, len(defs))
	for i, d := range defs {
		summaries[i] = aggregation.Summary{
			Metric:   d,
			Total:    totals[d.ID],
			Previous: previous[d.ID],
			Growth:   aggregation.ComputeGrowth(totals[d.ID], previous[d.ID]),
		}
	}

	return aggregation.Result{
		Period:         period,
		PreviousPeriod: prev,
		Metrics:        defs,
		Buckets:        buckets,
		Summaries:      summaries,
		TopProducts:    topProducts(src.current, period, aggregation.TopProductsLimit),
	}, nil
}

type sources struct {
	current    []model.LedgerLine
	previous   []model.LedgerLine
	views      []model.ViewSlot
	trackViews bool
}

// fetch reads current lines, previous lines and view counters concurrently.
func (uc *implUseCase) fetch(
	ctx context.Context,
	input aggregation.AggregateInput,
	defs []metric.Definition,
	from, to time.Time,
	prev aggregation.Window,
) (sources, error) {
	var src sources
	src.trackViews = needsViews(defs)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lines, err := uc.ledger.ListLines(gctx, linesOptions(input, from, to))
		src.current = lines
		return err
	})
	g.Go(func() error {
		lines, err := uc.ledger.ListLines(gctx, linesOptions(input, prev.Start, prev.End))
		src.previous = lines
		return err
	})
	if src.trackViews {
		g.Go(func() error {
			views, err := uc.views.GetViews(gctx, repository.GetViewsOptions{
				VendorID: input.OwnerID,
				From:     prev.Start,
				To:       to,
			})
			src.views = views
			return err
		})
	}

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "aggregation.usecase.Aggregate: Failed to read sources: %v", err)
		return sources{}, fmt.Errorf("%w: %w", aggregation.ErrSourceUnavailable, err)
	}
	return src, nil
}

func linesOptions(input aggregation.AggregateInput, from, to time.Time) repository.ListLinesOptions {
	return repository.ListLinesOptions{
		VendorID:  input.OwnerID,
		From:      from,
		To:        to,
		Statuses:  input.Filters.Statuses,
		Category:  input.Filters.Category,
		MinAmount: input.Filters.MinAmount,
		MaxAmount: input.Filters.MaxAmount,
	}
}

func needsViews(defs []metric.Definition) bool {
	for _, d := range defs {
		if d.ID == metric.ConversionRate {
			return true
		}
	}
	return false
}

func values(defs []metric.Definition, s metric.Stats) map[metric.ID]decimal.Decimal {
	out := make(map[metric.ID]decimal.Decimal, len(defs))
	for _, d := range defs {
		out[d.ID] = d.Value(s)
	}
	return out
}
