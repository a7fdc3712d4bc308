package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"vendor-report-srv/internal/aggregation/repository"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/util"
)

// slotFieldFormat names a slot inside its UTC day hash.
const slotFieldFormat = "15:04"

// viewsKey - One hash per vendor and UTC day, one field per slot.
func viewsKey(vendorID string, day time.Time) string {
	return fmt.Sprintf("%s:%s:%s", viewsKeyPrefix, vendorID, day.Format(util.DateFormat))
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetViews - Read every UTC day hash overlapping the range in one pipeline.
func (r *implRepository) GetViews(ctx context.Context, opts repository.GetViewsOptions) ([]model.ViewSlot, error) {
	if !opts.From.Before(opts.To) {
		return nil, nil
	}

	var days []time.Time
	for d := utcDay(opts.From); d.Before(opts.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = viewsKey(opts.VendorID, d)
	}

	hashes, err := r.redis.HGetAllMany(ctx, keys...)
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.redis.GetViews: Failed to read counters: %v", err)
		return nil, repository.ErrViewsReadFailed
	}

	var out []model.ViewSlot
	for i, h := range hashes {
		for field, val := range h {
			clock, err := time.Parse(slotFieldFormat, field)
			if err != nil {
				r.l.Warnf(ctx, "aggregation.repository.redis.GetViews: Skipping malformed slot %s %s: %v", keys[i], field, err)
				continue
			}
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				r.l.Warnf(ctx, "aggregation.repository.redis.GetViews: Skipping malformed counter %s %s: %v", keys[i], field, err)
				continue
			}
			at := days[i].Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
			if at.Before(opts.From) || !at.Before(opts.To) {
				continue
			}
			out = append(out, model.ViewSlot{At: at, Count: n})
		}
	}

	sort.Slice(out, func(a, b int) bool { return out[a].At.Before(out[b].At) })
	return out, nil
}

// IncrementViews - Add Count to the slot holding At and refresh the day's TTL.
func (r *implRepository) IncrementViews(ctx context.Context, opts repository.IncrementViewsOptions) (int64, error) {
	at := opts.At.UTC().Truncate(model.ViewSlotWidth)
	key := viewsKey(opts.VendorID, at)

	n, err := r.redis.HIncrBy(ctx, key, at.Format(slotFieldFormat), opts.Count)
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.redis.IncrementViews: Failed to increment %s: %v", key, err)
		return 0, repository.ErrViewsWriteFailed
	}

	if opts.TTL > 0 {
		if err := r.redis.Expire(ctx, key, opts.TTL); err != nil {
			r.l.Warnf(ctx, "aggregation.repository.redis.IncrementViews: Failed to set ttl on %s: %v", key, err)
		}
	}

	return n, nil
}
