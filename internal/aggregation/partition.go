package aggregation

import (
	"fmt"
	"time"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/util"
)

// ParseRange resolves inclusive calendar dates to the half-open instant range
// [start 00:00, end+1d 00:00) in loc.
func ParseRange(r model.DateRange, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := util.StrToDate(r.Start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date %q", ErrInvalidInput, r.Start)
	}
	end, err := util.StrToDate(r.End, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date %q", ErrInvalidInput, r.End)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end.AddDate(0, 0, 1), nil
}

// Partition splits [from, to) into contiguous, non-overlapping windows of granularity g.
// The first window starts at from and the last one ends at to, even when that cuts a
// week, month, quarter or year short.
func Partition(from, to time.Time, g model.Granularity) ([]Window, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: group by %q", ErrInvalidInput, g)
	}
	if !from.Before(to) {
		return nil, ErrInvalidRange
	}

	var out []Window
	for cur := from; cur.Before(to); {
		next := nextBoundary(cur, g)
		if next.After(to) {
			next = to
		}
		out = append(out, Window{Label: label(cur, g), Start: cur, End: next})
		cur = next
	}
	return out, nil
}

// PreviousRange returns the window of equal length in days that ends right before from.
func PreviousRange(from, to time.Time) Window {
	days := util.DaysInclusive(from, to.AddDate(0, 0, -1))
	return Window{Start: from.AddDate(0, 0, -days), End: from}
}

func nextBoundary(t time.Time, g model.Granularity) time.Time {
	loc := t.Location()
	y, m, d := t.Date()
	switch g {
	case model.GranularityWeek:
		// ISO weeks start on Monday.
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset+7, 0, 0, 0, 0, loc)
	case model.GranularityMonth:
		return time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
	case model.GranularityQuarter:
		q := util.Quarter(t)
		return time.Date(y, time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
	case model.GranularityYear:
		return time.Date(y+1, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	}
}

func label(t time.Time, g model.Granularity) string {
	switch g {
	case model.GranularityWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case model.GranularityMonth:
		return t.Format("2006-01")
	case model.GranularityQuarter:
		return fmt.Sprintf("%04d-Q%d", t.Year(), util.Quarter(t))
	case model.GranularityYear:
		return t.Format("2006")
	default:
		return t.Format(util.DateFormat)
	}
}
