package aggregation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"vendor-report-srv/internal/model"
)

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange(model.DateRange{Start: "2024-01-01", End: "2024-01-31"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), to)

	_, _, err = ParseRange(model.DateRange{Start: "2024-02-01", End: "2024-01-31"}, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, _, err = ParseRange(model.DateRange{Start: "01/02/2024", End: "2024-01-31"}, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPartition_Labels(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		g      model.Granularity
		labels []string
	}{
		{"days", "2024-02-27", "2024-03-01", model.GranularityDay, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}},
		{"iso weeks", "2024-01-03", "2024-01-16", model.GranularityWeek, []string{"2024-W01", "2024-W02", "2024-W03"}},
		{"week crossing year", "2024-12-30", "2025-01-06", model.GranularityWeek, []string{"2025-W01", "2025-W02"}},
		{"months", "2024-01-15", "2024-03-02", model.GranularityMonth, []string{"2024-01", "2024-02", "2024-03"}},
		{"quarters", "2024-02-01", "2024-07-01", model.GranularityQuarter, []string{"2024-Q1", "2024-Q2", "2024-Q3"}},
		{"years", "2023-06-01", "2024-01-01", model.GranularityYear, []string{"2023", "2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := ParseRange(model.DateRange{Start: tt.start, End: tt.end}, time.UTC)
			require.NoError(t, err)
			windows, err := Partition(from, to, tt.g)
			require.NoError(t, err)

			var labels []string
			for _, w := range windows {
				labels = append(labels, w.Label)
			}
			assert.Equal(t, tt.labels, labels)
			assert.Equal(t, from, windows[0].Start)
			assert.Equal(t, to, windows[len(windows)-1].End)
		})
	}
}

func TestPartition_WeekStartsMonday(t *testing.T) {
	from := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC) // Wednesday
	windows, err := Partition(from, from.AddDate(0, 0, 14), model.GranularityWeek)
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Equal(t, time.Monday, windows[1].Start.Weekday())
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), windows[0].End)
}

func TestPartition_InvalidGranularity(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := Partition(from, from.AddDate(0, 0, 1), "hour")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPartition_DaylightSavingDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	from, to, err := ParseRange(model.DateRange{Start: "2024-03-09", End: "2024-03-11"}, loc)
	require.NoError(t, err)

	windows, err := Partition(from, to, model.GranularityDay)
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Equal(t, 23*time.Hour, windows[1].End.Sub(windows[1].Start))
	assert.Equal(t, "2024-03-10", windows[1].Label)
}

func TestPartition_CoversRangeWithoutGaps(t *testing.T) {
	grans := []model.Granularity{
		model.GranularityDay, model.GranularityWeek, model.GranularityMonth,
		model.GranularityQuarter, model.GranularityYear,
	}
	zones := []string{"UTC", "America/New_York", "Asia/Ho_Chi_Minh", "Australia/Sydney"}

	rapid.Check(t, func(rt *rapid.T) {
		loc, err := time.LoadLocation(rapid.SampledFrom(zones).Draw(rt, "zone"))
		if err != nil {
			rt.Fatalf("load zone: %v", err)
		}
		base := time.Date(2020, 1, 1, 0, 0, 0, 0, loc)
		from := base.AddDate(0, 0, rapid.IntRange(0, 2000).Draw(rt, "offset"))
		to := from.AddDate(0, 0, rapid.IntRange(1, 800).Draw(rt, "days"))
		g := rapid.SampledFrom(grans).Draw(rt, "granularity")

		windows, err := Partition(from, to, g)
		if err != nil {
			rt.Fatalf("partition: %v", err)
		}
		if !windows[0].Start.Equal(from) {
			rt.Fatalf("first window starts at %v, want %v", windows[0].Start, from)
		}
		if !windows[len(windows)-1].End.Equal(to) {
			rt.Fatalf("last window ends at %v, want %v", windows[len(windows)-1].End, to)
		}
		for i, w := range windows {
			if !w.Start.Before(w.End) {
				rt.Fatalf("window %d is empty: %v", i, w)
			}
			if i > 0 && !windows[i-1].End.Equal(w.Start) {
				rt.Fatalf("gap or overlap between window %d and %d", i-1, i)
			}
		}
	})
}

func TestPreviousRange(t *testing.T) {
	from, to, err := ParseRange(model.DateRange{Start: "2024-03-01", End: "2024-03-31"}, time.UTC)
	require.NoError(t, err)

	prev := PreviousRange(from, to)
	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), prev.Start)
	assert.Equal(t, from, prev.End)
}

func TestComputeGrowth(t *testing.T) {
	g := ComputeGrowth(decimal.NewFromInt(150), decimal.NewFromInt(100))
	assert.Equal(t, GrowthFinite, g.Kind)
	assert.True(t, g.Ratio.Equal(decimal.RequireFromString("0.5")))

	zero := ComputeGrowth(decimal.Zero, decimal.Zero)
	assert.Equal(t, GrowthFinite, zero.Kind)
	assert.True(t, zero.Ratio.IsZero())

	unbounded := ComputeGrowth(decimal.NewFromInt(10), decimal.Zero)
	assert.True(t, unbounded.IsUnbounded())
	assert.NotEqual(t, zero, unbounded)

	drop := ComputeGrowth(decimal.NewFromInt(50), decimal.NewFromInt(100))
	assert.True(t, drop.Ratio.Equal(decimal.RequireFromString("-0.5")))
}
