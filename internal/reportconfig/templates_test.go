package reportconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
)

var now = time.Date(2024, 3, 14, 22, 30, 0, 0, time.UTC)

func TestQuick(t *testing.T) {
	daily, err := Quick(model.ReportTypeDaily, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Daily Report - 14 Mar 2024", daily.Name)
	assert.Equal(t, model.DateRange{Start: "2024-03-14", End: "2024-03-14"}, daily.DateRange)

	weekly, err := Quick(model.ReportTypeWeekly, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Weekly Report - 08 Mar 2024 to 14 Mar 2024", weekly.Name)
	assert.Equal(t, "2024-03-08", weekly.DateRange.Start)

	monthly, err := Quick(model.ReportTypeMonthly, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Monthly Report - March 2024", monthly.Name)
	assert.Equal(t, model.DateRange{Start: "2024-03-01", End: "2024-03-14"}, monthly.DateRange)

	_, err = Quick(model.ReportTypeCustom, now, time.UTC)
	assert.ErrorIs(t, err, ErrUnknownQuickReport)
}

func TestQuick_UsesVendorZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 22:30 UTC is already the next day in India
	daily, err := Quick(model.ReportTypeDaily, now, loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", daily.DateRange.Start)
}

func TestTemplates_AreValid(t *testing.T) {
	templates := Templates(now, time.UTC)
	require.Len(t, templates, 6)

	names := []string{}
	for _, cfg := range templates {
		names = append(names, cfg.Name)
		assert.NoError(t, Validate(&cfg, metric.Builtin(), time.UTC), cfg.Name)
	}
	assert.Contains(t, names, "Monthly Sales Summary")
	assert.Contains(t, names, "Product Performance")
	assert.Contains(t, names, "Customer Analysis")

	sales := templates[3]
	assert.Equal(t, model.GranularityMonth, sales.GroupBy)
	assert.Equal(t, "2023-04-01", sales.DateRange.Start)
}
