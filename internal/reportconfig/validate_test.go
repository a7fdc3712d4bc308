package reportconfig

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
)

func validConfig() model.ReportConfiguration {
	return model.ReportConfiguration{
		Name:      "  January sales ",
		DateRange: model.DateRange{Start: "2024-01-01", End: "2024-01-31"},
		Metrics:   []string{"revenue", "orders"},
		Format:    "Excel",
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	require.NoError(t, Validate(&cfg, metric.Builtin(), loc))
	assert.Equal(t, "January sales", cfg.Name)
	assert.Equal(t, model.ReportTypeCustom, cfg.Type)
	assert.Equal(t, model.GranularityDay, cfg.GroupBy)
	assert.Equal(t, "xlsx", cfg.Format)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
}

func TestValidate_Errors(t *testing.T) {
	hi := decimal.NewFromInt(5)
	lo := decimal.NewFromInt(50)
	neg := decimal.NewFromInt(-1)

	tests := []struct {
		name   string
		mutate func(*model.ReportConfiguration)
		want   error
	}{
		{"empty metrics", func(c *model.ReportConfiguration) { c.Metrics = nil }, ErrInvalidConfiguration},
		{"unknown metric", func(c *model.ReportConfiguration) { c.Metrics = []string{"profit"} }, ErrInvalidConfiguration},
		{"duplicate metric", func(c *model.ReportConfiguration) { c.Metrics = []string{"orders", "orders"} }, ErrInvalidConfiguration},
		{"blank name", func(c *model.ReportConfiguration) { c.Name = "   " }, ErrInvalidConfiguration},
		{"bad type", func(c *model.ReportConfiguration) { c.Type = "hourly" }, ErrInvalidConfiguration},
		{"bad group by", func(c *model.ReportConfiguration) { c.GroupBy = "hour" }, ErrInvalidConfiguration},
		{"bad format", func(c *model.ReportConfiguration) { c.Format = "docx" }, ErrInvalidConfiguration},
		{"bad timezone", func(c *model.ReportConfiguration) { c.Timezone = "Mars/Olympus" }, ErrInvalidConfiguration},
		{"reversed range", func(c *model.ReportConfiguration) {
			c.DateRange = model.DateRange{Start: "2024-02-01", End: "2024-01-01"}
		}, ErrInvalidRange},
		{"malformed date", func(c *model.ReportConfiguration) { c.DateRange.End = "31/01/2024" }, ErrInvalidRange},
		{"min above max", func(c *model.ReportConfiguration) { c.Filters.MinAmount, c.Filters.MaxAmount = &lo, &hi }, ErrInvalidConfiguration},
		{"negative amount", func(c *model.ReportConfiguration) { c.Filters.MinAmount = &neg }, ErrInvalidConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, Validate(&cfg, metric.Builtin(), nil), tt.want)
		})
	}
}

func TestValidate_SingleDay(t *testing.T) {
	cfg := validConfig()
	cfg.DateRange = model.DateRange{Start: "2024-03-10", End: "2024-03-10"}
	cfg.Filters.Statuses = []string{" delivered ", ""}
	require.NoError(t, Validate(&cfg, metric.Builtin(), nil))
	assert.Equal(t, []string{"delivered"}, cfg.Filters.Statuses)
}
