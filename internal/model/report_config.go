package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType classifies where a configuration came from.
type ReportType string

const (
	ReportTypeCustom   ReportType = "custom"
	ReportTypeDaily    ReportType = "daily"
	ReportTypeWeekly   ReportType = "weekly"
	ReportTypeMonthly  ReportType = "monthly"
	ReportTypeTemplate ReportType = "template"
)

// IsValid reports whether t is a known report type.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeCustom, ReportTypeDaily, ReportTypeWeekly, ReportTypeMonthly, ReportTypeTemplate:
		return true
	}
	return false
}

// Granularity is the bucket size used to group metrics over time.
type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// IsValid reports whether g is a known granularity.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityQuarter, GranularityYear:
		return true
	}
	return false
}

// DateRange holds inclusive calendar dates formatted as 2006-01-02.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Filters narrow the ledger lines a report reads. All set filters must match.
type Filters struct {
	Category  string           `json:"category,omitempty"`
	Statuses  []string         `json:"statuses,omitempty"`
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
}

// ReportConfiguration is a declarative report request. Jobs keep a frozen copy.
type ReportConfiguration struct {
	ID        string      `json:"id,omitempty"`
	OwnerID   string      `json:"owner_id,omitempty"`
	Name      string      `json:"name"`
	Type      ReportType  `json:"type"`
	DateRange DateRange   `json:"date_range"`
	Metrics   []string    `json:"metrics"`
	GroupBy   Granularity `json:"group_by"`
	Filters   Filters     `json:"filters"`
	Format    string      `json:"format"`
	Timezone  string      `json:"timezone,omitempty"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
	UpdatedAt time.Time   `json:"updated_at,omitempty"`
}

// Clone returns a deep copy, so later edits never reach a job's frozen copy.
func (c ReportConfiguration) Clone() ReportConfiguration {
	out := c
	out.Metrics = append([]string(nil), c.Metrics...)
	out.Filters.Statuses = append([]string(nil), c.Filters.Statuses...)
	if c.Filters.MinAmount != nil {
		v := *c.Filters.MinAmount
		out.Filters.MinAmount = &v
	}
	if c.Filters.MaxAmount != nil {
		v := *c.Filters.MaxAmount
		out.Filters.MaxAmount = &v
	}
	return out
}
