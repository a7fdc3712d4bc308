package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
)

type AggregateInput struct {
	OwnerID   string
	DateRange model.DateRange
	Metrics   []string
	GroupBy   model.Granularity
	Filters   model.Filters
	Location  *time.Location
}

// Window is a half-open time interval [Start, End).
type Window struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Bucket holds metric values for one window of the period.
type Bucket struct {
	Window
	Values       map[metric.ID]decimal.Decimal
	ViewsTracked bool
}

type GrowthKind int

const (
	// GrowthFinite carries a ratio in Growth.Ratio.
	GrowthFinite GrowthKind = iota
	// GrowthUnbounded means the previous value was zero and the current one is not.
	GrowthUnbounded
)

// Growth compares a metric with the previous period.
type Growth struct {
	Kind  GrowthKind
	Ratio decimal.Decimal
}

// IsUnbounded reports whether growth has no finite ratio.
func (g Growth) IsUnbounded() bool {
	return g.Kind == GrowthUnbounded
}

// Summary holds whole-period figures of one metric.
type Summary struct {
	Metric   metric.Definition
	Total    decimal.Decimal
	Previous decimal.Decimal
	Growth   Growth
}

// TopProductsLimit caps Result.TopProducts.
const TopProductsLimit = 10

// ProductSales is one product's share of the period, ranked by revenue.
type ProductSales struct {
	ProductID string
	Name      string
	Units     int64
	Revenue   decimal.Decimal
}

type Result struct {
	Period         Window
	PreviousPeriod Window
	Metrics        []metric.Definition
	Buckets        []Bucket
	Summaries      []Summary
	TopProducts    []ProductSales
}

type RecordViewInput struct {
	VendorID  string
	ProductID string
	ViewedAt  time.Time
	Count     int64
}
