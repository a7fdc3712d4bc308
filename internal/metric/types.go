package metric

import "github.com/shopspring/decimal"

// ID identifies a metric in the catalog.
type ID string

const (
	Revenue           ID = "revenue"
	Orders            ID = "orders"
	Customers         ID = "customers"
	Products          ID = "products"
	AverageOrderValue ID = "averageOrderValue"
	ConversionRate    ID = "conversionRate"
)

// Aggregation is the rule used to fold ledger lines into a value.
type Aggregation string

const (
	AggregationSum           Aggregation = "sum"
	AggregationCount         Aggregation = "count"
	AggregationDistinctCount Aggregation = "distinct-count"
	AggregationRatio         Aggregation = "ratio"
	AggregationDerived       Aggregation = "derived"
)

// Unit drives how values are formatted.
type Unit string

const (
	UnitCurrency Unit = "currency"
	UnitInteger  Unit = "integer"
	UnitPercent  Unit = "percent"
)

// Stats are the base quantities of one time window. Every metric value is computed from them.
type Stats struct {
	Revenue      decimal.Decimal
	Orders       int64
	Customers    int64
	Units        int64
	Views        int64
	ViewsTracked bool
}

// Definition describes one metric. Definitions are immutable once registered.
type Definition struct {
	ID          ID
	DisplayName string
	Aggregation Aggregation
	Unit        Unit
	Description string

	compute func(Stats) decimal.Decimal
}

// Value computes the metric for a window. It never divides by zero.
func (d Definition) Value(s Stats) decimal.Decimal {
	if d.compute == nil {
		return decimal.Zero
	}
	return d.compute(s)
}
