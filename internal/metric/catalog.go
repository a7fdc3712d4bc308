package metric

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Catalog is a read-only registry of metric definitions.
type Catalog struct {
	order []ID
	defs  map[ID]Definition
}

// NewCatalog builds a catalog from defs, keeping their order.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{defs: make(map[ID]Definition, len(defs))}
	for _, d := range defs {
		if _, ok := c.defs[d.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCatalog, d.ID)
		}
		c.defs[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c, nil
}

// Get returns the definition for id.
func (c *Catalog) Get(id ID) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// All returns every definition in registration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// Validate checks a requested metric list and returns the resolved definitions in request order.
func (c *Catalog) Validate(ids []string) ([]Definition, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyMetrics
	}
	seen := make(map[ID]struct{}, len(ids))
	out := make([]Definition, 0, len(ids))
	for _, raw := range ids {
		id := ID(raw)
		d, ok := c.defs[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, raw)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMetric, raw)
		}
		seen[id] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

// Builtin returns the vendor sales catalog.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinDefinitions()...)
	if err != nil {
		panic(err)
	}
	return c
}

func builtinDefinitions() []Definition {
	return []Definition{
		{
			ID:          Revenue,
			DisplayName: "Revenue",
			Aggregation: AggregationSum,
			Unit:        UnitCurrency,
			Description: "Sum of the vendor's line revenue",
			compute:     func(s Stats) decimal.Decimal { return s.Revenue },
		},
		{
			ID:          Orders,
			DisplayName: "Orders",
			Aggregation: AggregationDistinctCount,
			Unit:        UnitInteger,
			Description: "Distinct orders containing at least one vendor line",
			compute:     func(s Stats) decimal.Decimal { return decimal.NewFromInt(s.Orders) },
		},
		{
			ID:          Customers,
			DisplayName: "Customers",
			Aggregation: AggregationDistinctCount,
			Unit:        UnitInteger,
			Description: "Distinct buyers",
			compute:     func(s Stats) decimal.Decimal { return decimal.NewFromInt(s.Customers) },
		},
		{
			ID:          Products,
			DisplayName: "Products Sold",
			Aggregation: AggregationSum,
			Unit:        UnitInteger,
			Description: "Total quantity of vendor products sold",
			compute:     func(s Stats) decimal.Decimal { return decimal.NewFromInt(s.Units) },
		},
		{
			ID:          AverageOrderValue,
			DisplayName: "Average Order Value",
			Aggregation: AggregationDerived,
			Unit:        UnitCurrency,
			Description: "Revenue divided by orders",
			compute: func(s Stats) decimal.Decimal {
				if s.Orders == 0 {
					return decimal.Zero
				}
				return s.Revenue.Div(decimal.NewFromInt(s.Orders))
			},
		},
		{
			ID:          ConversionRate,
			DisplayName: "Conversion Rate",
			Aggregation: AggregationRatio,
			Unit:        UnitPercent,
			Description: "Orders per product view, as a percentage",
			compute: func(s Stats) decimal.Decimal {
				if !s.ViewsTracked || s.Views == 0 {
					return decimal.Zero
				}
				return decimal.NewFromInt(s.Orders).Mul(hundred).Div(decimal.NewFromInt(s.Views))
			},
		},
	}
}
