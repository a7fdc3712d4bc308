package metric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuiltin_AllInOrder(t *testing.T) {
	c := Builtin()
	var ids []ID
	for _, d := range c.All() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []ID{Revenue, Orders, Customers, Products, AverageOrderValue, ConversionRate}, ids)

	d, ok := c.Get(ConversionRate)
	require.True(t, ok)
	assert.Equal(t, AggregationRatio, d.Aggregation)
	assert.Equal(t, UnitPercent, d.Unit)

	_, ok = c.Get("bounceRate")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	c := Builtin()

	defs, err := c.Validate([]string{"orders", "revenue"})
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, Orders, defs[0].ID)

	_, err = c.Validate(nil)
	assert.ErrorIs(t, err, ErrEmptyMetrics)

	_, err = c.Validate([]string{"revenue", "bounceRate"})
	assert.ErrorIs(t, err, ErrUnknownMetric)

	_, err = c.Validate([]string{"revenue", "revenue"})
	assert.ErrorIs(t, err, ErrDuplicateMetric)
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(Definition{ID: Revenue}, Definition{ID: Revenue})
	assert.ErrorIs(t, err, ErrDuplicateCatalog)
}

func TestDerivedValues(t *testing.T) {
	c := Builtin()
	aov, _ := c.Get(AverageOrderValue)
	conv, _ := c.Get(ConversionRate)

	s := Stats{Revenue: decimal.NewFromInt(150), Orders: 3, Views: 60, ViewsTracked: true}
	assert.True(t, aov.Value(s).Equal(decimal.NewFromInt(50)))
	assert.True(t, conv.Value(s).Equal(decimal.NewFromInt(5)))

	untracked := s
	untracked.ViewsTracked = false
	assert.True(t, conv.Value(untracked).IsZero())
}

func TestDerivedValues_NeverDivideByZero(t *testing.T) {
	c := Builtin()
	rapid.Check(t, func(rt *rapid.T) {
		s := Stats{
			Revenue:      decimal.NewFromInt(rapid.Int64Range(0, 1_000_000).Draw(rt, "revenue")),
			Orders:       rapid.Int64Range(0, 3).Draw(rt, "orders"),
			Customers:    rapid.Int64Range(0, 3).Draw(rt, "customers"),
			Units:        rapid.Int64Range(0, 10).Draw(rt, "units"),
			Views:        rapid.Int64Range(0, 3).Draw(rt, "views"),
			ViewsTracked: rapid.Bool().Draw(rt, "tracked"),
		}
		for _, d := range c.All() {
			v := d.Value(s)
			if v.IsNegative() {
				rt.Fatalf("%s produced negative value %s", d.ID, v)
			}
		}
		if s.Orders == 0 {
			aov, _ := c.Get(AverageOrderValue)
			if !aov.Value(s).IsZero() {
				rt.Fatalf("average order value must be 0 without orders")
			}
		}
		if s.Views == 0 {
			conv, _ := c.Get(ConversionRate)
			if !conv.Value(s).IsZero() {
				rt.Fatalf("conversion rate must be 0 without views")
			}
		}
	})
}
