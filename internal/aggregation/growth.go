package aggregation

import "github.com/shopspring/decimal"

// ComputeGrowth compares cur with prev. A zero previous value with a non-zero current
// value yields GrowthUnbounded.
func ComputeGrowth(cur, prev decimal.Decimal) Growth {
	if prev.IsZero() {
		if cur.IsZero() {
			return Growth{Kind: GrowthFinite, Ratio: decimal.Zero}
		}
		return Growth{Kind: GrowthUnbounded}
	}
	return Growth{Kind: GrowthFinite, Ratio: cur.Sub(prev).Div(prev.Abs())}
}
