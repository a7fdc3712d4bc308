package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/metric"
)

var hundred = decimal.NewFromInt(100)

const unknownProduct = "Unknown Product"

// Meta describes the document around the numbers.
type Meta struct {
	Title       string
	VendorName  string
	GroupBy     string
	GeneratedAt time.Time
}

// Cell is one table value. Numeric cells keep the value so spreadsheets can store numbers.
type Cell struct {
	Text    string
	Value   decimal.Decimal
	Unit    metric.Unit
	Numeric bool
}

// Table is the format-agnostic layout shared by every encoder.
type Table struct {
	Title         string
	Subtitle      []string
	Header        []string
	Rows          [][]Cell
	SummaryHeader []string
	Summary       [][]Cell
	// TopHeader and TopProducts are empty when the period had no sales.
	TopHeader   []string
	TopProducts [][]Cell
	Footer      string
}

// BuildTable lays out a result: one row per metric with a column per bucket, followed by
// a summary block holding whole-period totals, previous-period values and growth, and
// the best selling products of the period.
func BuildTable(meta Meta, res aggregation.Result) Table {
	t := Table{
		Title:         meta.Title,
		SummaryHeader: []string{"Metric", "Total", "Previous", "Growth"},
	}

	lastDay := res.Period.End.AddDate(0, 0, -1)
	t.Subtitle = append(t.Subtitle, fmt.Sprintf("Period: %s to %s",
		res.Period.Start.Format("02 Jan 2006"), lastDay.Format("02 Jan 2006")))
	if meta.VendorName != "" {
		t.Subtitle = append(t.Subtitle, "Vendor: "+meta.VendorName)
	}
	if meta.GroupBy != "" {
		t.Subtitle = append(t.Subtitle, "Grouped by: "+meta.GroupBy)
	}

	t.Header = make([]string, 0, len(res.Buckets)+1)
	t.Header = append(t.Header, "Metric")
	for _, b := range res.Buckets {
		t.Header = append(t.Header, b.Label)
	}

	for _, d := range res.Metrics {
		row := make([]Cell, 0, len(res.Buckets)+1)
		row = append(row, Cell{Text: d.DisplayName})
		for _, b := range res.Buckets {
			row = append(row, NumberCell(b.Values[d.ID], d.Unit))
		}
		t.Rows = append(t.Rows, row)
	}

	for _, s := range res.Summaries {
		t.Summary = append(t.Summary, []Cell{
			{Text: s.Metric.DisplayName},
			NumberCell(s.Total, s.Metric.Unit),
			NumberCell(s.Previous, s.Metric.Unit),
			{Text: FormatGrowth(s.Growth)},
		})
	}

	if len(res.TopProducts) > 0 {
		t.TopHeader = []string{"Rank", "Product", "Units Sold", "Revenue"}
	}
	for i, p := range res.TopProducts {
		name := p.Name
		if name == "" {
			name = unknownProduct
		}
		t.TopProducts = append(t.TopProducts, []Cell{
			{Text: strconv.Itoa(i + 1)},
			{Text: name},
			NumberCell(decimal.NewFromInt(p.Units), metric.UnitInteger),
			NumberCell(p.Revenue, metric.UnitCurrency),
		})
	}

	if !meta.GeneratedAt.IsZero() {
		t.Footer = "Generated on " + meta.GeneratedAt.Format("02 Jan 2006 15:04 MST")
	}
	return t
}

// NumberCell formats v according to unit.
func NumberCell(v decimal.Decimal, unit metric.Unit) Cell {
	return Cell{Text: FormatValue(v, unit), Value: v, Unit: unit, Numeric: true}
}

// FormatValue renders currency with two decimals, integers without decimals and
// percentages with one decimal.
func FormatValue(v decimal.Decimal, unit metric.Unit) string {
	switch unit {
	case metric.UnitCurrency:
		return v.StringFixed(2)
	case metric.UnitPercent:
		return v.StringFixed(1) + "%"
	default:
		return v.StringFixed(0)
	}
}

// FormatGrowth renders a growth ratio as a signed percentage, or "new" when unbounded.
func FormatGrowth(g aggregation.Growth) string {
	if g.IsUnbounded() {
		return "new"
	}
	pct := g.Ratio.Mul(hundred).Round(1)
	s := pct.StringFixed(1) + "%"
	if pct.IsPositive() {
		return "+" + s
	}
	return s
}

// texts returns every string in the table, in document order.
func (t Table) texts() []string {
	out := []string{t.Title, t.Footer}
	out = append(out, t.Subtitle...)
	out = append(out, t.Header...)
	out = append(out, t.SummaryHeader...)
	out = append(out, t.TopHeader...)
	for _, rows := range [][][]Cell{t.Rows, t.Summary, t.TopProducts} {
		for _, r := range rows {
			for _, c := range r {
				out = append(out, c.Text)
			}
		}
	}
	return out
}
