package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"vendor-report-srv/internal/aggregation"
	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
)

// windowStats folds the lines inside w into base stats. Orders and customers are
// counted once per window no matter how many lines they have.
func windowStats(lines []model.LedgerLine, w aggregation.Window, views []model.ViewSlot, trackViews bool) metric.Stats {
	s := metric.Stats{Revenue: decimal.Zero}
	orders := map[string]struct{}{}
	customers := map[string]struct{}{}

	for _, line := range lines {
		if !w.Contains(line.CreatedAt) {
			continue
		}
		s.Revenue = s.Revenue.Add(line.Revenue())
		s.Units += line.Quantity
		orders[line.OrderID] = struct{}{}
		customers[line.CustomerID] = struct{}{}
	}
	s.Orders = int64(len(orders))
	s.Customers = int64(len(customers))

	if trackViews {
		// views is sorted by At; slots never straddle a window edge.
		i := sort.Search(len(views), func(i int) bool { return !views[i].At.Before(w.Start) })
		for ; i < len(views) && views[i].At.Before(w.End); i++ {
			s.Views += views[i].Count
			s.ViewsTracked = true
		}
	}
	return s
}

// topProducts ranks products in w by revenue, then units, then name.
func topProducts(lines []model.LedgerLine, w aggregation.Window, limit int) []aggregation.ProductSales {
	byID := map[string]*aggregation.ProductSales{}
	for _, line := range lines {
		if !w.Contains(line.CreatedAt) {
			continue
		}
		p, ok := byID[line.ProductID]
		if !ok {
			p = &aggregation.ProductSales{ProductID: line.ProductID, Name: line.ProductName, Revenue: decimal.Zero}
			byID[line.ProductID] = p
		}
		p.Units += line.Quantity
		p.Revenue = p.Revenue.Add(line.Revenue())
	}

	out := make([]aggregation.ProductSales, 0, len(byID))
	for _, p := range byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Revenue.Cmp(b.Revenue); c != 0 {
			return c > 0
		}
		if a.Units != b.Units {
			return a.Units > b.Units
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ProductID < b.ProductID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
