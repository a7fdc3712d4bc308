package reportconfig

import (
	"fmt"
	"time"

	"vendor-report-srv/internal/metric"
	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/render"
	"vendor-report-srv/pkg/util"
)

const titleDateFormat = "02 Jan 2006"

var quickMetrics = []string{
	string(metric.Revenue),
	string(metric.Orders),
	string(metric.Customers),
	string(metric.AverageOrderValue),
}

// Quick resolves a daily, weekly or monthly quick report ending today in loc.
func Quick(kind model.ReportType, now time.Time, loc *time.Location) (model.ReportConfiguration, error) {
	today := util.StartOfDay(now, loc)

	var (
		start time.Time
		name  string
	)
	switch kind {
	case model.ReportTypeDaily:
		start = today
		name = "Daily Report - " + today.Format(titleDateFormat)
	case model.ReportTypeWeekly:
		start = today.AddDate(0, 0, -6)
		name = fmt.Sprintf("Weekly Report - %s to %s", start.Format(titleDateFormat), today.Format(titleDateFormat))
	case model.ReportTypeMonthly:
		start = util.StartOfMonth(now, loc)
		name = "Monthly Report - " + start.Format("January 2006")
	default:
		return model.ReportConfiguration{}, fmt.Errorf("%w: %q", ErrUnknownQuickReport, kind)
	}

	return model.ReportConfiguration{
		ID:        "quick-" + string(kind),
		Name:      name,
		Type:      kind,
		DateRange: model.DateRange{Start: util.DateToStr(start), End: util.DateToStr(today)},
		Metrics:   append([]string(nil), quickMetrics...),
		GroupBy:   model.GranularityDay,
		Format:    render.FormatPDF.String(),
		Timezone:  loc.String(),
	}, nil
}

// Templates returns every built-in configuration resolved against now in loc.
func Templates(now time.Time, loc *time.Location) []model.ReportConfiguration {
	out := []model.ReportConfiguration{}
	for _, kind := range []model.ReportType{model.ReportTypeDaily, model.ReportTypeWeekly, model.ReportTypeMonthly} {
		cfg, _ := Quick(kind, now, loc)
		out = append(out, cfg)
	}

	today := util.StartOfDay(now, loc)
	end := util.DateToStr(today)
	template := func(id, name string, start time.Time, g model.Granularity, metrics ...metric.ID) model.ReportConfiguration {
		ids := make([]string, 0, len(metrics))
		for _, m := range metrics {
			ids = append(ids, string(m))
		}
		return model.ReportConfiguration{
			ID:        id,
			Name:      name,
			Type:      model.ReportTypeTemplate,
			DateRange: model.DateRange{Start: util.DateToStr(start), End: end},
			Metrics:   ids,
			GroupBy:   g,
			Format:    render.FormatPDF.String(),
			Timezone:  loc.String(),
		}
	}

	return append(out,
		template("template-monthly-sales", "Monthly Sales Summary",
			util.StartOfMonth(now, loc).AddDate(0, -11, 0), model.GranularityMonth,
			metric.Revenue, metric.Orders, metric.Customers),
		template("template-product-performance", "Product Performance",
			today.AddDate(0, 0, -29), model.GranularityDay,
			metric.Products, metric.Revenue, metric.ConversionRate),
		template("template-customer-analysis", "Customer Analysis",
			today.AddDate(0, 0, -83), model.GranularityWeek,
			metric.Customers, metric.AverageOrderValue),
	)
}
