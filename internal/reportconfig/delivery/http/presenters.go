package http

import (
	"time"

	"github.com/shopspring/decimal"

	"vendor-report-srv/internal/model"
	"vendor-report-srv/internal/reportconfig"
	"vendor-report-srv/pkg/paginator"
)

// DateRangeReq holds inclusive dates formatted as 2006-01-02.
type DateRangeReq struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type FiltersReq struct {
	Category  string           `json:"category"`
	Statuses  []string         `json:"statuses"`
	MinAmount *decimal.Decimal `json:"min_amount" swaggertype:"string"`
	MaxAmount *decimal.Decimal `json:"max_amount" swaggertype:"string"`
}

// ConfigurationReq is the request body of a report configuration.
type ConfigurationReq struct {
	Name      string       `json:"name" binding:"required"`
	Type      string       `json:"type"`
	DateRange DateRangeReq `json:"date_range" binding:"required"`
	Metrics   []string     `json:"metrics"`
	GroupBy   string       `json:"group_by"`
	Filters   FiltersReq   `json:"filters"`
	Format    string       `json:"format"`
	Timezone  string       `json:"timezone"`
}

func (r ConfigurationReq) ToModel() model.ReportConfiguration {
	return model.ReportConfiguration{
		Name:      r.Name,
		Type:      model.ReportType(r.Type),
		DateRange: model.DateRange{Start: r.DateRange.Start, End: r.DateRange.End},
		Metrics:   r.Metrics,
		GroupBy:   model.Granularity(r.GroupBy),
		Filters: model.Filters{
			Category:  r.Filters.Category,
			Statuses:  r.Filters.Statuses,
			MinAmount: r.Filters.MinAmount,
			MaxAmount: r.Filters.MaxAmount,
		},
		Format:   r.Format,
		Timezone: r.Timezone,
	}
}

type saveReq struct {
	ID string `json:"id"`
	ConfigurationReq
}

func (r saveReq) toInput() reportconfig.SaveInput {
	cfg := r.ConfigurationReq.ToModel()
	cfg.ID = r.ID
	return reportconfig.SaveInput{Configuration: cfg}
}

type configIDReq struct {
	ID string
}

type listReq struct {
	paginator.PaginateQuery
}

// ConfigurationResp is the JSON form of a report configuration.
type ConfigurationResp struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	DateRange model.DateRange `json:"date_range"`
	Metrics   []string        `json:"metrics"`
	GroupBy   string          `json:"group_by"`
	Filters   model.Filters   `json:"filters"`
	Format    string          `json:"format"`
	Timezone  string          `json:"timezone"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

func NewConfigurationResp(c model.ReportConfiguration) ConfigurationResp {
	resp := ConfigurationResp{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		DateRange: c.DateRange,
		Metrics:   c.Metrics,
		GroupBy:   string(c.GroupBy),
		Filters:   c.Filters,
		Format:    c.Format,
		Timezone:  c.Timezone,
	}
	if !c.CreatedAt.IsZero() {
		created, updated := c.CreatedAt, c.UpdatedAt
		resp.CreatedAt = &created
		resp.UpdatedAt = &updated
	}
	return resp
}

type listResp struct {
	Configurations []ConfigurationResp         `json:"configurations"`
	Paginator      paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(o reportconfig.ListOutput) listResp {
	out := make([]ConfigurationResp, 0, len(o.Configurations))
	for _, c := range o.Configurations {
		out = append(out, NewConfigurationResp(c))
	}
	return listResp{Configurations: out, Paginator: o.Paginator.ToResponse()}
}

func (h *handler) newTemplatesResp(configs []model.ReportConfiguration) []ConfigurationResp {
	out := make([]ConfigurationResp, 0, len(configs))
	for _, c := range configs {
		out = append(out, NewConfigurationResp(c))
	}
	return out
}
