package reportconfig

import (
	"vendor-report-srv/internal/model"
	"vendor-report-srv/pkg/paginator"
)

type SaveInput struct {
	Configuration model.ReportConfiguration
}

type LoadInput struct {
	ID string
}

type ListInput struct {
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	Configurations []model.ReportConfiguration
	Paginator      paginator.Paginator
}

type DeleteInput struct {
	ID string
}

// QuickInput selects one of the daily, weekly or monthly quick reports.
type QuickInput struct {
	Kind   model.ReportType
	Format string
}
