package paginator

// Adjust normalizes the pagination parameters to valid values.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset calculates the database offset for the current page.
func (p PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// New builds the metadata for a page holding count items out of total.
func New(q PaginateQuery, total, count int64) Paginator {
	return Paginator{
		Total:       total,
		Count:       count,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

// TotalPages calculates the total number of pages.
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int((p.Total + p.PerPage - 1) / p.PerPage)
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse converts the paginator to a response format with additional calculated fields.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
