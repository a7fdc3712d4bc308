package paginator

const (
	// DefaultPage is the default page number when invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page when invalid limit is provided.
	DefaultLimit = 20
	// MaxLimit caps a single page of report history.
	MaxLimit = 100
)
