package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListLinesOptions struct {
	VendorID  string
	From      time.Time
	To        time.Time
	Statuses  []string
	Category  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

type GetViewsOptions struct {
	VendorID string
	From     time.Time
	To       time.Time
}

type IncrementViewsOptions struct {
	VendorID string
	At       time.Time
	Count    int64
	TTL      time.Duration
}
