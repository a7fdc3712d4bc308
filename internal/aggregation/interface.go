package aggregation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Aggregate(ctx context.Context, input AggregateInput) (Result, error)
	RecordView(ctx context.Context, input RecordViewInput) error
}
