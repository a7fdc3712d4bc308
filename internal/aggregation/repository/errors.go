package repository

import "errors"

var (
	ErrLedgerQueryFailed = errors.New("repository: failed to query ledger")
	ErrViewsReadFailed   = errors.New("repository: failed to read view counters")
	ErrViewsWriteFailed  = errors.New("repository: failed to write view counter")
)
