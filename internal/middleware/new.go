package middleware

import (
	"vendor-report-srv/internal/metrics"
	"vendor-report-srv/pkg/log"
	"vendor-report-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	metrics    *metrics.Collector
}

func New(l log.Logger, jwtManager scope.Manager, collector *metrics.Collector) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		metrics:    collector,
	}
}
