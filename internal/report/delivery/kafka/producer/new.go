package producer

import (
	"vendor-report-srv/internal/report"
	pkgKafka "vendor-report-srv/pkg/kafka"
	"vendor-report-srv/pkg/log"
)

// Producer interface for report job events
type Producer interface {
	report.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new report job event producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
