package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"vendor-report-srv/internal/report"
	kafkaDelivery "vendor-report-srv/internal/report/delivery/kafka"
	pkgKafka "vendor-report-srv/pkg/kafka"
)

// PublishJobEvent publishes a job lifecycle event keyed by job id
func (p *implProducer) PublishJobEvent(ctx context.Context, event report.Event) error {
	msg := kafkaDelivery.JobEventMessage{
		EventType:   event.Type,
		JobID:       event.JobID,
		OwnerID:     event.OwnerID,
		State:       string(event.State),
		FailureCode: event.FailureCode,
		ArtifactID:  event.ArtifactID,
		OccurredAt:  event.OccurredAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal job event: %w", err)
	}

	err = p.producer.Publish(ctx, pkgKafka.Message{
		Key:   []byte(event.JobID),
		Value: body,
		Headers: map[string]string{
			kafkaDelivery.HeaderEventType:   event.Type,
			kafkaDelivery.HeaderContentType: "application/json",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish job event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s for job %s", event.Type, event.JobID)
	return nil
}
