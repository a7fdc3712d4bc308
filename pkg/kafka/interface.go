package kafka

import "context"

// IProducer publishes messages to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new Kafka sync producer.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}
