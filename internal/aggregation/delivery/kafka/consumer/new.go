package consumer

import (
	"fmt"

	"github.com/IBM/sarama"

	"vendor-report-srv/internal/aggregation"
	kafkaDelivery "vendor-report-srv/internal/aggregation/delivery/kafka"
	pkgKafka "vendor-report-srv/pkg/kafka"
	"vendor-report-srv/pkg/log"
)

// Config holds the configuration for the product view consumer.
type Config struct {
	Logger  log.Logger
	Brokers []string
	Topic   string
	GroupID string
	// ClientID and InitialOffset fall back to the pkg/kafka defaults when empty.
	ClientID      string
	InitialOffset string
	UseCase       aggregation.UseCase
}

// Consumer folds product view events into the aggregation view counters.
type Consumer struct {
	l       log.Logger
	brokers []string
	topic   string
	groupID string
	client  string
	offset  string
	uc      aggregation.UseCase

	group sarama.ConsumerGroup
}

// New creates a new product view consumer.
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.Topic == "" {
		cfg.Topic = kafkaDelivery.TopicProductViews
	}
	if cfg.GroupID == "" {
		cfg.GroupID = kafkaDelivery.ConsumerGroupProductViews
	}

	return &Consumer{
		l:       cfg.Logger,
		brokers: cfg.Brokers,
		topic:   cfg.Topic,
		groupID: cfg.GroupID,
		client:  cfg.ClientID,
		offset:  cfg.InitialOffset,
		uc:      cfg.UseCase,
	}, nil
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c.group != nil {
		if err := c.group.Close(); err != nil {
			return fmt.Errorf("failed to close product view group: %w", err)
		}
	}
	return nil
}

func (c *Consumer) createConsumerGroup() (sarama.ConsumerGroup, error) {
	group, err := pkgKafka.NewConsumerGroup(pkgKafka.ConsumerConfig{
		Brokers:       c.brokers,
		GroupID:       c.groupID,
		ClientID:      c.client,
		InitialOffset: c.offset,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateConsumerGroupFailed, c.groupID, err)
	}
	return group, nil
}
