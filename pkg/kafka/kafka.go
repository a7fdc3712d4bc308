package kafka

import (
	"context"
	"fmt"
	"sort"

	"github.com/IBM/sarama"
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("kafka: topic is required")
	}
	return nil
}

func validateConsumerConfig(cfg ConsumerConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.GroupID == "" {
		return fmt.Errorf("kafka: group ID is required")
	}
	if _, err := initialOffset(cfg.InitialOffset); err != nil {
		return err
	}
	return nil
}

func clientID(id string) string {
	if id == "" {
		return DefaultClientID
	}
	return id
}

// initialOffset maps the configured name to a sarama offset. Empty means oldest
// so a new group picks up views published before it first joined.
func initialOffset(name string) (int64, error) {
	switch name {
	case "", OffsetOldest:
		return sarama.OffsetOldest, nil
	case OffsetNewest:
		return sarama.OffsetNewest, nil
	default:
		return 0, fmt.Errorf("kafka: unknown initial offset %q", name)
	}
}

func producerConfig(cfg Config) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = clientID(cfg.ClientID)
	config.Version = KafkaVersion
	// Lifecycle events drive downstream notifications; wait for every in-sync replica.
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Retry.Backoff = ProducerRetryBackoff
	config.Producer.Timeout = ProducerTimeout
	return config
}

func consumerConfig(cfg ConsumerConfig) (*sarama.Config, error) {
	offset, err := initialOffset(cfg.InitialOffset)
	if err != nil {
		return nil, err
	}
	config := sarama.NewConfig()
	config.ClientID = clientID(cfg.ClientID)
	config.Version = KafkaVersion
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = offset
	config.Consumer.Return.Errors = true
	return config, nil
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, producerConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

// Publish sends msg to the configured topic. A cancelled ctx stops the send before
// it reaches the broker; once handed to sarama the call blocks until acked.
func (p *producerImpl) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pm := &sarama.ProducerMessage{
		Topic:   p.topic,
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: recordHeaders(msg.Headers),
	}
	if msg.Key != nil {
		pm.Key = sarama.ByteEncoder(msg.Key)
	}

	if _, _, err := p.producer.SendMessage(pm); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", p.topic, err)
	}
	return nil
}

func recordHeaders(h map[string]string) []sarama.RecordHeader {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]sarama.RecordHeader, len(keys))
	for i, k := range keys {
		out[i] = sarama.RecordHeader{Key: []byte(k), Value: []byte(h[k])}
	}
	return out
}

// Close closes the producer.
func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// HealthCheck verifies the producer is initialized.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return fmt.Errorf("producer is not initialized")
	}
	return nil
}

// NewConsumerGroup creates a consumer group using round robin partition assignment.
func NewConsumerGroup(cfg ConsumerConfig) (sarama.ConsumerGroup, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	config, err := consumerConfig(cfg)
	if err != nil {
		return nil, err
	}
	consumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}
	return consumer, nil
}
