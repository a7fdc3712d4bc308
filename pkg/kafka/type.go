package kafka

import "github.com/IBM/sarama"

// Config holds the producer settings. Every message goes to Topic.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// ConsumerConfig holds the consumer group settings. InitialOffset applies only
// when the group has no committed offset yet.
type ConsumerConfig struct {
	Brokers       []string
	GroupID       string
	ClientID      string
	InitialOffset string
}

// Message is a keyed record. Messages sharing a key land on the same partition.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
