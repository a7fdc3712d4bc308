package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// DefaultClientID identifies this service to the brokers when none is configured.
	DefaultClientID = "vendor-report-srv"

	ProducerTimeout      = 10 * time.Second
	ProducerRetryMax     = 5
	ProducerRetryBackoff = 250 * time.Millisecond

	// OffsetOldest and OffsetNewest are the accepted ConsumerConfig.InitialOffset values.
	OffsetOldest = "oldest"
	OffsetNewest = "newest"
)

// KafkaVersion is the lowest broker version the cluster runs.
var KafkaVersion = sarama.V2_8_0_0
