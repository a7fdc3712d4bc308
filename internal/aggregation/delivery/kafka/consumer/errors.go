package consumer

import "errors"

var (
	ErrCreateConsumerGroupFailed = errors.New("failed to create consumer group")
)
