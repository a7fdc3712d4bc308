package consumer

import (
	"context"
	"errors"

	"github.com/IBM/sarama"
)

// ConsumeProductViews starts consuming product view events until ctx is cancelled.
func (c *Consumer) ConsumeProductViews(ctx context.Context) error {
	group, err := c.createConsumerGroup()
	if err != nil {
		return err
	}
	c.group = group

	handler := &productViewHandler{consumer: c}

	go func() {
		for {
			if err := group.Consume(ctx, []string{c.topic}, handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				c.l.Errorf(ctx, "aggregation.delivery.kafka.consumer.ConsumeProductViews: Consumer error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "aggregation.delivery.kafka.consumer.ConsumeProductViews: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s as %s", c.topic, c.groupID)

	return nil
}
