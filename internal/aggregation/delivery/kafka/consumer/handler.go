package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/IBM/sarama"

	"vendor-report-srv/internal/aggregation"
	kafkaDelivery "vendor-report-srv/internal/aggregation/delivery/kafka"
)

type productViewHandler struct {
	consumer *Consumer
}

func (h *productViewHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *productViewHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks each handled message. A failed write ends the claim without marking,
// so the message is delivered again after the group rejoins.
func (h *productViewHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleProductViewMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(session.Context(), "aggregation.delivery.kafka.consumer.ConsumeClaim: Failed to record view at offset %d: %v", msg.Offset, err)
			return err
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

// handleProductViewMessage decodes a view event and records it. Malformed events are skipped.
func (c *Consumer) handleProductViewMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var message kafkaDelivery.ProductViewMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "aggregation.delivery.kafka.consumer.handleProductViewMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if message.VendorID == "" || message.ViewedAt.IsZero() {
		c.l.Warnf(ctx, "aggregation.delivery.kafka.consumer.handleProductViewMessage: Missing vendor_id or viewed_at (skipping)")
		return nil
	}

	err := c.uc.RecordView(ctx, toRecordViewInput(message))
	if errors.Is(err, aggregation.ErrInvalidInput) {
		c.l.Warnf(ctx, "aggregation.delivery.kafka.consumer.handleProductViewMessage: Rejected view (skipping): %v", err)
		return nil
	}
	return err
}
