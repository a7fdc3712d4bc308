package consumer

import (
	"vendor-report-srv/internal/aggregation"
	kafkaDelivery "vendor-report-srv/internal/aggregation/delivery/kafka"
)

func toRecordViewInput(m kafkaDelivery.ProductViewMessage) aggregation.RecordViewInput {
	return aggregation.RecordViewInput{
		VendorID:  m.VendorID,
		ProductID: m.ProductID,
		ViewedAt:  m.ViewedAt,
		Count:     m.Count,
	}
}
