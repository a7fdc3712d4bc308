package kafka

import "time"

// ProductViewMessage is one storefront product view.
type ProductViewMessage struct {
	VendorID  string    `json:"vendor_id"`
	ProductID string    `json:"product_id"`
	ViewedAt  time.Time `json:"viewed_at"`
	Count     int64     `json:"count,omitempty"`
}
