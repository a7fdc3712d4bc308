package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one vendor-owned order line joined with its order and product.
type LedgerLine struct {
	OrderID     string
	CustomerID  string
	ProductID   string
	ProductName string
	Category    string
	Status      string
	OrderAmount decimal.Decimal
	Quantity    int64
	Price       decimal.Decimal
	Subtotal    decimal.Decimal
	CreatedAt   time.Time
}

// Revenue is the line subtotal, or price times quantity when no subtotal was recorded.
func (l LedgerLine) Revenue() decimal.Decimal {
	if l.Subtotal.IsPositive() {
		return l.Subtotal
	}
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// ViewSlotWidth is the resolution of stored product views. Every UTC offset in use is a
// multiple of it, so local day boundaries always fall on a slot boundary.
const ViewSlotWidth = 15 * time.Minute

// ViewSlot counts product views in the slot starting at At (UTC).
type ViewSlot struct {
	At    time.Time
	Count int64
}
