package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Orders are immutable after creation except the
// COMPLETED -> VOID transition (soft cancel, no restock).
const (
	OrderStatusCompleted = "COMPLETED"
	OrderStatusVoid      = "VOID"
)

// Payment methods.
const (
	PaymentMethodCash     = "CASH"
	PaymentMethodQRIS     = "QRIS"
	PaymentMethodTransfer = "TRANSFER"
)

// Order is a completed checkout, owned by the cashier who rang it up.
type Order struct {
	ID              int64
	InvoiceNumber   string
	UserID          int64
	SubtotalAmount  decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountPercent decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          string // COMPLETED, VOID
	CreatedAt       time.Time
}

// OrderItem is one cart line. PriceAtSale and CostAtSale are snapshots
// taken at checkout and never change afterwards.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	Quantity    int
	PriceAtSale decimal.Decimal
	CostAtSale  decimal.Decimal
}

// Payment is one tendered amount against an order (split bill allowed).
type Payment struct {
	ID        int64
	OrderID   int64
	Method    string // CASH, QRIS, TRANSFER
	Amount    decimal.Decimal
	CreatedAt time.Time
}
