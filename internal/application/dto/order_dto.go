package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse is one line of an order with its sale-time snapshots.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	CostAtSale  decimal.Decimal `json:"cost_at_sale"`
}

// PaymentResponse is one tendered payment on an order.
type PaymentResponse struct {
	ID     int64           `json:"id"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderResponse is an order with its lines and payments.
type OrderResponse struct {
	ID              int64               `json:"id"`
	InvoiceNumber   string              `json:"invoice_number"`
	UserID          int64               `json:"user_id"`
	UserName        string              `json:"user_name,omitempty"`
	SubtotalAmount  decimal.Decimal     `json:"subtotal_amount"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	DiscountPercent decimal.Decimal     `json:"discount_percent"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	Payments        []PaymentResponse   `json:"payments,omitempty"`
}
