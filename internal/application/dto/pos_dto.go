package dto

import "github.com/shopspring/decimal"

// CheckoutItem is one cart line. Price is what the cashier charged,
// which may differ from the product's list price.
type CheckoutItem struct {
	ProductID int64           `json:"product_id" validate:"required,min=1"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// CheckoutPayment is one tendered amount (split bill allowed).
type CheckoutPayment struct {
	Method string          `json:"method" validate:"required,oneof=CASH QRIS TRANSFER"`
	Amount decimal.Decimal `json:"amount"`
}

// CheckoutRequest body for POST /api/pos/checkout.
type CheckoutRequest struct {
	Items       []CheckoutItem    `json:"items" validate:"required,min=1,dive"`
	Payments    []CheckoutPayment `json:"payments" validate:"required,min=1,dive"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}

// CheckoutResponse is returned on a successful sale; Receipt is the
// "<invoice> - <timestamp>" line printed on the customer slip.
type CheckoutResponse struct {
	OrderID       int64  `json:"order_id"`
	InvoiceNumber string `json:"invoice_number"`
	Receipt       string `json:"receipt"`
}

// PosMenuResponse is the data the POS screen needs: deduplicated
// categories plus sellable products.
type PosMenuResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Products   []ProductResponse  `json:"products"`
}
