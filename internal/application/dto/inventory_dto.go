package dto

import "time"

// AdjustStockRequest body for POST /api/inventory/adjustments.
// Change is always positive; the sign is derived from Type.
type AdjustStockRequest struct {
	ProductID int64   `json:"product_id" validate:"required,min=1"`
	Change    int     `json:"change" validate:"required,min=1"`
	Type      string  `json:"type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Reason    *string `json:"reason,omitempty"`
	Reference *string `json:"reference,omitempty"`
}

// StockAdjustmentResponse is one ledger entry with refs expanded.
type StockAdjustmentResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	Change      int       `json:"change"`
	Type        string    `json:"type"`
	Reason      *string   `json:"reason,omitempty"`
	Reference   *string   `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListAdjustmentsRequest query params for GET /api/inventory/adjustments.
type ListAdjustmentsRequest struct {
	PageRequest
	ProductID *int64     `query:"product_id"`
	From      *time.Time `query:"from"`
	To        *time.Time `query:"to"`
}

// ListAdjustmentsResponse pages the ledger, newest first.
type ListAdjustmentsResponse struct {
	Data  []StockAdjustmentResponse `json:"data"`
	Total int                       `json:"total"`
}
