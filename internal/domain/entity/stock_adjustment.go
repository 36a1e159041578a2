package entity

import "time"

// Stock adjustment types. The stored delta is signed: positive for
// IN/ADJUSTMENT, negative for OUT.
const (
	AdjustmentTypeIn         = "IN"
	AdjustmentTypeOut        = "OUT"
	AdjustmentTypeAdjustment = "ADJUSTMENT" // opname / physical count correction
)

// StockAdjustment is one append-only entry in the stock ledger, written
// in the same transaction as the Product.Stock update it describes.
type StockAdjustment struct {
	ID        int64
	ProductID int64
	UserID    int64
	Change    int    // signed delta applied to Product.Stock
	Type      string // IN, OUT, ADJUSTMENT
	Reason    *string
	Reference *string
	CreatedAt time.Time
}
