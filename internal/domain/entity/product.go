package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item or stock-only SKU.
// Stock is only ever mutated through a checkout or a stock adjustment;
// CostPrice is the snapshot basis for margin (HPP/COGS).
type Product struct {
	ID         int64
	CategoryID int64
	SKU        *string // optional, unique when present (barcode)
	Name       string
	Price      decimal.Decimal
	CostPrice  decimal.Decimal
	Stock      int // mutable counter; may go negative, never clamped
	IsMenuItem bool // visible on the POS menu
	IsArchived bool // soft delete
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
