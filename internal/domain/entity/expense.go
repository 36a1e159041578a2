package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories.
const (
	ExpenseCategorySupplies    = "SUPPLIES"
	ExpenseCategoryUtilities   = "UTILITIES"
	ExpenseCategoryMaintenance = "MAINTENANCE"
	ExpenseCategoryOther       = "OTHER"
)

// Expense is a daily discretionary expense entry; feeds net-profit reporting.
type Expense struct {
	ID          int64
	UserID      int64 // admin who recorded it
	Description string
	Amount      decimal.Decimal
	Category    string // SUPPLIES, UTILITIES, MAINTENANCE, OTHER
	Date        time.Time
	Notes       *string
	CreatedAt   time.Time
}
