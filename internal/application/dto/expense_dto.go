package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body for POST /api/expenses.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=500"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required,oneof=SUPPLIES UTILITIES MAINTENANCE OTHER"`
	Date        time.Time       `json:"date" validate:"required"`
	Notes       *string         `json:"notes,omitempty"`
}

// UpdateExpenseRequest body for PUT /api/expenses/:id; nil fields keep
// the current value.
type UpdateExpenseRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,oneof=SUPPLIES UTILITIES MAINTENANCE OTHER"`
	Date        *time.Time       `json:"date,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// ExpenseResponse is an expense as the API returns it.
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	UserName    string          `json:"user_name,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
