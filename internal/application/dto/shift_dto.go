package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenShiftRequest body for POST /api/shifts/open.
type OpenShiftRequest struct {
	InitialCash decimal.Decimal `json:"initial_cash"`
}

// CloseShiftRequest body for POST /api/shifts/close. ReportedCash is
// the physically counted drawer amount.
type CloseShiftRequest struct {
	ReportedCash decimal.Decimal `json:"reported_cash"`
}

// ShiftResponse is a shift as the API returns it.
type ShiftResponse struct {
	ID           int64            `json:"id"`
	UserID       int64            `json:"user_id"`
	UserName     string           `json:"user_name,omitempty"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      *time.Time       `json:"end_time,omitempty"`
	InitialCash  decimal.Decimal  `json:"initial_cash"`
	ReportedCash *decimal.Decimal `json:"reported_cash,omitempty"`
	Status       string           `json:"status"`
}
