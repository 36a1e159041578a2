package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift statuses. At most one shift may be OPEN system-wide.
const (
	ShiftStatusOpen   = "OPEN"
	ShiftStatusClosed = "CLOSED"
)

// Shift is a cash-drawer session bounded by an open/close pair.
// The drawer is shared: any operator may close a shift another opened.
type Shift struct {
	ID           int64
	UserID       int64
	StartTime    time.Time
	EndTime      *time.Time
	InitialCash  decimal.Decimal
	ReportedCash *decimal.Decimal // physical count entered at close
	Status       string           // OPEN, CLOSED
}
