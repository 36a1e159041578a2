package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
)

// SalesTotals aggregates COMPLETED orders in a range.
type SalesTotals struct {
	Turnover   decimal.Decimal
	OrderCount int
	COGS       decimal.Decimal // from cost_at_sale snapshots
}

// PaymentMethodTotal is the tendered total for one payment method.
type PaymentMethodTotal struct {
	Method string
	Total  decimal.Decimal
}

// RevenuePoint is revenue bucketed by period label (e.g. "2026-08-28").
type RevenuePoint struct {
	Period string
	Amount decimal.Decimal
}

// TopProductResult ranks one product by quantity sold.
type TopProductResult struct {
	ProductID   int64
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
}

// Revenue aggregation periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// ReportRepository holds the read-only aggregation queries behind the
// financial and dashboard reports. COMPLETED orders only; VOID orders
// never count.
type ReportRepository interface {
	GetSalesTotals(ctx context.Context, from, to time.Time) (*SalesTotals, error)
	GetPaymentBreakdown(ctx context.Context, from, to time.Time) ([]PaymentMethodTotal, error)
	GetRevenueByPeriod(ctx context.Context, from, to time.Time, period string) ([]RevenuePoint, error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	GetClosedShiftCash(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	GetLowStockProducts(ctx context.Context, threshold, limit int) ([]*entity.Product, error)
}
