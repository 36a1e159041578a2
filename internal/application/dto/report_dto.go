package dto

import "github.com/shopspring/decimal"

// FinancialReportResponse body for GET /api/reports/financial.
type FinancialReportResponse struct {
	Turnover          decimal.Decimal            `json:"turnover"`
	TotalOrders       int                        `json:"total_orders"`
	COGS              decimal.Decimal            `json:"cogs"`
	GrossProfit       decimal.Decimal            `json:"gross_profit"`
	PaymentsBreakdown map[string]decimal.Decimal `json:"payments_breakdown"`
	DailyRevenue      []RevenuePointResponse     `json:"daily_revenue"`
	TotalCashInDrawer decimal.Decimal            `json:"total_cash_in_drawer"`
}

// RevenuePointResponse is one bucket of the revenue series.
type RevenuePointResponse struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// TopProductResponse is one row of the top-products ranking.
type TopProductResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"qty"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DashboardResponse body for GET /api/dashboard.
type DashboardResponse struct {
	TodaySales   decimal.Decimal   `json:"today_sales"`
	TodayCount   int               `json:"today_count"`
	LowStock     []ProductResponse `json:"low_stock"`
	RecentOrders []OrderResponse   `json:"recent_orders"`
}
