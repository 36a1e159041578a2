package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// Dashboard thresholds.
const (
	lowStockThreshold = 10
	lowStockLimit     = 5
	recentOrdersLimit = 5
)

// ReportUseCase serves the read-only financial views. All figures come
// from COMPLETED orders; VOID sales never count.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	orderRepo  repository.OrderRepository
}

// NewReportUseCase builds the use case.
func NewReportUseCase(reportRepo repository.ReportRepository, orderRepo repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, orderRepo: orderRepo}
}

// GetFinancialReport aggregates the range: turnover, COGS (from
// cost_at_sale snapshots), gross profit, payment breakdown, the daily
// revenue series, and reported cash from shifts closed in the range.
func (uc *ReportUseCase) GetFinancialReport(ctx context.Context, from, to time.Time) (*dto.FinancialReportResponse, error) {
	totals, err := uc.reportRepo.GetSalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	breakdown, err := uc.reportRepo.GetPaymentBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}
	daily, err := uc.reportRepo.GetRevenueByPeriod(ctx, from, to, repository.PeriodDaily)
	if err != nil {
		return nil, err
	}
	drawerCash, err := uc.reportRepo.GetClosedShiftCash(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.FinancialReportResponse{
		Turnover:          totals.Turnover,
		TotalOrders:       totals.OrderCount,
		COGS:              totals.COGS,
		GrossProfit:       totals.Turnover.Sub(totals.COGS),
		PaymentsBreakdown: map[string]decimal.Decimal{},
		DailyRevenue:      make([]dto.RevenuePointResponse, 0, len(daily)),
		TotalCashInDrawer: drawerCash,
	}
	for _, b := range breakdown {
		resp.PaymentsBreakdown[b.Method] = b.Total
	}
	for _, p := range daily {
		resp.DailyRevenue = append(resp.DailyRevenue, dto.RevenuePointResponse{Period: p.Period, Amount: p.Amount})
	}
	return resp, nil
}

// GetTopProducts ranks products by quantity sold in the range.
func (uc *ReportUseCase) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]dto.TopProductResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.reportRepo.GetTopProducts(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductResponse{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Revenue:     r.Revenue,
		})
	}
	return out, nil
}

// GetAggregatedRevenue buckets revenue by the requested period.
func (uc *ReportUseCase) GetAggregatedRevenue(ctx context.Context, from, to time.Time, period string) ([]dto.RevenuePointResponse, error) {
	switch period {
	case repository.PeriodDaily, repository.PeriodWeekly, repository.PeriodMonthly, repository.PeriodYearly:
	default:
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.GetRevenueByPeriod(ctx, from, to, period)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevenuePointResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RevenuePointResponse{Period: r.Period, Amount: r.Amount})
	}
	return out, nil
}

// GetDashboard returns today's headline numbers plus low-stock alerts
// and the latest orders.
func (uc *ReportUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	totals, err := uc.reportRepo.GetSalesTotals(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.reportRepo.GetLowStockProducts(ctx, lowStockThreshold, lowStockLimit)
	if err != nil {
		return nil, err
	}
	recent, err := uc.orderRepo.List(repository.OrderFilter{
		From:   &dayStart,
		To:     &dayEnd,
		Status: entity.OrderStatusCompleted,
		Limit:  recentOrdersLimit,
	})
	if err != nil {
		return nil, err
	}
	resp := &dto.DashboardResponse{
		TodaySales:   totals.Turnover,
		TodayCount:   totals.OrderCount,
		LowStock:     make([]dto.ProductResponse, 0, len(lowStock)),
		RecentOrders: make([]dto.OrderResponse, 0, len(recent)),
	}
	for _, p := range lowStock {
		resp.LowStock = append(resp.LowStock, *toProductResponse(p))
	}
	for _, o := range recent {
		resp.RecentOrders = append(resp.RecentOrders, dto.OrderResponse{
			ID:            o.ID,
			InvoiceNumber: o.InvoiceNumber,
			UserID:        o.UserID,
			TotalAmount:   o.TotalAmount,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt,
		})
	}
	return resp, nil
}
