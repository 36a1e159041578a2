package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregation queries behind the financial and
// dashboard reports. COMPLETED orders only; VOID sales never count.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the reporting adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesTotals returns turnover, order count and COGS for the range.
// COGS comes from the cost_at_sale snapshots, so later cost edits never
// rewrite history. COALESCE yields zeros for an empty range.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (*repository.SalesTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(o.total_amount), 0)                       AS turnover,
	    COUNT(o.id)                                            AS order_count,
	    COALESCE((
	        SELECT SUM(oi.cost_at_sale * oi.quantity)
	        FROM order_items oi
	        JOIN orders oo ON oo.id = oi.order_id
	        WHERE oo.status = 'COMPLETED'
	          AND oo.created_at >= $1 AND oo.created_at < $2
	    ), 0)                                                  AS cogs
	FROM orders o
	WHERE o.status = 'COMPLETED'
	  AND o.created_at >= $1 AND o.created_at < $2`

	var totals repository.SalesTotals
	err := r.pool.QueryRow(ctx, query, from, to).Scan(&totals.Turnover, &totals.OrderCount, &totals.COGS)
	if err != nil {
		return nil, fmt.Errorf("reports.GetSalesTotals: %w", err)
	}
	return &totals, nil
}

// GetPaymentBreakdown sums tendered amounts per method over COMPLETED
// orders in the range.
func (r *ReportRepo) GetPaymentBreakdown(ctx context.Context, from, to time.Time) ([]repository.PaymentMethodTotal, error) {
	const query = `
	SELECT p.method, COALESCE(SUM(p.amount), 0) AS total
	FROM payments p
	JOIN orders o ON o.id = p.order_id
	WHERE o.status = 'COMPLETED'
	  AND o.created_at >= $1 AND o.created_at < $2
	GROUP BY p.method
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetPaymentBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentMethodTotal
	for rows.Next() {
		var row repository.PaymentMethodTotal
		if err := rows.Scan(&row.Method, &row.Total); err != nil {
			return nil, fmt.Errorf("reports.GetPaymentBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRevenueByPeriod buckets COMPLETED revenue by period label.
func (r *ReportRepo) GetRevenueByPeriod(ctx context.Context, from, to time.Time, period string) ([]repository.RevenuePoint, error) {
	var format string
	switch period {
	case repository.PeriodDaily:
		format = "YYYY-MM-DD"
	case repository.PeriodWeekly:
		format = "IYYY-\"W\"IW"
	case repository.PeriodMonthly:
		format = "YYYY-MM"
	case repository.PeriodYearly:
		format = "YYYY"
	default:
		return nil, fmt.Errorf("reports.GetRevenueByPeriod: unknown period %q", period)
	}

	query := fmt.Sprintf(`
	SELECT to_char(o.created_at, '%s') AS period, COALESCE(SUM(o.total_amount), 0) AS amount
	FROM orders o
	WHERE o.status = 'COMPLETED'
	  AND o.created_at >= $1 AND o.created_at < $2
	GROUP BY period
	ORDER BY period`, format)

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetRevenueByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.RevenuePoint
	for rows.Next() {
		var row repository.RevenuePoint
		if err := rows.Scan(&row.Period, &row.Amount); err != nil {
			return nil, fmt.Errorf("reports.GetRevenueByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts ranks products by quantity sold in the range.
func (r *ReportRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT oi.product_id,
	       COALESCE(p.name, '')                        AS product_name,
	       SUM(oi.quantity)                            AS qty,
	       COALESCE(SUM(oi.price_at_sale * oi.quantity), 0) AS revenue
	FROM order_items oi
	JOIN orders o ON o.id = oi.order_id
	LEFT JOIN products p ON p.id = oi.product_id
	WHERE o.status = 'COMPLETED'
	  AND o.created_at >= $1 AND o.created_at < $2
	GROUP BY oi.product_id, p.name
	ORDER BY qty DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetClosedShiftCash sums the counted drawer cash of shifts closed in
// the range.
func (r *ReportRepo) GetClosedShiftCash(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_cash_received), 0)
	FROM shifts
	WHERE status = 'CLOSED'
	  AND end_time >= $1 AND end_time < $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetClosedShiftCash: %w", err)
	}
	return total, nil
}

// GetLowStockProducts returns active products at or under the threshold,
// lowest stock first.
func (r *ReportRepo) GetLowStockProducts(ctx context.Context, threshold, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
	FROM products
	WHERE is_archived = false AND stock <= $1
	ORDER BY stock ASC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetLowStockProducts: %w", err)
	}
	defer rows.Close()

	var results []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Price, &p.CostPrice,
			&p.Stock, &p.IsMenuItem, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("reports.GetLowStockProducts scan: %w", err)
		}
		results = append(results, &p)
	}
	return results, rows.Err()
}
