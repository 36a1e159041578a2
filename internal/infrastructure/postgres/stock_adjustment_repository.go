package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

// StockAdjustmentRepo implements StockAdjustmentRepository on PostgreSQL
// (pool or tx).
type StockAdjustmentRepo struct {
	q Querier
}

// NewStockAdjustmentRepository builds the persistence adapter for the
// stock ledger.
func NewStockAdjustmentRepository(q Querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{q: q}
}

// Create appends one ledger entry. Change carries the signed delta.
func (r *StockAdjustmentRepo) Create(adjustment *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (product_id, user_id, change, type, reason, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		adjustment.ProductID, adjustment.UserID, adjustment.Change,
		adjustment.Type, adjustment.Reason, adjustment.Reference,
	).Scan(&adjustment.ID, &adjustment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock adjustment: %w", err)
	}
	return nil
}

// GetRecord fetches one entry with product and user names joined.
func (r *StockAdjustmentRepo) GetRecord(id int64) (*repository.StockAdjustmentRecord, error) {
	query := `
		SELECT sa.id, sa.product_id, sa.user_id, sa.change, sa.type, sa.reason, sa.reference, sa.created_at,
		       COALESCE(p.name, ''), COALESCE(u.name, '')
		FROM stock_adjustments sa
		LEFT JOIN products p ON p.id = sa.product_id
		LEFT JOIN users u ON u.id = sa.user_id
		WHERE sa.id = $1`
	var rec repository.StockAdjustmentRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ProductID, &rec.UserID, &rec.Change, &rec.Type,
		&rec.Reason, &rec.Reference, &rec.CreatedAt, &rec.ProductName, &rec.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock adjustment: %w", err)
	}
	return &rec, nil
}

// List returns ledger entries matching the filter, newest first.
func (r *StockAdjustmentRepo) List(f repository.StockAdjustmentFilter) ([]*repository.StockAdjustmentRecord, error) {
	query := `
		SELECT sa.id, sa.product_id, sa.user_id, sa.change, sa.type, sa.reason, sa.reference, sa.created_at,
		       COALESCE(p.name, ''), COALESCE(u.name, '')
		FROM stock_adjustments sa
		LEFT JOIN products p ON p.id = sa.product_id
		LEFT JOIN users u ON u.id = sa.user_id
		WHERE 1=1`
	args := []any{}
	query, args = applyAdjustmentFilter(query, args, f, "sa.")
	query += ` ORDER BY sa.created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()

	var out []*repository.StockAdjustmentRecord
	for rows.Next() {
		var rec repository.StockAdjustmentRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.UserID, &rec.Change, &rec.Type,
			&rec.Reason, &rec.Reference, &rec.CreatedAt, &rec.ProductName, &rec.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Count returns how many entries match the filter (for paging).
func (r *StockAdjustmentRepo) Count(f repository.StockAdjustmentFilter) (int, error) {
	query := `SELECT COUNT(*) FROM stock_adjustments WHERE 1=1`
	args := []any{}
	query, args = applyAdjustmentFilter(query, args, f, "")
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock adjustments: %w", err)
	}
	return n, nil
}

// ExistsForProduct reports whether any entry references the product.
func (r *StockAdjustmentRepo) ExistsForProduct(productID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM stock_adjustments WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check adjustments for product: %w", err)
	}
	return exists, nil
}

func applyAdjustmentFilter(query string, args []any, f repository.StockAdjustmentFilter, prefix string) (string, []any) {
	if f.ProductID != nil {
		args = append(args, *f.ProductID)
		query += fmt.Sprintf(` AND %sproduct_id = $%d`, prefix, len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(` AND %screated_at >= $%d`, prefix, len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(` AND %screated_at < $%d`, prefix, len(args))
	}
	return query, args
}
