package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lintangrafi/POS-Kygoo/internal/application/inventory"
	"github.com/lintangrafi/POS-Kygoo/internal/application/pos"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// Ensure TxRunner satisfies every transaction port it serves.
var _ pos.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. The
// repositories handed to each callback are bound to that transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheckout runs the checkout write sequence: order, items, stock
// decrements and payments commit together or not at all.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	orders repository.OrderRepository,
	products repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAdjustment runs a stock adjustment: product row lock, stock update
// and ledger insert in one transaction.
func (r *TxRunner) RunAdjustment(ctx context.Context, fn func(
	products repository.ProductRepository,
	adjustments repository.StockAdjustmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewStockAdjustmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder runs an order purge (payments, items, order).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orders repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
