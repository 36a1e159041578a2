package inventory

import (
	"context"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// TxRunner executes a stock adjustment inside one database transaction:
// product row lock, stock update and ledger insert commit together.
type TxRunner interface {
	RunAdjustment(ctx context.Context, fn func(products repository.ProductRepository, adjustments repository.StockAdjustmentRepository) error) error
}
