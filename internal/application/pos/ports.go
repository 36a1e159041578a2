package pos

import (
	"context"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// TxRunner executes the checkout write sequence inside one database
// transaction. The repositories handed to fn are bound to that
// transaction; fn returning an error rolls everything back.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository) error) error
}
