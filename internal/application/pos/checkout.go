package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
	"github.com/lintangrafi/POS-Kygoo/pkg/validation"
)

// UseCase processes cashier sales. The whole write sequence (order,
// items, stock decrements, payments) commits or rolls back as one
// transaction; a partially recorded sale is impossible.
type UseCase struct {
	txRunner  TxRunner
	shiftRepo repository.ShiftRepository
	auditor   *audit.Recorder
	log       *logger.Logger
}

// NewUseCase builds the checkout use case.
func NewUseCase(txRunner TxRunner, shiftRepo repository.ShiftRepository, auditor *audit.Recorder, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, shiftRepo: shiftRepo, auditor: auditor, log: log}
}

// Checkout records one sale. Requires an open shift. Each cart line
// locks its product row, snapshots the current cost_price into
// cost_at_sale and decrements stock (which may go negative; oversell
// shows up in stock, it does not block the sale). A line whose product
// no longer exists fails the whole transaction.
func (uc *UseCase) Checkout(ctx context.Context, userID int64, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, domain.ErrInvalidInput
	}
	paid := decimal.Zero
	for _, p := range req.Payments {
		if p.Amount.IsNegative() || p.Amount.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		paid = paid.Add(p.Amount)
	}
	if paid.LessThan(req.TotalAmount) {
		return nil, domain.ErrInvalidInput
	}
	subtotal := decimal.Zero
	for _, it := range req.Items {
		if it.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	open, err := uc.shiftRepo.GetOpen()
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, domain.ErrNoOpenShift
	}

	now := time.Now()
	invoiceNumber := fmt.Sprintf("INV-%d", now.UnixMilli())
	txID := uuid.New().String()
	discount := subtotal.Sub(req.TotalAmount)
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	order := &entity.Order{
		InvoiceNumber:  invoiceNumber,
		UserID:         userID,
		SubtotalAmount: subtotal,
		DiscountAmount: discount,
		TotalAmount:    req.TotalAmount,
		Status:         entity.OrderStatusCompleted,
		CreatedAt:      now,
	}
	err = uc.txRunner.RunCheckout(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for _, it := range req.Items {
			product, err := products.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("product %d: %w", it.ProductID, domain.ErrNotFound)
			}
			item := &entity.OrderItem{
				OrderID:     order.ID,
				ProductID:   product.ID,
				Quantity:    it.Quantity,
				PriceAtSale: it.Price,
				CostAtSale:  product.CostPrice,
			}
			if err := orders.CreateItem(item); err != nil {
				return err
			}
			if err := products.UpdateStock(product.ID, product.Stock-it.Quantity); err != nil {
				return err
			}
		}
		for _, p := range req.Payments {
			payment := &entity.Payment{
				OrderID: order.ID,
				Method:  p.Method,
				Amount:  p.Amount,
			}
			if err := orders.CreatePayment(payment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("tx_id", txID).Str("invoice", invoiceNumber).Msg("checkout rolled back")
		return nil, err
	}

	uc.auditor.Record(userID, entity.AuditActionCreate, entity.AuditEntityOrder, order.ID, nil, map[string]any{
		"invoice": invoiceNumber,
		"total":   req.TotalAmount,
	})
	uc.log.Info().
		Str("tx_id", txID).
		Str("invoice", invoiceNumber).
		Int64("order_id", order.ID).
		Int("items", len(req.Items)).
		Msg("checkout completed")

	return &dto.CheckoutResponse{
		OrderID:       order.ID,
		InvoiceNumber: invoiceNumber,
		Receipt:       fmt.Sprintf("%s - %s", invoiceNumber, now.Format("02/01/2006 15:04:05")),
	}, nil
}
