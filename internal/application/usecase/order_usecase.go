package usecase

import (
	"context"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// OrderTxRunner executes the order purge (payments, items, order)
// inside one transaction.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// ReceiptData is everything a printed receipt shows.
type ReceiptData struct {
	Order       *entity.Order
	CashierName string
	Items       []*repository.OrderItemRecord
	Payments    []*entity.Payment
}

// ReceiptGenerator renders a receipt document for an order.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data *ReceiptData) ([]byte, error)
}

// OrderUseCase covers the back-office order surface: listing, void and
// delete. Creation happens only through checkout.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	txRunner  OrderTxRunner
	auditor   *audit.Recorder
	receipts  ReceiptGenerator
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	txRunner OrderTxRunner,
	auditor *audit.Recorder,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		txRunner:  txRunner,
		auditor:   auditor,
		receipts:  receipts,
	}
}

// List returns orders in the range, newest first, with lines and
// payments expanded.
func (uc *OrderUseCase) List(ctx context.Context, f repository.OrderFilter) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp, err := uc.expand(o)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// GetByID returns one order with lines and payments, or ErrNotFound.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.expand(order)
}

// Void marks the order VOID. Items, payments and stock stay untouched;
// a voided sale is excluded from reports but never restocked.
func (uc *OrderUseCase) Void(ctx context.Context, userID, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orderRepo.UpdateStatus(id, entity.OrderStatusVoid); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, entity.AuditActionUpdate, entity.AuditEntityOrder, id,
		map[string]any{"status": order.Status},
		map[string]any{"status": entity.OrderStatusVoid, "invoice": order.InvoiceNumber})
	order.Status = entity.OrderStatusVoid
	return uc.expand(order)
}

// Delete purges an order with its payments and items, atomically.
func (uc *OrderUseCase) Delete(ctx context.Context, userID, id int64) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	err = uc.txRunner.RunOrder(ctx, func(orders repository.OrderRepository) error {
		if err := orders.DeletePaymentsByOrder(id); err != nil {
			return err
		}
		if err := orders.DeleteItemsByOrder(id); err != nil {
			return err
		}
		return orders.Delete(id)
	})
	if err != nil {
		return err
	}
	uc.auditor.Record(userID, entity.AuditActionDelete, entity.AuditEntityOrder, id,
		map[string]any{"invoice": order.InvoiceNumber, "total": order.TotalAmount}, nil)
	return nil
}

// ReceiptPDF renders the order's receipt as a PDF document.
func (uc *OrderUseCase) ReceiptPDF(ctx context.Context, id int64) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItemsByOrder(id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.orderRepo.GetPaymentsByOrder(id)
	if err != nil {
		return nil, err
	}
	data := &ReceiptData{
		Order:       order,
		CashierName: uc.cashierName(order.UserID),
		Items:       items,
		Payments:    payments,
	}
	return uc.receipts.GenerateReceipt(ctx, data)
}

// cashierName resolves the operator's display name; empty for deleted
// accounts.
func (uc *OrderUseCase) cashierName(userID int64) string {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return ""
	}
	return user.Name
}

func (uc *OrderUseCase) expand(o *entity.Order) (*dto.OrderResponse, error) {
	items, err := uc.orderRepo.GetItemsByOrder(o.ID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.orderRepo.GetPaymentsByOrder(o.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.OrderResponse{
		ID:              o.ID,
		InvoiceNumber:   o.InvoiceNumber,
		UserID:          o.UserID,
		UserName:        uc.cashierName(o.UserID),
		SubtotalAmount:  o.SubtotalAmount,
		DiscountAmount:  o.DiscountAmount,
		DiscountPercent: o.DiscountPercent,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
			CostAtSale:  it.CostAtSale,
		})
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.PaymentResponse{
			ID:     p.ID,
			Method: p.Method,
			Amount: p.Amount,
		})
	}
	return resp, nil
}
