package pos_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/pos"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

// ── In-memory fakes ──────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) UpdateStock(id int64, stock int) error {
	if p, ok := f.products[id]; ok {
		p.Stock = stock
	}
	return nil
}
func (f *fakeProductRepo) SetMenuItem(id int64, v bool) error { return nil }
func (f *fakeProductRepo) SetArchived(id int64, v bool) error { return nil }
func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id int64) error { return nil }

type fakeOrderRepo struct {
	orders   []*entity.Order
	items    []*entity.OrderItem
	payments []*entity.Payment
	nextID   int64
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	f.nextID++
	o.ID = f.nextID
	f.orders = append(f.orders, o)
	return nil
}
func (f *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	it.ID = int64(len(f.items) + 1)
	f.items = append(f.items, it)
	return nil
}
func (f *fakeOrderRepo) CreatePayment(p *entity.Payment) error {
	p.ID = int64(len(f.payments) + 1)
	f.payments = append(f.payments, p)
	return nil
}
func (f *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) GetItemsByOrder(orderID int64) ([]*repository.OrderItemRecord, error) {
	return nil, nil
}
func (f *fakeOrderRepo) GetPaymentsByOrder(orderID int64) ([]*entity.Payment, error) {
	return nil, nil
}
func (f *fakeOrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) UpdateStatus(id int64, status string) error        { return nil }
func (f *fakeOrderRepo) ExistsItemForProduct(productID int64) (bool, error) { return false, nil }
func (f *fakeOrderRepo) DeleteItemsByOrder(orderID int64) error            { return nil }
func (f *fakeOrderRepo) DeletePaymentsByOrder(orderID int64) error         { return nil }
func (f *fakeOrderRepo) Delete(id int64) error                             { return nil }

type fakeShiftRepo struct {
	open *entity.Shift
}

func (f *fakeShiftRepo) Create(s *entity.Shift) error { return nil }
func (f *fakeShiftRepo) GetOpen() (*entity.Shift, error) {
	return f.open, nil
}
func (f *fakeShiftRepo) GetLastByUser(userID int64) (*entity.Shift, error) { return nil, nil }
func (f *fakeShiftRepo) Close(id int64, endTime time.Time, reportedCash decimal.Decimal) error {
	return nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(l *entity.AuditLog) error {
	f.entries = append(f.entries, l)
	return nil
}
func (f *fakeAuditRepo) List(from, to *time.Time, limit int) ([]*repository.AuditLogRecord, error) {
	return nil, nil
}

// fakeTxRunner runs the callback directly against the fakes. rollback
// simulates an aborted transaction: mutations are discarded by handing
// the callback throwaway copies.
type fakeTxRunner struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
}

func (f *fakeTxRunner) RunCheckout(ctx context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository) error) error {
	// Snapshot stock so a failed callback leaves no trace.
	before := make(map[int64]int, len(f.products.products))
	for id, p := range f.products.products {
		before[id] = p.Stock
	}
	ordersBefore := len(f.orders.orders)
	itemsBefore := len(f.orders.items)
	paymentsBefore := len(f.orders.payments)

	if err := fn(f.orders, f.products); err != nil {
		for id, stock := range before {
			f.products.products[id].Stock = stock
		}
		f.orders.orders = f.orders.orders[:ordersBefore]
		f.orders.items = f.orders.items[:itemsBefore]
		f.orders.payments = f.orders.payments[:paymentsBefore]
		return err
	}
	return nil
}

// ── Fixture ──────────────────────────────────────────────────────────

type checkoutFixture struct {
	uc       *pos.UseCase
	orders   *fakeOrderRepo
	products *fakeProductRepo
	shifts   *fakeShiftRepo
	audits   *fakeAuditRepo
}

func newCheckoutFixture(openShift bool) *checkoutFixture {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Es Teh Manis", Price: decimal.NewFromInt(10000), CostPrice: decimal.NewFromInt(4000), Stock: 5},
		2: {ID: 2, Name: "Kopi Susu", Price: decimal.NewFromInt(15000), CostPrice: decimal.NewFromInt(6000), Stock: 3},
	}}
	orders := &fakeOrderRepo{}
	shifts := &fakeShiftRepo{}
	if openShift {
		shifts.open = &entity.Shift{ID: 1, UserID: 1, Status: entity.ShiftStatusOpen}
	}
	audits := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	auditor := audit.NewRecorder(audits, log)
	uc := pos.NewUseCase(&fakeTxRunner{orders: orders, products: products}, shifts, auditor, log)
	return &checkoutFixture{uc: uc, orders: orders, products: products, shifts: shifts, audits: audits}
}

func cartRequest(total int64) dto.CheckoutRequest {
	return dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(10000)},
		},
		Payments: []dto.CheckoutPayment{
			{Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(total)},
		},
		TotalAmount: decimal.NewFromInt(total),
	}
}

// ── Tests ────────────────────────────────────────────────────────────

func TestCheckout_HappyPath(t *testing.T) {
	fx := newCheckoutFixture(true)

	out, err := fx.uc.Checkout(context.Background(), 1, cartRequest(20000))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.InvoiceNumber, "INV-"))
	assert.Contains(t, out.Receipt, out.InvoiceNumber)

	// Stock decremented 5 -> 3.
	assert.Equal(t, 3, fx.products.products[1].Stock)

	// One order line with sale-time snapshots.
	require.Len(t, fx.orders.items, 1)
	item := fx.orders.items[0]
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.PriceAtSale.Equal(decimal.NewFromInt(10000)))
	assert.True(t, item.CostAtSale.Equal(decimal.NewFromInt(4000)))

	require.Len(t, fx.orders.payments, 1)
	require.Len(t, fx.orders.orders, 1)
	assert.Equal(t, entity.OrderStatusCompleted, fx.orders.orders[0].Status)
}

func TestCheckout_NoOpenShift(t *testing.T) {
	fx := newCheckoutFixture(false)

	_, err := fx.uc.Checkout(context.Background(), 1, cartRequest(20000))
	assert.ErrorIs(t, err, domain.ErrNoOpenShift)
	assert.Empty(t, fx.orders.orders)
}

func TestCheckout_EmptyCart(t *testing.T) {
	fx := newCheckoutFixture(true)

	req := cartRequest(20000)
	req.Items = nil
	_, err := fx.uc.Checkout(context.Background(), 1, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_PaymentsDoNotCoverTotal(t *testing.T) {
	fx := newCheckoutFixture(true)

	req := cartRequest(20000)
	req.Payments[0].Amount = decimal.NewFromInt(15000)
	_, err := fx.uc.Checkout(context.Background(), 1, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_SplitPayment(t *testing.T) {
	fx := newCheckoutFixture(true)

	req := cartRequest(20000)
	req.Payments = []dto.CheckoutPayment{
		{Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(12000)},
		{Method: entity.PaymentMethodQRIS, Amount: decimal.NewFromInt(8000)},
	}
	_, err := fx.uc.Checkout(context.Background(), 1, req)
	require.NoError(t, err)

	require.Len(t, fx.orders.payments, 2)
	assert.Equal(t, entity.PaymentMethodCash, fx.orders.payments[0].Method)
	assert.Equal(t, entity.PaymentMethodQRIS, fx.orders.payments[1].Method)
}

func TestCheckout_MissingProductRollsBackEverything(t *testing.T) {
	fx := newCheckoutFixture(true)

	req := dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10000)},
			{ProductID: 999, Quantity: 1, Price: decimal.NewFromInt(5000)},
		},
		Payments: []dto.CheckoutPayment{
			{Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(15000)},
		},
		TotalAmount: decimal.NewFromInt(15000),
	}
	_, err := fx.uc.Checkout(context.Background(), 1, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The valid first line must not survive the failed transaction.
	assert.Empty(t, fx.orders.orders)
	assert.Empty(t, fx.orders.items)
	assert.Equal(t, 5, fx.products.products[1].Stock)
}

func TestCheckout_OversellGoesNegative(t *testing.T) {
	fx := newCheckoutFixture(true)

	req := dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{ProductID: 2, Quantity: 10, Price: decimal.NewFromInt(15000)},
		},
		Payments: []dto.CheckoutPayment{
			{Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(150000)},
		},
		TotalAmount: decimal.NewFromInt(150000),
	}
	_, err := fx.uc.Checkout(context.Background(), 1, req)
	require.NoError(t, err)

	assert.Equal(t, -7, fx.products.products[2].Stock)
}

func TestCheckout_WritesAuditEntry(t *testing.T) {
	fx := newCheckoutFixture(true)

	_, err := fx.uc.Checkout(context.Background(), 1, cartRequest(20000))
	require.NoError(t, err)

	require.Len(t, fx.audits.entries, 1)
	entry := fx.audits.entries[0]
	assert.Equal(t, entity.AuditActionCreate, entry.Action)
	assert.Equal(t, entity.AuditEntityOrder, entry.Entity)
	require.NotNil(t, entry.NewValue)
	assert.Contains(t, *entry.NewValue, "INV-")
}

func TestCheckout_DiscountDerivedFromSubtotal(t *testing.T) {
	fx := newCheckoutFixture(true)

	// Cart lines sum to 20000 but the charged total is 18000.
	req := cartRequest(18000)
	_, err := fx.uc.Checkout(context.Background(), 1, req)
	require.NoError(t, err)

	order := fx.orders.orders[0]
	assert.True(t, order.SubtotalAmount.Equal(decimal.NewFromInt(20000)))
	assert.True(t, order.DiscountAmount.Equal(decimal.NewFromInt(2000)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(18000)))
}
