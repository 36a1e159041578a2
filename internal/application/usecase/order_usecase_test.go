package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

// fakeOrderStore is a stateful order repository: orders, items and
// payments live in maps keyed by order id.
type fakeOrderStore struct {
	orders   map[int64]*entity.Order
	items    map[int64][]*repository.OrderItemRecord
	payments map[int64][]*entity.Payment
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders:   map[int64]*entity.Order{},
		items:    map[int64][]*repository.OrderItemRecord{},
		payments: map[int64][]*entity.Payment{},
	}
}

func (f *fakeOrderStore) Create(o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}
func (f *fakeOrderStore) CreateItem(i *entity.OrderItem) error    { return nil }
func (f *fakeOrderStore) CreatePayment(p *entity.Payment) error   { return nil }
func (f *fakeOrderStore) GetByID(id int64) (*entity.Order, error) { return f.orders[id], nil }
func (f *fakeOrderStore) GetItemsByOrder(orderID int64) ([]*repository.OrderItemRecord, error) {
	return f.items[orderID], nil
}
func (f *fakeOrderStore) GetPaymentsByOrder(orderID int64) ([]*entity.Payment, error) {
	return f.payments[orderID], nil
}
func (f *fakeOrderStore) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
func (f *fakeOrderStore) UpdateStatus(id int64, status string) error {
	f.orders[id].Status = status
	return nil
}
func (f *fakeOrderStore) ExistsItemForProduct(productID int64) (bool, error) { return false, nil }
func (f *fakeOrderStore) DeleteItemsByOrder(orderID int64) error {
	delete(f.items, orderID)
	return nil
}
func (f *fakeOrderStore) DeletePaymentsByOrder(orderID int64) error {
	delete(f.payments, orderID)
	return nil
}
func (f *fakeOrderStore) Delete(id int64) error {
	delete(f.orders, id)
	return nil
}

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = int64(len(f.users) + 1)
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) { return f.users[id], nil }
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

type fakeOrderTxRunner struct {
	store *fakeOrderStore
	runs  int
}

func (f *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	f.runs++
	return fn(f.store)
}

type fakeReceiptGenerator struct {
	last *usecase.ReceiptData
}

func (f *fakeReceiptGenerator) GenerateReceipt(ctx context.Context, data *usecase.ReceiptData) ([]byte, error) {
	f.last = data
	return []byte("%PDF-1.7"), nil
}

type orderFixture struct {
	uc       *usecase.OrderUseCase
	store    *fakeOrderStore
	txRunner *fakeOrderTxRunner
	receipts *fakeReceiptGenerator
	audits   *fakeAuditRepo
}

func newOrderFixture() *orderFixture {
	store := newFakeOrderStore()
	users := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, Name: "Kasir Satu", Email: "kasir@kygoo.local", Role: entity.RoleCashier},
	}}
	txRunner := &fakeOrderTxRunner{store: store}
	receipts := &fakeReceiptGenerator{}
	audits := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := usecase.NewOrderUseCase(store, users, txRunner, audit.NewRecorder(audits, log), receipts)
	return &orderFixture{uc: uc, store: store, txRunner: txRunner, receipts: receipts, audits: audits}
}

func (fx *orderFixture) seedOrder(id int64) *entity.Order {
	order := &entity.Order{
		ID:             id,
		InvoiceNumber:  "INV-1756300000000",
		UserID:         1,
		SubtotalAmount: decimal.NewFromInt(25000),
		TotalAmount:    decimal.NewFromInt(25000),
		Status:         entity.OrderStatusCompleted,
		CreatedAt:      time.Now(),
	}
	fx.store.orders[id] = order
	fx.store.items[id] = []*repository.OrderItemRecord{
		{
			OrderItem: entity.OrderItem{
				ID: 1, OrderID: id, ProductID: 1, Quantity: 1,
				PriceAtSale: decimal.NewFromInt(10000), CostAtSale: decimal.NewFromInt(4000),
			},
			ProductName: "Es Teh Manis",
		},
		{
			OrderItem: entity.OrderItem{
				ID: 2, OrderID: id, ProductID: 2, Quantity: 1,
				PriceAtSale: decimal.NewFromInt(15000), CostAtSale: decimal.NewFromInt(6000),
			},
			ProductName: "Kopi Susu",
		},
	}
	fx.store.payments[id] = []*entity.Payment{
		{ID: 1, OrderID: id, Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(25000)},
	}
	return order
}

func TestOrderVoid_KeepsItemsAndPayments(t *testing.T) {
	fx := newOrderFixture()
	fx.seedOrder(10)

	out, err := fx.uc.Void(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusVoid, out.Status)
	assert.Equal(t, entity.OrderStatusVoid, fx.store.orders[10].Status)
	assert.Len(t, fx.store.items[10], 2)
	assert.Len(t, fx.store.payments[10], 1)
}

func TestOrderVoid_NotFound(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.uc.Void(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderDelete_PurgesEverythingInOneTx(t *testing.T) {
	fx := newOrderFixture()
	fx.seedOrder(10)

	err := fx.uc.Delete(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Nil(t, fx.store.orders[10])
	assert.Empty(t, fx.store.items[10])
	assert.Empty(t, fx.store.payments[10])
	assert.Equal(t, 1, fx.txRunner.runs)
	require.Len(t, fx.audits.entries, 1)
	assert.Equal(t, entity.AuditActionDelete, fx.audits.entries[0].Action)
}

func TestOrderGetByID_ExpandsItemsAndPayments(t *testing.T) {
	fx := newOrderFixture()
	fx.seedOrder(10)

	out, err := fx.uc.GetByID(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "Kasir Satu", out.UserName)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Es Teh Manis", out.Items[0].ProductName)
	require.Len(t, out.Payments, 1)
	assert.Equal(t, entity.PaymentMethodCash, out.Payments[0].Method)
}

func TestOrderReceiptPDF_IncludesCashierName(t *testing.T) {
	fx := newOrderFixture()
	fx.seedOrder(10)

	pdf, err := fx.uc.ReceiptPDF(context.Background(), 10)
	require.NoError(t, err)

	assert.NotEmpty(t, pdf)
	require.NotNil(t, fx.receipts.last)
	assert.Equal(t, "Kasir Satu", fx.receipts.last.CashierName)
	assert.Len(t, fx.receipts.last.Items, 2)
}
