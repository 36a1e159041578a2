package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
	deleted  []int64
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.ID] = &cp
	return nil
}
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error)      { return f.products[id], nil }
func (f *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return f.products[id], nil }
func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}
func (f *fakeProductRepo) UpdateStock(id int64, stock int) error {
	f.products[id].Stock = stock
	return nil
}
func (f *fakeProductRepo) SetMenuItem(id int64, isMenuItem bool) error {
	f.products[id].IsMenuItem = isMenuItem
	return nil
}
func (f *fakeProductRepo) SetArchived(id int64, isArchived bool) error {
	f.products[id].IsArchived = isArchived
	return nil
}
func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.IsArchived && !filter.IncludeArchived {
			continue
		}
		if filter.IsMenuItem != nil && p.IsMenuItem != *filter.IsMenuItem {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(id int64) error {
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error { return nil }
func (f *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCategoryRepo) List() ([]*entity.Category, error) { return f.categories, nil }

type fakeOrderRepo struct {
	soldProducts map[int64]bool
}

func (f *fakeOrderRepo) Create(o *entity.Order) error                           { return nil }
func (f *fakeOrderRepo) CreateItem(i *entity.OrderItem) error                   { return nil }
func (f *fakeOrderRepo) CreatePayment(p *entity.Payment) error                  { return nil }
func (f *fakeOrderRepo) GetByID(id int64) (*entity.Order, error)                { return nil, nil }
func (f *fakeOrderRepo) GetItemsByOrder(orderID int64) ([]*repository.OrderItemRecord, error) {
	return nil, nil
}
func (f *fakeOrderRepo) GetPaymentsByOrder(orderID int64) ([]*entity.Payment, error) {
	return nil, nil
}
func (f *fakeOrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) UpdateStatus(id int64, status string) error { return nil }
func (f *fakeOrderRepo) ExistsItemForProduct(productID int64) (bool, error) {
	return f.soldProducts[productID], nil
}
func (f *fakeOrderRepo) DeleteItemsByOrder(orderID int64) error    { return nil }
func (f *fakeOrderRepo) DeletePaymentsByOrder(orderID int64) error { return nil }
func (f *fakeOrderRepo) Delete(id int64) error                     { return nil }

type fakeAdjustmentRepo struct {
	adjustedProducts map[int64]bool
}

func (f *fakeAdjustmentRepo) Create(a *entity.StockAdjustment) error { return nil }
func (f *fakeAdjustmentRepo) GetRecord(id int64) (*repository.StockAdjustmentRecord, error) {
	return nil, nil
}
func (f *fakeAdjustmentRepo) List(filter repository.StockAdjustmentFilter) ([]*repository.StockAdjustmentRecord, error) {
	return nil, nil
}
func (f *fakeAdjustmentRepo) Count(filter repository.StockAdjustmentFilter) (int, error) {
	return 0, nil
}
func (f *fakeAdjustmentRepo) ExistsForProduct(productID int64) (bool, error) {
	return f.adjustedProducts[productID], nil
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

type productFixture struct {
	uc       *usecase.ProductUseCase
	products *fakeProductRepo
	orders   *fakeOrderRepo
	adjs     *fakeAdjustmentRepo
	audits   *fakeAuditRepo
}

func newProductFixture() *productFixture {
	products := &fakeProductRepo{products: map[int64]*entity.Product{}}
	categories := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: 1, Name: "Studio", Type: entity.CategoryTypeStudio},
		{ID: 2, Name: "Food & Beverage", Type: entity.CategoryTypeFB},
	}}
	orders := &fakeOrderRepo{soldProducts: map[int64]bool{}}
	adjs := &fakeAdjustmentRepo{adjustedProducts: map[int64]bool{}}
	audits := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := usecase.NewProductUseCase(products, categories, orders, adjs, audit.NewRecorder(audits, log))
	return &productFixture{uc: uc, products: products, orders: orders, adjs: adjs, audits: audits}
}

func (fx *productFixture) seedProduct(t *testing.T, name string) *dto.ProductResponse {
	t.Helper()
	out, err := fx.uc.Create(context.Background(), 1, dto.CreateProductRequest{
		CategoryID: 2,
		Name:       name,
		Price:      decimal.NewFromInt(10000),
		CostPrice:  decimal.NewFromInt(4000),
		Stock:      10,
	})
	require.NoError(t, err)
	return out
}

func TestProductCreate_UnknownCategory(t *testing.T) {
	fx := newProductFixture()

	_, err := fx.uc.Create(context.Background(), 1, dto.CreateProductRequest{
		CategoryID: 99,
		Name:       "Es Teh Manis",
		Price:      decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_NegativePriceRejected(t *testing.T) {
	fx := newProductFixture()

	_, err := fx.uc.Create(context.Background(), 1, dto.CreateProductRequest{
		CategoryID: 2,
		Name:       "Es Teh Manis",
		Price:      decimal.NewFromInt(-5000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_BlockedBySale(t *testing.T) {
	fx := newProductFixture()
	p := fx.seedProduct(t, "Kopi Susu")
	fx.orders.soldProducts[p.ID] = true

	err := fx.uc.Delete(context.Background(), 1, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductInUse)
	assert.NotNil(t, fx.products.products[p.ID])
}

func TestProductDelete_BlockedByAdjustment(t *testing.T) {
	fx := newProductFixture()
	p := fx.seedProduct(t, "Kopi Susu")
	fx.adjs.adjustedProducts[p.ID] = true

	err := fx.uc.Delete(context.Background(), 1, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductInUse)
}

func TestProductDelete_Unreferenced(t *testing.T) {
	fx := newProductFixture()
	p := fx.seedProduct(t, "Kopi Susu")

	err := fx.uc.Delete(context.Background(), 1, p.ID)
	require.NoError(t, err)
	assert.Nil(t, fx.products.products[p.ID])
}

func TestProductArchive_AlwaysSucceedsForReferenced(t *testing.T) {
	fx := newProductFixture()
	p := fx.seedProduct(t, "Kopi Susu")
	fx.orders.soldProducts[p.ID] = true
	fx.adjs.adjustedProducts[p.ID] = true

	require.NoError(t, fx.uc.Archive(context.Background(), 1, p.ID))
	assert.True(t, fx.products.products[p.ID].IsArchived)

	require.NoError(t, fx.uc.Unarchive(context.Background(), 1, p.ID))
	assert.False(t, fx.products.products[p.ID].IsArchived)
}

func TestProductUpdate_PartialKeepsFields(t *testing.T) {
	fx := newProductFixture()
	p := fx.seedProduct(t, "Kopi Susu")

	newPrice := decimal.NewFromInt(18000)
	out, err := fx.uc.Update(context.Background(), 1, p.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "Kopi Susu", out.Name)
	assert.True(t, out.CostPrice.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, 10, out.Stock)
}

func TestListCategories_DedupesByNormalizedName(t *testing.T) {
	categories := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: 1, Name: "Studio", Type: entity.CategoryTypeStudio},
		{ID: 2, Name: "studio ", Type: entity.CategoryTypeStudio},
		{ID: 3, Name: "Food & Beverage", Type: entity.CategoryTypeFB},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := usecase.NewProductUseCase(
		&fakeProductRepo{products: map[int64]*entity.Product{}},
		categories,
		&fakeOrderRepo{soldProducts: map[int64]bool{}},
		&fakeAdjustmentRepo{adjustedProducts: map[int64]bool{}},
		audit.NewRecorder(&fakeAuditRepo{}, log),
	)

	out, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Food & Beverage", out[0].Name)
	assert.Equal(t, "Studio", out[1].Name)
	assert.Equal(t, int64(1), out[1].ID)
}

func TestGetPosMenu_OnlyActiveMenuItems(t *testing.T) {
	fx := newProductFixture()
	menu := true
	fx.uc.Create(context.Background(), 1, dto.CreateProductRequest{
		CategoryID: 2, Name: "Kopi Susu", Price: decimal.NewFromInt(15000), IsMenuItem: &menu,
	})
	backOffice := fx.seedProduct(t, "Photo Paper Roll")
	archived, err := fx.uc.Create(context.Background(), 1, dto.CreateProductRequest{
		CategoryID: 2, Name: "Es Teh Manis", Price: decimal.NewFromInt(5000), IsMenuItem: &menu,
	})
	require.NoError(t, err)
	require.NoError(t, fx.uc.Archive(context.Background(), 1, archived.ID))

	out, err := fx.uc.GetPosMenu(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Products, 1)
	assert.Equal(t, "Kopi Susu", out.Products[0].Name)
	assert.NotEqual(t, backOffice.ID, out.Products[0].ID)
	assert.Len(t, out.Categories, 2)
}
