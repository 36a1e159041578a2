package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/inventory"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error            { return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) { return f.products[id], nil }
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

type fakeAdjustmentRepo struct {
	records []*repository.StockAdjustmentRecord
	nextID  int64
}

func (f *fakeAdjustmentRepo) Create(a *entity.StockAdjustment) error {
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	f.records = append(f.records, &repository.StockAdjustmentRecord{
		StockAdjustment: *a,
		ProductName:     "Kopi Susu",
		UserName:        "Admin",
	})
	return nil
}

func (f *fakeAdjustmentRepo) GetRecord(id int64) (*repository.StockAdjustmentRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAdjustmentRepo) List(filter repository.StockAdjustmentFilter) ([]*repository.StockAdjustmentRecord, error) {
	out := make([]*repository.StockAdjustmentRecord, 0, len(f.records))
	for i := len(f.records) - 1; i >= 0; i-- {
		r := f.records[i]
		if filter.ProductID != nil && r.ProductID != *filter.ProductID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAdjustmentRepo) Count(filter repository.StockAdjustmentFilter) (int, error) {
	rows, _ := f.List(filter)
	return len(rows), nil
}

func (f *fakeAdjustmentRepo) ExistsForProduct(productID int64) (bool, error) {
	for _, r := range f.records {
		if r.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
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

type fakeTxRunner struct {
	products    *fakeProductRepo
	adjustments *fakeAdjustmentRepo
}

func (f *fakeTxRunner) RunAdjustment(ctx context.Context, fn func(products repository.ProductRepository, adjustments repository.StockAdjustmentRepository) error) error {
	return fn(f.products, f.adjustments)
}

type fixture struct {
	uc       *inventory.UseCase
	products *fakeProductRepo
	adjs     *fakeAdjustmentRepo
	audits   *fakeAuditRepo
}

func newFixture(stock int) *fixture {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Kopi Susu", Price: decimal.NewFromInt(15000), Stock: stock},
	}}
	adjs := &fakeAdjustmentRepo{}
	audits := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := inventory.NewUseCase(&fakeTxRunner{products: products, adjustments: adjs}, adjs, audit.NewRecorder(audits, log))
	return &fixture{uc: uc, products: products, adjs: adjs, audits: audits}
}

func adjustReq(change int, typ string) dto.AdjustStockRequest {
	return dto.AdjustStockRequest{ProductID: 1, Change: change, Type: typ}
}

func TestAdjust_InIncreasesStock(t *testing.T) {
	fx := newFixture(10)

	out, err := fx.uc.Adjust(context.Background(), 1, entity.RoleAdmin, adjustReq(5, entity.AdjustmentTypeIn))
	require.NoError(t, err)

	assert.Equal(t, 15, fx.products.products[1].Stock)
	assert.Equal(t, 5, out.Change)
	assert.Equal(t, "Kopi Susu", out.ProductName)
}

func TestAdjust_OutStoresNegativeDelta(t *testing.T) {
	fx := newFixture(15)

	out, err := fx.uc.Adjust(context.Background(), 1, entity.RoleAdmin, adjustReq(3, entity.AdjustmentTypeOut))
	require.NoError(t, err)

	assert.Equal(t, 12, fx.products.products[1].Stock)
	assert.Equal(t, -3, out.Change)
}

func TestAdjust_SequenceSumsDeltas(t *testing.T) {
	fx := newFixture(10)
	ctx := context.Background()

	_, err := fx.uc.Adjust(ctx, 1, entity.RoleAdmin, adjustReq(5, entity.AdjustmentTypeIn))
	require.NoError(t, err)
	_, err = fx.uc.Adjust(ctx, 1, entity.RoleAdmin, adjustReq(3, entity.AdjustmentTypeOut))
	require.NoError(t, err)

	// 10 + 5 - 3
	assert.Equal(t, 12, fx.products.products[1].Stock)
	require.Len(t, fx.adjs.records, 2)
	assert.Equal(t, 5, fx.adjs.records[0].Change)
	assert.Equal(t, -3, fx.adjs.records[1].Change)
}

func TestAdjust_NonPositiveChangeRejected(t *testing.T) {
	fx := newFixture(10)

	_, err := fx.uc.Adjust(context.Background(), 1, entity.RoleAdmin, adjustReq(0, entity.AdjustmentTypeIn))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.Adjust(context.Background(), 1, entity.RoleAdmin, adjustReq(-5, entity.AdjustmentTypeIn))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_UnknownTypeRejected(t *testing.T) {
	fx := newFixture(10)

	_, err := fx.uc.Adjust(context.Background(), 1, entity.RoleAdmin, adjustReq(5, "RESTOCK"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_MissingProduct(t *testing.T) {
	fx := newFixture(10)

	req := adjustReq(5, entity.AdjustmentTypeIn)
	req.ProductID = 999
	_, err := fx.uc.Adjust(context.Background(), 1, entity.RoleAdmin, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.adjs.records)
}

func TestAdjust_OutMayGoNegative(t *testing.T) {
	fx := newFixture(2)

	_, err := fx.uc.Adjust(context.Background(), 1, entity.RoleAdmin, adjustReq(5, entity.AdjustmentTypeOut))
	require.NoError(t, err)

	assert.Equal(t, -3, fx.products.products[1].Stock)
}

func TestAdjust_AuditIncludesBeforeAfterAndRole(t *testing.T) {
	fx := newFixture(10)

	_, err := fx.uc.Adjust(context.Background(), 7, entity.RoleSuperAdmin, adjustReq(5, entity.AdjustmentTypeIn))
	require.NoError(t, err)

	require.Len(t, fx.audits.entries, 1)
	entry := fx.audits.entries[0]
	assert.Equal(t, entity.AuditActionAdjustStock, entry.Action)
	require.NotNil(t, entry.NewValue)
	assert.Contains(t, *entry.NewValue, `"stockBefore":10`)
	assert.Contains(t, *entry.NewValue, `"stockAfter":15`)
	assert.Contains(t, *entry.NewValue, entity.RoleSuperAdmin)
}

func TestList_NewestFirstWithTotal(t *testing.T) {
	fx := newFixture(10)
	ctx := context.Background()

	_, err := fx.uc.Adjust(ctx, 1, entity.RoleAdmin, adjustReq(5, entity.AdjustmentTypeIn))
	require.NoError(t, err)
	_, err = fx.uc.Adjust(ctx, 1, entity.RoleAdmin, adjustReq(2, entity.AdjustmentTypeOut))
	require.NoError(t, err)

	out, err := fx.uc.List(ctx, dto.ListAdjustmentsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Data, 2)
	assert.Equal(t, -2, out.Data[0].Change)
	assert.Equal(t, 5, out.Data[1].Change)
}
