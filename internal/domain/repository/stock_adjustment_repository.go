package repository

import (
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
)

// StockAdjustmentFilter narrows adjustment listings. Nil fields mean
// "no filter"; Limit/Offset page the result.
type StockAdjustmentFilter struct {
	ProductID *int64
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockAdjustmentRecord is an adjustment with its product and user expanded.
type StockAdjustmentRecord struct {
	entity.StockAdjustment
	ProductName string
	UserName    string
}

// StockAdjustmentRepository is the persistence port for the stock ledger.
type StockAdjustmentRepository interface {
	Create(adjustment *entity.StockAdjustment) error
	GetRecord(id int64) (*StockAdjustmentRecord, error)
	List(f StockAdjustmentFilter) ([]*StockAdjustmentRecord, error)
	Count(f StockAdjustmentFilter) (int, error)
	ExistsForProduct(productID int64) (bool, error)
}
