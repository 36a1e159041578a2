package repository

import "github.com/lintangrafi/POS-Kygoo/internal/domain/entity"

// ProductFilter narrows product listings. Nil fields mean "no filter".
type ProductFilter struct {
	IsMenuItem      *bool
	IncludeArchived bool
}

// ProductRepository is the persistence port for Product.
// Stock is only written through UpdateStock, and only from inside a
// transaction that also records the movement (checkout or adjustment).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate locks the product row (SELECT ... FOR UPDATE); call
	// it on a tx-bound repository only. Returns nil if absent.
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id int64, stock int) error
	SetMenuItem(id int64, isMenuItem bool) error
	SetArchived(id int64, isArchived bool) error
	List(f ProductFilter) ([]*entity.Product, error)
	Delete(id int64) error
}
