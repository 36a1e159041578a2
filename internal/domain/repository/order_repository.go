package repository

import (
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
)

// OrderFilter narrows order listings. Nil fields mean "no filter".
type OrderFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
	Limit  int
}

// OrderItemRecord is an order line with its product name expanded
// (joined at read time; the name on the receipt is the current one,
// prices stay the sale-time snapshots).
type OrderItemRecord struct {
	entity.OrderItem
	ProductName string
}

// OrderRepository is the persistence port for Order and its lines.
// Create* methods fill the entity ID from the database.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	CreatePayment(payment *entity.Payment) error
	GetByID(id int64) (*entity.Order, error)
	GetItemsByOrder(orderID int64) ([]*OrderItemRecord, error)
	GetPaymentsByOrder(orderID int64) ([]*entity.Payment, error)
	List(f OrderFilter) ([]*entity.Order, error)
	UpdateStatus(id int64, status string) error
	ExistsItemForProduct(productID int64) (bool, error)
	DeleteItemsByOrder(orderID int64) error
	DeletePaymentsByOrder(orderID int64) error
	Delete(id int64) error
}
