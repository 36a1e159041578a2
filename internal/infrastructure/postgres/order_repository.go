package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, invoice_number, user_id, subtotal_amount, discount_amount, discount_percent, total_amount, status, created_at`

// OrderRepo implements OrderRepository on PostgreSQL (pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the persistence adapter for orders.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists a new order header.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (invoice_number, user_id, subtotal_amount, discount_amount, discount_percent, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.InvoiceNumber, order.UserID, order.SubtotalAmount, order.DiscountAmount,
		order.DiscountPercent, order.TotalAmount, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persists one order line.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price_at_sale, cost_at_sale)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.OrderID, item.ProductID, item.Quantity, item.PriceAtSale, item.CostAtSale,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// CreatePayment persists one tendered payment.
func (r *OrderRepo) CreatePayment(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, method, amount, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		payment.OrderID, payment.Method, payment.Amount,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches an order header by id. Returns nil when absent.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.InvoiceNumber, &o.UserID, &o.SubtotalAmount, &o.DiscountAmount,
		&o.DiscountPercent, &o.TotalAmount, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItemsByOrder returns the order's lines with product names joined.
// LEFT JOIN: a line survives its product's deletion with an empty name.
func (r *OrderRepo) GetItemsByOrder(orderID int64) ([]*repository.OrderItemRecord, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price_at_sale, oi.cost_at_sale,
		       COALESCE(p.name, '')
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var out []*repository.OrderItemRecord
	for rows.Next() {
		var rec repository.OrderItemRecord
		if err := rows.Scan(
			&rec.ID, &rec.OrderID, &rec.ProductID, &rec.Quantity,
			&rec.PriceAtSale, &rec.CostAtSale, &rec.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// GetPaymentsByOrder returns the order's payments.
func (r *OrderRepo) GetPaymentsByOrder(orderID int64) ([]*entity.Payment, error) {
	query := `SELECT id, order_id, method, amount, created_at FROM payments WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// List returns order headers matching the filter, newest first.
func (r *OrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.InvoiceNumber, &o.UserID, &o.SubtotalAmount, &o.DiscountAmount,
			&o.DiscountPercent, &o.TotalAmount, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// UpdateStatus sets the order status (COMPLETED -> VOID).
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	if _, err := r.q.Exec(context.Background(), `UPDATE orders SET status = $2 WHERE id = $1`, id, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// ExistsItemForProduct reports whether any order line references the product.
func (r *OrderRepo) ExistsItemForProduct(productID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM order_items WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check order items for product: %w", err)
	}
	return exists, nil
}

// DeleteItemsByOrder removes all lines of an order.
func (r *OrderRepo) DeleteItemsByOrder(orderID int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// DeletePaymentsByOrder removes all payments of an order.
func (r *OrderRepo) DeletePaymentsByOrder(orderID int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete payments: %w", err)
	}
	return nil
}

// Delete removes the order header.
func (r *OrderRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
