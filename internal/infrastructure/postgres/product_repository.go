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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category_id, sku, name, price, cost_price, stock, is_menu_item, is_archived, created_at, updated_at`

// ProductRepo implements ProductRepository on PostgreSQL (pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (category_id, sku, name, price, cost_price, stock, is_menu_item, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.CategoryID, product.SKU, product.Name, product.Price, product.CostPrice,
		product.Stock, product.IsMenuItem, product.IsArchived, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by id. Returns nil when absent.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate locks the product row (FOR UPDATE). Meaningful only on a
// tx-bound repository; the lock is held until commit/rollback.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *ProductRepo) getOne(query string, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Price, &p.CostPrice,
		&p.Stock, &p.IsMenuItem, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update writes the descriptive fields. Stock is excluded on purpose;
// it only moves through UpdateStock inside a transaction.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, sku = $3, name = $4, price = $5, cost_price = $6, is_menu_item = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.SKU, product.Name,
		product.Price, product.CostPrice, product.IsMenuItem, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock sets the absolute stock counter.
func (r *ProductRepo) UpdateStock(id int64, stock int) error {
	query := `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, stock); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// SetMenuItem flips POS menu visibility.
func (r *ProductRepo) SetMenuItem(id int64, isMenuItem bool) error {
	query := `UPDATE products SET is_menu_item = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, isMenuItem); err != nil {
		return fmt.Errorf("set menu item: %w", err)
	}
	return nil
}

// SetArchived flips the soft-delete flag.
func (r *ProductRepo) SetArchived(id int64, isArchived bool) error {
	query := `UPDATE products SET is_archived = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, isArchived); err != nil {
		return fmt.Errorf("set archived: %w", err)
	}
	return nil
}

// List returns products matching the filter, ordered by name.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if !f.IncludeArchived {
		query += ` AND is_archived = false`
	}
	if f.IsMenuItem != nil {
		args = append(args, *f.IsMenuItem)
		query += fmt.Sprintf(` AND is_menu_item = $%d`, len(args))
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Price, &p.CostPrice,
			&p.Stock, &p.IsMenuItem, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Delete hard-deletes a product row. Reference guards live in the use case.
func (r *ProductRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
