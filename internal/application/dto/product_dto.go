package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	CategoryID int64           `json:"category_id" validate:"required,min=1"`
	SKU        *string         `json:"sku,omitempty"`
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Price      decimal.Decimal `json:"price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Stock      int             `json:"stock"`
	IsMenuItem *bool           `json:"is_menu_item,omitempty"`
}

// UpdateProductRequest body for PUT /api/products/:id; nil fields keep
// the current value.
type UpdateProductRequest struct {
	CategoryID *int64           `json:"category_id,omitempty"`
	SKU        *string          `json:"sku,omitempty"`
	Name       *string          `json:"name,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	CostPrice  *decimal.Decimal `json:"cost_price,omitempty"`
	IsMenuItem *bool            `json:"is_menu_item,omitempty"`
}

// ProductResponse is a product as the API returns it.
type ProductResponse struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	SKU        *string         `json:"sku,omitempty"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Stock      int             `json:"stock"`
	IsMenuItem bool            `json:"is_menu_item"`
	IsArchived bool            `json:"is_archived"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CategoryResponse is a category as the API returns it.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
