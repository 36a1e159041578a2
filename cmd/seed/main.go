// seed bootstraps the database: schema (idempotent), the partial unique
// index guaranteeing a single OPEN shift, a SUPERADMIN account and
// sample categories/products.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/infrastructure/postgres"
	"github.com/lintangrafi/POS-Kygoo/pkg/config"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL UNIQUE,
    password    TEXT NOT NULL,
    role        TEXT NOT NULL DEFAULT 'CASHIER' CHECK (role IN ('CASHIER', 'ADMIN', 'SUPERADMIN')),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    type        TEXT NOT NULL CHECK (type IN ('STUDIO', 'FB')),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    id            BIGSERIAL PRIMARY KEY,
    category_id   BIGINT NOT NULL REFERENCES categories(id),
    sku           TEXT UNIQUE,
    name          TEXT NOT NULL,
    price         NUMERIC(12,2) NOT NULL DEFAULT 0,
    cost_price    NUMERIC(12,2) NOT NULL DEFAULT 0,
    stock         INTEGER NOT NULL DEFAULT 0,
    is_menu_item  BOOLEAN NOT NULL DEFAULT false,
    is_archived   BOOLEAN NOT NULL DEFAULT false,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
    id                BIGSERIAL PRIMARY KEY,
    invoice_number    TEXT NOT NULL UNIQUE,
    user_id           BIGINT NOT NULL REFERENCES users(id),
    subtotal_amount   NUMERIC(12,2) NOT NULL DEFAULT 0,
    discount_amount   NUMERIC(12,2) NOT NULL DEFAULT 0,
    discount_percent  NUMERIC(5,2) NOT NULL DEFAULT 0,
    total_amount      NUMERIC(12,2) NOT NULL DEFAULT 0,
    status            TEXT NOT NULL DEFAULT 'COMPLETED' CHECK (status IN ('COMPLETED', 'VOID')),
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_items (
    id             BIGSERIAL PRIMARY KEY,
    order_id       BIGINT NOT NULL REFERENCES orders(id),
    product_id     BIGINT NOT NULL REFERENCES products(id),
    quantity       INTEGER NOT NULL,
    price_at_sale  NUMERIC(12,2) NOT NULL,
    cost_at_sale   NUMERIC(12,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    id          BIGSERIAL PRIMARY KEY,
    order_id    BIGINT NOT NULL REFERENCES orders(id),
    method      TEXT NOT NULL CHECK (method IN ('CASH', 'QRIS', 'TRANSFER')),
    amount      NUMERIC(12,2) NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS shifts (
    id                   BIGSERIAL PRIMARY KEY,
    user_id              BIGINT NOT NULL REFERENCES users(id),
    start_time           TIMESTAMPTZ NOT NULL DEFAULT now(),
    end_time             TIMESTAMPTZ,
    initial_cash         NUMERIC(12,2) NOT NULL DEFAULT 0,
    total_cash_received  NUMERIC(12,2),
    status               TEXT NOT NULL DEFAULT 'OPEN' CHECK (status IN ('OPEN', 'CLOSED'))
);

-- The drawer lock: at most one OPEN shift system-wide. Concurrent
-- opens race on this index instead of a check-then-insert.
CREATE UNIQUE INDEX IF NOT EXISTS shifts_single_open_idx
    ON shifts ((status)) WHERE status = 'OPEN';

CREATE TABLE IF NOT EXISTS stock_adjustments (
    id          BIGSERIAL PRIMARY KEY,
    product_id  BIGINT NOT NULL REFERENCES products(id),
    user_id     BIGINT NOT NULL REFERENCES users(id),
    change      INTEGER NOT NULL,
    type        TEXT NOT NULL CHECK (type IN ('IN', 'OUT', 'ADJUSTMENT')),
    reason      TEXT,
    reference   TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS audit_logs (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT REFERENCES users(id),
    action     TEXT NOT NULL,
    entity     TEXT NOT NULL,
    entity_id  BIGINT,
    old_value  TEXT,
    new_value  TEXT,
    timestamp  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS expenses (
    id           BIGSERIAL PRIMARY KEY,
    user_id      BIGINT NOT NULL REFERENCES users(id),
    description  TEXT NOT NULL,
    amount       NUMERIC(12,2) NOT NULL,
    category     TEXT NOT NULL CHECK (category IN ('SUPPLIES', 'UTILITIES', 'MAINTENANCE', 'OTHER')),
    date         TIMESTAMPTZ NOT NULL,
    notes        TEXT,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at);
CREATE INDEX IF NOT EXISTS order_items_product_idx ON order_items (product_id);
CREATE INDEX IF NOT EXISTS stock_adjustments_product_idx ON stock_adjustments (product_id);
CREATE INDEX IF NOT EXISTS audit_logs_timestamp_idx ON audit_logs (timestamp);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("create schema")
	}
	log.Info().Msg("schema ready")

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByEmail("admin@kygoo.local")
	if err != nil {
		log.Fatal().Err(err).Msg("check superadmin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		now := time.Now()
		admin := &entity.User{
			Name:         "Super Admin",
			Email:        "admin@kygoo.local",
			PasswordHash: string(hash),
			Role:         entity.RoleSuperAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("create superadmin")
		}
		log.Info().Str("email", admin.Email).Msg("superadmin created (change the password)")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	seedCatalog(categoryRepo, productRepo, log)
	log.Info().Msg("seed finished")
}

// seedCatalog inserts sample categories and products when the catalog
// is still empty.
func seedCatalog(categoryRepo *postgres.CategoryRepo, productRepo *postgres.ProductRepo, log *logger.Logger) {
	existing, err := categoryRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("list categories")
	}
	if len(existing) > 0 {
		return
	}

	now := time.Now()
	studio := &entity.Category{Name: "Studio", Type: entity.CategoryTypeStudio, CreatedAt: now}
	fnb := &entity.Category{Name: "Food & Beverage", Type: entity.CategoryTypeFB, CreatedAt: now}
	for _, c := range []*entity.Category{studio, fnb} {
		if err := categoryRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("category", c.Name).Msg("create category")
		}
	}

	samples := []*entity.Product{
		{CategoryID: studio.ID, Name: "Self Photo Session 15m", Price: dec(75000), CostPrice: dec(0), Stock: 0, IsMenuItem: true},
		{CategoryID: studio.ID, Name: "Photo Print 4R", Price: dec(10000), CostPrice: dec(2500), Stock: 200, IsMenuItem: true},
		{CategoryID: fnb.ID, Name: "Es Teh Manis", Price: dec(8000), CostPrice: dec(3000), Stock: 50, IsMenuItem: true},
		{CategoryID: fnb.ID, Name: "Kopi Susu", Price: dec(15000), CostPrice: dec(6000), Stock: 50, IsMenuItem: true},
	}
	for _, p := range samples {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("create product")
		}
	}
	log.Info().Int("products", len(samples)).Msg("sample catalog created")
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
