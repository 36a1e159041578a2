package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/auth"
	"github.com/lintangrafi/POS-Kygoo/internal/application/inventory"
	"github.com/lintangrafi/POS-Kygoo/internal/application/pos"
	"github.com/lintangrafi/POS-Kygoo/internal/application/shift"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	infrapdf "github.com/lintangrafi/POS-Kygoo/internal/infrastructure/pdf"
	"github.com/lintangrafi/POS-Kygoo/internal/infrastructure/postgres"
	httpRouter "github.com/lintangrafi/POS-Kygoo/internal/interfaces/http"
	"github.com/lintangrafi/POS-Kygoo/pkg/config"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	adjustmentRepo := postgres.NewStockAdjustmentRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditor := audit.NewRecorder(auditRepo, log)
	auditUC := audit.NewUseCase(auditRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	checkoutUC := pos.NewUseCase(txRunner, shiftRepo, auditor, log)
	shiftUC := shift.NewUseCase(shiftRepo, userRepo)
	inventoryUC := inventory.NewUseCase(txRunner, adjustmentRepo, auditor)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, orderRepo, adjustmentRepo, auditor)
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	orderUC := usecase.NewOrderUseCase(orderRepo, userRepo, txRunner, auditor, receiptGen)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, userRepo, auditor)
	reportUC := usecase.NewReportUseCase(reportRepo, orderRepo)
	userUC := usecase.NewUserUseCase(userRepo, auditor)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CheckoutUC:  checkoutUC,
		ShiftUC:     shiftUC,
		InventoryUC: inventoryUC,
		ProductUC:   productUC,
		OrderUC:     orderUC,
		ExpenseUC:   expenseUC,
		ReportUC:    reportUC,
		UserUC:      userUC,
		AuditUC:     auditUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
