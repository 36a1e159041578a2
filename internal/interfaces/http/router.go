package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/auth"
	"github.com/lintangrafi/POS-Kygoo/internal/application/inventory"
	"github.com/lintangrafi/POS-Kygoo/internal/application/pos"
	"github.com/lintangrafi/POS-Kygoo/internal/application/shift"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
)

// RouterDeps collects everything the router wires up.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CheckoutUC  *pos.UseCase
	ShiftUC     *shift.UseCase
	InventoryUC *inventory.UseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *usecase.OrderUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	ReportUC    *usecase.ReportUseCase
	UserUC      *usecase.UserUseCase
	AuditUC     *audit.UseCase
	JWTSecret   string
}

// Router registers the API routes. Reads and cashier operations need a
// valid session; back-office mutations additionally need ADMIN or
// SUPERADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := protected.Group("/", RequireAdmin())

	// POS (cashier)
	posHandler := NewPosHandler(deps.CheckoutUC, deps.ProductUC)
	protected.Get("/pos/menu", posHandler.Menu)
	protected.Post("/pos/checkout", posHandler.Checkout)

	// Shifts (cashier)
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	protected.Post("/shifts/open", shiftHandler.Open)
	protected.Post("/shifts/close", shiftHandler.Close)
	protected.Get("/shifts/open", shiftHandler.GetOpen)
	protected.Get("/shifts/last", shiftHandler.GetLast)

	// Inventory ledger
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Get("/inventory/adjustments", inventoryHandler.List)
	admin.Post("/inventory/adjustments", inventoryHandler.Adjust)

	// Products: reads for all roles, writes admin-only
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/products", productHandler.List)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Get("/categories", productHandler.ListCategories)
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Patch("/products/:id/menu-item", productHandler.ToggleMenuItem)
	admin.Post("/products/:id/archive", productHandler.Archive)
	admin.Post("/products/:id/unarchive", productHandler.Unarchive)
	admin.Delete("/products/:id", productHandler.Delete)

	// Orders (admin)
	orderHandler := NewOrderHandler(deps.OrderUC)
	admin.Get("/orders", orderHandler.List)
	admin.Get("/orders/:id", orderHandler.GetByID)
	admin.Get("/orders/:id/receipt", orderHandler.Receipt)
	admin.Post("/orders/:id/void", orderHandler.Void)
	admin.Delete("/orders/:id", orderHandler.Delete)

	// Expenses: listing for all roles, writes admin-only
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	protected.Get("/expenses", expenseHandler.List)
	admin.Post("/expenses", expenseHandler.Create)
	admin.Put("/expenses/:id", expenseHandler.Update)
	admin.Delete("/expenses/:id", expenseHandler.Delete)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/dashboard", reportHandler.Dashboard)
	admin.Get("/reports/financial", reportHandler.Financial)
	admin.Get("/reports/top-products", reportHandler.TopProducts)
	admin.Get("/reports/revenue", reportHandler.Revenue)

	// Operator accounts (admin)
	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", userHandler.List)
	admin.Get("/users/:id", userHandler.GetByID)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:id", userHandler.Update)

	// Audit trail
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", auditHandler.List)
}
