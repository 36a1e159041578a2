package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/inventory"
)

// InventoryHandler handles the stock adjustment ledger (protected).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Record a stock adjustment
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Adjustment"
// @Success      201   {object}  dto.StockAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Adjust(c.Context(), GetUserID(c), GetUserRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List stock adjustments
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int     false  "Filter by product"
// @Param        from        query  string  false  "RFC3339 lower bound"
// @Param        to          query  string  false  "RFC3339 upper bound"
// @Param        limit       query  int     false  "Page size"  default(20)
// @Param        page        query  int     false  "Page"       default(1)
// @Success      200  {object}  dto.ListAdjustmentsResponse
// @Router       /api/inventory/adjustments [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListAdjustmentsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query"})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
