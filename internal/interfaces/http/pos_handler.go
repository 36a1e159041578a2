package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/pos"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
)

// PosHandler handles the register screen: menu data and checkout
// (protected; any authenticated role).
type PosHandler struct {
	checkout  *pos.UseCase
	productUC *usecase.ProductUseCase
}

// NewPosHandler builds the handler.
func NewPosHandler(checkout *pos.UseCase, productUC *usecase.ProductUseCase) *PosHandler {
	return &PosHandler{checkout: checkout, productUC: productUC}
}

// Menu godoc
// @Summary      POS menu data
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PosMenuResponse
// @Router       /api/pos/menu [get]
func (h *PosHandler) Menu(c *fiber.Ctx) error {
	out, err := h.productUC.GetPosMenu(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Process a sale
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Cart, payments and total"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *PosHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.checkout.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
