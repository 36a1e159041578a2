package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// OrderHandler handles the back-office order surface (admin-only,
// router-enforced).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func parseTimeRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if v := c.Query("from"); v != "" {
		t, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}

// List godoc
// @Summary      List orders
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "RFC3339 lower bound"
// @Param        to      query  string  false  "RFC3339 upper bound"
// @Param        status  query  string  false  "COMPLETED or VOID"
// @Param        limit   query  int     false  "Max rows"  default(50)
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	from, to, err := parseTimeRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid time range"})
	}
	f := repository.OrderFilter{
		From:   from,
		To:     to,
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 50),
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get order by id
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid id"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Void godoc
// @Summary      Void an order (no restock)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/void [post]
func (h *OrderHandler) Void(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid id"})
	}
	out, err := h.uc.Void(c.Context(), GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an order with its items and payments
// @Tags         orders
// @Security     Bearer
// @Param        id  path  int  true  "Order id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid id"})
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Order receipt as PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "Order id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid id"})
	}
	pdfBytes, err := h.uc.ReceiptPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
