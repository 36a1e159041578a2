package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/shift"
)

// ShiftHandler handles the cash-drawer shift endpoints (protected; any
// authenticated role).
type ShiftHandler struct {
	uc *shift.UseCase
}

// NewShiftHandler builds the handler.
func NewShiftHandler(uc *shift.UseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Open godoc
// @Summary      Open a shift
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenShiftRequest  true  "Starting drawer cash"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts/open [post]
func (h *ShiftHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Open(c.Context(), GetUserID(c), in.InitialCash)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Close the open shift
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseShiftRequest  true  "Counted drawer cash"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts/close [post]
func (h *ShiftHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Close(c.Context(), GetUserID(c), in.ReportedCash)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOpen godoc
// @Summary      Current open shift
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/open [get]
func (h *ShiftHandler) GetOpen(c *fiber.Ctx) error {
	out, err := h.uc.GetOpen(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no open shift"})
	}
	return c.JSON(out)
}

// GetLast godoc
// @Summary      Caller's most recent shift
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/last [get]
func (h *ShiftHandler) GetLast(c *fiber.Ctx) error {
	out, err := h.uc.GetLast(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no shifts yet"})
	}
	return c.JSON(out)
}
