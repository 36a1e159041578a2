package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
)

// respondError maps domain errors to HTTP responses. Unrecognized
// errors become a generic 500; internals are never leaked to clients.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid input"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied"})
	case errors.Is(err, domain.ErrNoOpenShift):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "no open shift; open a shift first"})
	case errors.Is(err, domain.ErrShiftAlreadyOpen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_ALREADY_OPEN", Message: "a shift is already open"})
	case errors.Is(err, domain.ErrProductInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_IN_USE", Message: "product has sales or adjustment history; archive it instead"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "resource already exists"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "transaction failed"})
	}
}
