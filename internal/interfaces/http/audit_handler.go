package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
)

// AuditHandler serves the audit trail (admin-only, router-enforced).
type AuditHandler struct {
	uc *audit.UseCase
}

// NewAuditHandler builds the handler.
func NewAuditHandler(uc *audit.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      List audit log entries
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "RFC3339 lower bound"
// @Param        to     query  string  false  "RFC3339 upper bound"
// @Param        limit  query  int     false  "Max rows"  default(100)
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	from, to, err := parseTimeRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid time range"})
	}
	out, err := h.uc.List(c.Context(), from, to, c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
