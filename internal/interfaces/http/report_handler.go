package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/application/usecase"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// ReportHandler handles the financial reporting surface (admin-only,
// router-enforced; dashboard open to any authenticated role).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Last 30 days when no range is given.
func reportRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, err
		}
		to = t
	}
	return from, to, nil
}

// Financial godoc
// @Summary      Financial report for a range
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "RFC3339 lower bound"
// @Param        to    query  string  false  "RFC3339 upper bound"
// @Success      200  {object}  dto.FinancialReportResponse
// @Router       /api/reports/financial [get]
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	from, to, err := reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid time range"})
	}
	out, err := h.uc.GetFinancialReport(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Top products by quantity sold
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "RFC3339 lower bound"
// @Param        to     query  string  false  "RFC3339 upper bound"
// @Param        limit  query  int     false  "Rows"  default(10)
// @Success      200  {array}  dto.TopProductResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	from, to, err := reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid time range"})
	}
	out, err := h.uc.GetTopProducts(c.Context(), from, to, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revenue godoc
// @Summary      Aggregated revenue series
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "RFC3339 lower bound"
// @Param        to      query  string  false  "RFC3339 upper bound"
// @Param        period  query  string  false  "daily, weekly, monthly or yearly"  default(daily)
// @Success      200  {array}  dto.RevenuePointResponse
// @Router       /api/reports/revenue [get]
func (h *ReportHandler) Revenue(c *fiber.Ctx) error {
	from, to, err := reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid time range"})
	}
	period := c.Query("period", repository.PeriodDaily)
	out, err := h.uc.GetAggregatedRevenue(c.Context(), from, to, period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Today's headline numbers
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
