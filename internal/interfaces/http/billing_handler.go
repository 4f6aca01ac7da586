package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jfcastano/optica-distri/internal/application/billing"
	"github.com/jfcastano/optica-distri/internal/application/dto"
)

// BillingHandler resúmenes financieros mensuales y reportes de cobro (protegido).
type BillingHandler struct {
	summaries *billing.SummaryUseCase
	pdf       *billing.PDFUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(summaries *billing.SummaryUseCase, pdf *billing.PDFUseCase) *BillingHandler {
	return &BillingHandler{summaries: summaries, pdf: pdf}
}

// monthParam parsea el query param month (YYYY-MM). nil si está vacío.
func monthParam(c *fiber.Ctx) (*time.Time, error) {
	raw := c.Query("month")
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return nil, fmt.Errorf("month debe tener formato YYYY-MM")
	}
	return &t, nil
}

// GetSummary godoc
// @Summary      Resumen financiero mensual de una tienda
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        shop_id  path   string  true   "Tienda"
// @Param        month    query  string  false  "Mes YYYY-MM (default: mes en curso)"
// @Success      200  {object}  dto.FinancialSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{shop_id}/summary [get]
func (h *BillingHandler) GetSummary(c *fiber.Ctx) error {
	month, err := monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.summaries.GetShopSummary(c.UserContext(), ScopeFrom(c), c.Params("shop_id"), month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListSummaries godoc
// @Summary      Historial de resúmenes mensuales de una tienda
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        shop_id  path   string  true   "Tienda"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.FinancialSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/billing/{shop_id}/summaries [get]
func (h *BillingHandler) ListSummaries(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.summaries.ListShopSummaries(c.UserContext(), ScopeFrom(c), c.Params("shop_id"), dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetReport godoc
// @Summary      Reporte de cobro del mes: unidades vendidas por montura y costo a pagar
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        shop_id  path   string  true   "Tienda"
// @Param        month    query  string  false  "Mes YYYY-MM (default: mes en curso)"
// @Success      200  {object}  dto.BillingReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{shop_id}/report [get]
func (h *BillingHandler) GetReport(c *fiber.Ctx) error {
	month, err := monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.summaries.BillingReport(c.UserContext(), ScopeFrom(c), c.Params("shop_id"), month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetReportPDF godoc
// @Summary      Reporte de cobro del mes en PDF
// @Tags         billing
// @Security     Bearer
// @Produce      application/pdf
// @Param        shop_id  path   string  true   "Tienda"
// @Param        month    query  string  false  "Mes YYYY-MM (default: mes en curso)"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/{shop_id}/report/pdf [get]
func (h *BillingHandler) GetReportPDF(c *fiber.Ctx) error {
	month, err := monthParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, err := h.pdf.GenerateBillingPDF(c.UserContext(), ScopeFrom(c), c.Params("shop_id"), month)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-cobro.pdf"`)
	return c.Send(pdfBytes)
}
