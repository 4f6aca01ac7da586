package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfcastano/optica-distri/internal/application/analytics"
)

// DashboardHandler reportería y tendencias (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// SalesTrends godoc
// @Summary      Tendencias de venta agrupadas por período
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        shop_id  query  string  false  "Tienda (vacío = todas, solo distribuidor)"
// @Param        period   query  string  false  "day | week | month"  default(month)
// @Success      200  {object}  dto.SalesTrendsResponse
// @Router       /api/dashboard/sales-trends [get]
func (h *DashboardHandler) SalesTrends(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesTrends(c.UserContext(), ScopeFrom(c), c.Query("shop_id"), c.Query("period", "month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopFrames godoc
// @Summary      Monturas más vendidas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        shop_id  query  string  false  "Tienda (vacío = todas, solo distribuidor)"
// @Param        limit    query  int     false  "Cantidad de monturas"  default(10)
// @Success      200  {array}  dto.TopFrameDTO
// @Router       /api/dashboard/top-frames [get]
func (h *DashboardHandler) TopFrames(c *fiber.Ctx) error {
	out, err := h.uc.GetTopFrames(c.UserContext(), ScopeFrom(c), c.Query("shop_id"), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Alertas de quiebre de stock
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        shop_id  query  string  false  "Tienda (vacío = todas, solo distribuidor)"
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStockAlerts(c.UserContext(), ScopeFrom(c), c.Query("shop_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ShopSummary godoc
// @Summary      Métricas del mes en curso de una tienda
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        shop_id  query  string  false  "Tienda (el dueño usa la suya)"
// @Success      200  {object}  dto.ShopSalesSummaryDTO
// @Router       /api/dashboard/shop-summary [get]
func (h *DashboardHandler) ShopSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetShopSalesSummary(c.UserContext(), ScopeFrom(c), c.Query("shop_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RevenueSummary godoc
// @Summary      Resumen de ingresos del distribuidor con comparativo por tienda
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RevenueSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/revenue-summary [get]
func (h *DashboardHandler) RevenueSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetRevenueSummary(c.UserContext(), ScopeFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
