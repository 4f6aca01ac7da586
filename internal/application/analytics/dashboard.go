// Package analytics contiene los casos de uso de reportería: tendencias de
// venta, monturas más vendidas, alertas de quiebre de stock y resúmenes de
// ingreso para los dashboards del distribuidor y de las tiendas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/ledger"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

const defaultTopFrames = 10

// Clock inyecta el instante actual; nil usa time.Now.
type Clock func() time.Time

// DashboardUseCase consultas de solo lectura sobre el journal y el ledger.
// Todo pasa por AnalyticsRepository; este caso de uso solo resuelve alcance,
// rangos de fecha y formato.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           Clock
}

// NewDashboardUseCase construye el caso de uso. clock nil usa time.Now.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, clock Clock) *DashboardUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: clock}
}

// scopedShop resuelve el shopID efectivo: un dueño de tienda queda fijo a la
// suya; el distribuidor puede pedir una tienda específica o todas (vacío).
func scopedShop(scope access.Scope, requested string) (string, error) {
	if scope.AllShops() {
		return requested, nil
	}
	if requested != "" && requested != scope.ShopID() {
		return "", domain.ErrForbidden
	}
	return scope.ShopID(), nil
}

// GetSalesTrends series de venta agrupadas por day, week o month.
// Un período desconocido cae a month.
func (uc *DashboardUseCase) GetSalesTrends(ctx context.Context, scope access.Scope, shopID, period string) (*dto.SalesTrendsResponse, error) {
	shopID, err := scopedShop(scope, shopID)
	if err != nil {
		return nil, err
	}
	switch period {
	case repository.TrendPeriodDay, repository.TrendPeriodWeek, repository.TrendPeriodMonth:
	default:
		period = repository.TrendPeriodMonth
	}

	points, err := uc.analyticsRepo.GetSalesTrends(ctx, shopID, period)
	if err != nil {
		return nil, err
	}
	resp := &dto.SalesTrendsResponse{Period: period, Trends: make([]dto.SalesTrendPointDTO, 0, len(points))}
	for _, p := range points {
		resp.Trends = append(resp.Trends, dto.SalesTrendPointDTO{
			Period:       formatPeriod(p.Period, period),
			UnitsSold:    p.UnitsSold,
			TotalRevenue: p.TotalRevenue,
		})
	}
	return resp, nil
}

// GetTopFrames monturas más vendidas por unidades, con ingreso acumulado.
func (uc *DashboardUseCase) GetTopFrames(ctx context.Context, scope access.Scope, shopID string, limit int) ([]dto.TopFrameDTO, error) {
	shopID, err := scopedShop(scope, shopID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopFrames
	}
	results, err := uc.analyticsRepo.GetTopFrames(ctx, shopID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopFrameDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.TopFrameDTO{
			FrameID:      r.FrameID,
			ProductID:    r.ProductID,
			FrameName:    r.FrameName,
			UnitsSold:    r.UnitsSold,
			TotalRevenue: r.TotalRevenue,
		})
	}
	return out, nil
}

// GetLowStockAlerts filas del ledger por debajo del umbral de reposición.
func (uc *DashboardUseCase) GetLowStockAlerts(ctx context.Context, scope access.Scope, shopID string) ([]dto.LowStockItemDTO, error) {
	shopID, err := scopedShop(scope, shopID)
	if err != nil {
		return nil, err
	}
	items, err := uc.analyticsRepo.GetLowStock(ctx, shopID, ledger.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.LowStockItemDTO{
			ShopID:            item.ShopID,
			ShopName:          item.ShopName,
			FrameID:           item.FrameID,
			ProductID:         item.ProductID,
			FrameName:         item.FrameName,
			QuantityRemaining: item.QuantityRemaining,
			LastRestocked:     item.LastRestocked,
		})
	}
	return out, nil
}

// GetShopSalesSummary métricas del mes en curso para una tienda: unidades
// vendidas, ingreso y stock disponible.
func (uc *DashboardUseCase) GetShopSalesSummary(ctx context.Context, scope access.Scope, shopID string) (*dto.ShopSalesSummaryDTO, error) {
	shopID, err := scopedShop(scope, shopID)
	if err != nil {
		return nil, err
	}
	if shopID == "" {
		return nil, domain.ErrInvalidInput
	}

	from, to := ledger.MonthRange(uc.now())
	units, revenue, _, err := uc.analyticsRepo.GetSalesMetrics(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	inStock, err := uc.analyticsRepo.GetStockOnHand(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return &dto.ShopSalesSummaryDTO{
		ShopID:       shopID,
		Month:        formatPeriod(from, repository.TrendPeriodMonth),
		UnitsSold:    units,
		TotalRevenue: revenue,
		ItemsInStock: inStock,
	}, nil
}

// GetRevenueSummary resumen del mes en curso para el distribuidor: totales
// globales más el comparativo por tienda. Solo alcance distribuidor.
func (uc *DashboardUseCase) GetRevenueSummary(ctx context.Context, scope access.Scope) (*dto.RevenueSummaryDTO, error) {
	if !scope.AllShops() {
		return nil, domain.ErrForbidden
	}

	from, to := ledger.MonthRange(uc.now())
	units, revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, "", from, to)
	if err != nil {
		return nil, err
	}
	perShop, err := uc.analyticsRepo.GetShopPerformance(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.RevenueSummaryDTO{
		Month:        formatPeriod(from, repository.TrendPeriodMonth),
		UnitsSold:    units,
		TotalRevenue: revenue,
		TotalCost:    cost,
		TotalProfit:  revenue.Sub(cost),
		Shops:        make([]dto.ShopPerformanceDTO, 0, len(perShop)),
	}
	for _, s := range perShop {
		resp.Shops = append(resp.Shops, dto.ShopPerformanceDTO{
			ShopID:       s.ShopID,
			ShopName:     s.ShopName,
			UnitsSold:    s.UnitsSold,
			TotalRevenue: s.TotalRevenue,
			TotalProfit:  s.TotalProfit,
		})
	}
	return resp, nil
}

// formatPeriod formatea el inicio del bucket según la agrupación.
func formatPeriod(t time.Time, period string) string {
	switch period {
	case repository.TrendPeriodDay:
		return t.Format("2006-01-02")
	case repository.TrendPeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return t.Format("2006-01")
	}
}
