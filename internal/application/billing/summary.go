// Package billing contiene los casos de uso de facturación del distribuidor:
// resúmenes financieros mensuales por tienda y el reporte de cobro mensual.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/ledger"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// Clock inyecta el instante actual; nil usa time.Now.
type Clock func() time.Time

// SummaryUseCase lecturas de resúmenes financieros y reporte de cobro.
// Solo lecturas: los resúmenes los mantiene el caso de uso de ventas.
type SummaryUseCase struct {
	shopRepo      repository.ShopRepository
	summaryRepo   repository.FinancialSummaryRepository
	analyticsRepo repository.AnalyticsRepository
	now           Clock
}

// NewSummaryUseCase construye el caso de uso. clock nil usa time.Now.
func NewSummaryUseCase(
	shopRepo repository.ShopRepository,
	summaryRepo repository.FinancialSummaryRepository,
	analyticsRepo repository.AnalyticsRepository,
	clock Clock,
) *SummaryUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &SummaryUseCase{shopRepo: shopRepo, summaryRepo: summaryRepo, analyticsRepo: analyticsRepo, now: clock}
}

// GetShopSummary devuelve el resumen de (tienda, mes). month nil usa el mes en
// curso. Si el mes no tiene ventas devuelve un resumen en ceros sin crear fila:
// la lectura es idempotente y no muta estado.
func (uc *SummaryUseCase) GetShopSummary(_ context.Context, scope access.Scope, shopID string, month *time.Time) (*dto.FinancialSummaryResponse, error) {
	shop, err := uc.resolveShop(scope, shopID)
	if err != nil {
		return nil, err
	}

	key := ledger.MonthOf(uc.now())
	if month != nil {
		key = ledger.MonthOf(*month)
	}
	summary, err := uc.summaryRepo.Get(shop.ID, key)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		summary = &entity.ShopFinancialSummary{
			ShopID:                 shop.ID,
			Month:                  key,
			TotalRevenue:           decimal.Zero,
			TotalCost:              decimal.Zero,
			TotalProfit:            decimal.Zero,
			AmountToPayDistributor: decimal.Zero,
		}
	}
	return toSummaryResponse(summary), nil
}

// ListShopSummaries lista los resúmenes históricos de una tienda, mes
// descendente.
func (uc *SummaryUseCase) ListShopSummaries(_ context.Context, scope access.Scope, shopID string, page dto.PageRequest) ([]dto.FinancialSummaryResponse, error) {
	shop, err := uc.resolveShop(scope, shopID)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	summaries, err := uc.summaryRepo.ListByShop(shop.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FinancialSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, *toSummaryResponse(s))
	}
	return out, nil
}

// BillingReport arma el reporte de cobro de un mes agregando las transacciones
// SALE por montura, valuadas al costo snapshoteado en cada venta. month nil
// usa el mes en curso.
func (uc *SummaryUseCase) BillingReport(ctx context.Context, scope access.Scope, shopID string, month *time.Time) (*dto.BillingReportResponse, error) {
	shop, err := uc.resolveShop(scope, shopID)
	if err != nil {
		return nil, err
	}

	at := uc.now()
	if month != nil {
		at = *month
	}
	from, to := ledger.MonthRange(at)

	lines, err := uc.analyticsRepo.GetBillingReport(ctx, shop.ID, from, to)
	if err != nil {
		return nil, err
	}

	report := &dto.BillingReportResponse{
		ShopID:         shop.ID,
		ShopName:       shop.Name,
		Month:          monthKey(from),
		PeriodStart:    from,
		PeriodEnd:      to,
		TotalAmountDue: decimal.Zero,
		Items:          make([]dto.BillingReportLineDTO, 0, len(lines)),
	}
	for _, line := range lines {
		report.Items = append(report.Items, dto.BillingReportLineDTO{
			FrameID:      line.FrameID,
			ProductID:    line.ProductID,
			FrameName:    line.FrameName,
			QuantitySold: line.QuantitySold,
			TotalCost:    line.TotalCost,
		})
		report.TotalAmountDue = report.TotalAmountDue.Add(line.TotalCost)
	}
	return report, nil
}

// resolveShop valida existencia y alcance.
func (uc *SummaryUseCase) resolveShop(scope access.Scope, shopID string) (*entity.Shop, error) {
	if shopID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !scope.CanAccess(shopID) {
		return nil, domain.ErrForbidden
	}
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return shop, nil
}

func toSummaryResponse(s *entity.ShopFinancialSummary) *dto.FinancialSummaryResponse {
	return &dto.FinancialSummaryResponse{
		ShopID:                 s.ShopID,
		Month:                  monthKey(s.Month),
		TotalRevenue:           s.TotalRevenue,
		TotalCost:              s.TotalCost,
		TotalProfit:            s.TotalProfit,
		AmountToPayDistributor: s.AmountToPayDistributor,
		UnitsSold:              s.UnitsSold,
	}
}

// monthKey formatea el mes como YYYY-MM.
func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
