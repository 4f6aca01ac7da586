package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcastano/optica-distri/internal/application/billing"
	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

var fixedNow = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type memShopRepo struct {
	shops map[string]*entity.Shop
}

func (r *memShopRepo) Create(shop *entity.Shop) error { return nil }

func (r *memShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *memShopRepo) List(limit, offset int) ([]*entity.Shop, error) { return nil, nil }
func (r *memShopRepo) Update(shop *entity.Shop) error                 { return nil }
func (r *memShopRepo) Delete(id string) error                         { return nil }

// memSummaryRepo falla el test si el caso de uso intenta crear o mutar filas:
// las lecturas de resúmenes deben ser idempotentes.
type memSummaryRepo struct {
	t         *testing.T
	summaries []*entity.ShopFinancialSummary
}

func (r *memSummaryRepo) Get(shopID string, month time.Time) (*entity.ShopFinancialSummary, error) {
	for _, s := range r.summaries {
		if s.ShopID == shopID && s.Month.Equal(month) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSummaryRepo) GetOrCreateForUpdate(shopID string, month time.Time) (*entity.ShopFinancialSummary, error) {
	r.t.Fatal("una lectura no debe crear filas de resumen")
	return nil, nil
}

func (r *memSummaryRepo) Update(summary *entity.ShopFinancialSummary) error {
	r.t.Fatal("una lectura no debe actualizar resúmenes")
	return nil
}

func (r *memSummaryRepo) ListByShop(shopID string, limit, offset int) ([]*entity.ShopFinancialSummary, error) {
	var out []*entity.ShopFinancialSummary
	for _, s := range r.summaries {
		if s.ShopID == shopID {
			out = append(out, s)
		}
	}
	return out, nil
}

// stubAnalyticsRepo devuelve líneas fijas para el reporte de cobro y registra
// el rango consultado.
type stubAnalyticsRepo struct {
	billingLines []repository.BillingReportLine
	gotFrom      time.Time
	gotTo        time.Time
}

func (r *stubAnalyticsRepo) GetSalesTrends(ctx context.Context, shopID, period string) ([]repository.SalesTrendPoint, error) {
	return nil, nil
}

func (r *stubAnalyticsRepo) GetTopFrames(ctx context.Context, shopID string, limit int) ([]repository.TopFrameResult, error) {
	return nil, nil
}

func (r *stubAnalyticsRepo) GetLowStock(ctx context.Context, shopID string, threshold int) ([]repository.LowStockItem, error) {
	return nil, nil
}

func (r *stubAnalyticsRepo) GetBillingReport(ctx context.Context, shopID string, from, to time.Time) ([]repository.BillingReportLine, error) {
	r.gotFrom, r.gotTo = from, to
	return r.billingLines, nil
}

func (r *stubAnalyticsRepo) GetSalesMetrics(ctx context.Context, shopID string, from, to time.Time) (int, decimal.Decimal, decimal.Decimal, error) {
	return 0, decimal.Zero, decimal.Zero, nil
}

func (r *stubAnalyticsRepo) GetShopPerformance(ctx context.Context, from, to time.Time) ([]repository.ShopPerformanceResult, error) {
	return nil, nil
}

func (r *stubAnalyticsRepo) GetStockOnHand(ctx context.Context, shopID string) (int, error) {
	return 0, nil
}

func buildSummaryUseCase(t *testing.T, shops []*entity.Shop, summaries []*entity.ShopFinancialSummary, analytics *stubAnalyticsRepo) *billing.SummaryUseCase {
	t.Helper()
	shopRepo := &memShopRepo{shops: map[string]*entity.Shop{}}
	for _, s := range shops {
		shopRepo.shops[s.ID] = s
	}
	if analytics == nil {
		analytics = &stubAnalyticsRepo{}
	}
	return billing.NewSummaryUseCase(shopRepo, &memSummaryRepo{t: t, summaries: summaries}, analytics, fixedClock)
}

func TestGetShopSummary_MesSinVentasDevuelveCeros(t *testing.T) {
	shop := &entity.Shop{ID: "shop-1", Name: "Óptica Centro"}
	uc := buildSummaryUseCase(t, []*entity.Shop{shop}, nil, nil)

	// month nil usa el mes en curso del reloj inyectado (marzo 2025).
	resp, err := uc.GetShopSummary(context.Background(), access.Distributor("u"), "shop-1", nil)

	require.NoError(t, err)
	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, 0, resp.UnitsSold)
	assert.True(t, resp.TotalRevenue.IsZero())
	assert.True(t, resp.AmountToPayDistributor.IsZero())
}

func TestGetShopSummary_MesConVentas(t *testing.T) {
	shop := &entity.Shop{ID: "shop-1", Name: "Óptica Centro"}
	month := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	summary := &entity.ShopFinancialSummary{
		ShopID:                 "shop-1",
		Month:                  month,
		TotalRevenue:           decimal.NewFromInt(780),
		TotalCost:              decimal.NewFromInt(360),
		TotalProfit:            decimal.NewFromInt(420),
		AmountToPayDistributor: decimal.NewFromInt(360),
		UnitsSold:              3,
	}
	uc := buildSummaryUseCase(t, []*entity.Shop{shop}, []*entity.ShopFinancialSummary{summary}, nil)

	// Cualquier instante del mes resuelve a la misma fila.
	at := time.Date(2025, time.February, 19, 8, 30, 0, 0, time.UTC)
	resp, err := uc.GetShopSummary(context.Background(), access.ShopOwner("u", "shop-1"), "shop-1", &at)

	require.NoError(t, err)
	assert.Equal(t, "2025-02", resp.Month)
	assert.Equal(t, 3, resp.UnitsSold)
	assert.True(t, resp.TotalRevenue.Equal(decimal.NewFromInt(780)))
	assert.True(t, resp.TotalProfit.Equal(decimal.NewFromInt(420)))
}

func TestGetShopSummary_Alcance(t *testing.T) {
	shop := &entity.Shop{ID: "shop-1", Name: "Óptica Centro"}
	uc := buildSummaryUseCase(t, []*entity.Shop{shop}, nil, nil)

	_, err := uc.GetShopSummary(context.Background(), access.ShopOwner("u", "shop-2"), "shop-1", nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetShopSummary(context.Background(), access.Distributor("u"), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetShopSummary(context.Background(), access.Distributor("u"), "shop-404", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListShopSummaries(t *testing.T) {
	shop := &entity.Shop{ID: "shop-1", Name: "Óptica Centro"}
	summaries := []*entity.ShopFinancialSummary{
		{ShopID: "shop-1", Month: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), UnitsSold: 5},
		{ShopID: "shop-1", Month: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), UnitsSold: 2},
		{ShopID: "shop-2", Month: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), UnitsSold: 9},
	}
	uc := buildSummaryUseCase(t, []*entity.Shop{shop}, summaries, nil)

	out, err := uc.ListShopSummaries(context.Background(), access.Distributor("u"), "shop-1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-03", out[0].Month)
	assert.Equal(t, "2025-02", out[1].Month)
}

func TestBillingReport_AcumulaTotalPorMontura(t *testing.T) {
	shop := &entity.Shop{ID: "shop-1", Name: "Óptica Centro"}
	analytics := &stubAnalyticsRepo{billingLines: []repository.BillingReportLine{
		{FrameID: "frame-1", ProductID: "RB-3025-GLD", FrameName: "Aviator", QuantitySold: 3, TotalCost: decimal.NewFromInt(360)},
		{FrameID: "frame-2", ProductID: "OK-9102-BLK", FrameName: "Holbrook", QuantitySold: 1, TotalCost: decimal.NewFromInt(90)},
	}}
	uc := buildSummaryUseCase(t, []*entity.Shop{shop}, nil, analytics)

	at := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	report, err := uc.BillingReport(context.Background(), access.Distributor("u"), "shop-1", &at)

	require.NoError(t, err)
	assert.Equal(t, "Óptica Centro", report.ShopName)
	assert.Equal(t, "2025-01", report.Month)
	require.Len(t, report.Items, 2)
	assert.True(t, report.TotalAmountDue.Equal(decimal.NewFromInt(450)))

	// El rango consultado es [primer día del mes, primer día del siguiente).
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), analytics.gotFrom)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), analytics.gotTo)
	assert.Equal(t, report.PeriodStart, analytics.gotFrom)
	assert.Equal(t, report.PeriodEnd, analytics.gotTo)
}

func TestBillingReport_MesVacio(t *testing.T) {
	shop := &entity.Shop{ID: "shop-1", Name: "Óptica Centro"}
	uc := buildSummaryUseCase(t, []*entity.Shop{shop}, nil, &stubAnalyticsRepo{})

	report, err := uc.BillingReport(context.Background(), access.Distributor("u"), "shop-1", nil)

	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.True(t, report.TotalAmountDue.IsZero())
}
