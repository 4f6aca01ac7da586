package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Períodos válidos para agrupar tendencias de ventas.
const (
	TrendPeriodDay   = "day"
	TrendPeriodWeek  = "week"
	TrendPeriodMonth = "month"
)

// SalesTrendPoint punto de la serie de ventas agrupada por período.
type SalesTrendPoint struct {
	Period       time.Time // inicio del bucket (día/semana/mes)
	UnitsSold    int
	TotalRevenue decimal.Decimal
}

// TopFrameResult montura con sus ventas acumuladas.
type TopFrameResult struct {
	FrameID      string
	ProductID    string
	FrameName    string
	UnitsSold    int
	TotalRevenue decimal.Decimal
}

// LowStockItem fila del ledger por debajo del umbral de reposición.
type LowStockItem struct {
	ShopID            string
	ShopName          string
	FrameID           string
	ProductID         string
	FrameName         string
	QuantityReceived  int
	QuantitySold      int
	QuantityRemaining int
	LastRestocked     time.Time
}

// BillingReportLine línea del reporte de cobro del distribuidor: unidades
// vendidas por montura y el costo que la tienda debe pagar por ellas.
type BillingReportLine struct {
	FrameID      string
	ProductID    string
	FrameName    string
	QuantitySold int
	TotalCost    decimal.Decimal
}

// ShopPerformanceResult métricas de venta agregadas por tienda, para el
// comparativo del distribuidor.
type ShopPerformanceResult struct {
	ShopID       string
	ShopName     string
	UnitsSold    int
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para reportería y dashboards.
// Todas agregan sobre el journal (inventory_transactions) o el ledger; no
// tocan los resúmenes mensuales ni modifican datos. shopID vacío significa
// todas las tiendas (solo debe pasarse con alcance distribuidor).
type AnalyticsRepository interface {
	// GetSalesTrends agrupa ventas por día, semana o mes (date_trunc).
	GetSalesTrends(ctx context.Context, shopID, period string) ([]SalesTrendPoint, error)

	// GetTopFrames devuelve las `limit` monturas más vendidas por unidades.
	GetTopFrames(ctx context.Context, shopID string, limit int) ([]TopFrameResult, error)

	// GetLowStock devuelve filas con menos de `threshold` unidades restantes.
	GetLowStock(ctx context.Context, shopID string, threshold int) ([]LowStockItem, error)

	// GetBillingReport agrega las ventas de una tienda en [from, to) por montura,
	// valuadas al costo snapshoteado en cada transacción SALE.
	GetBillingReport(ctx context.Context, shopID string, from, to time.Time) ([]BillingReportLine, error)

	// GetSalesMetrics devuelve unidades, ingreso y costo de las ventas en [from, to).
	// COALESCE a cero si el período no tiene ventas.
	GetSalesMetrics(ctx context.Context, shopID string, from, to time.Time) (units int, revenue, cost decimal.Decimal, err error)

	// GetShopPerformance compara tiendas por ventas en [from, to).
	GetShopPerformance(ctx context.Context, from, to time.Time) ([]ShopPerformanceResult, error)

	// GetStockOnHand suma las unidades restantes del ledger de una tienda.
	GetStockOnHand(ctx context.Context, shopID string) (int, error)
}
