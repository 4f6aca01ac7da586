package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para reportería y dashboards.
// Las ventas se agregan desde el journal: quantity es negativo en SALE, por
// eso las sumas usan -t.quantity. shop_id vacío = todas las tiendas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTrends agrupa ventas por día, semana o mes con date_trunc.
// period debe venir validado (day, week o month): se interpola en el SQL.
func (r *AnalyticsRepo) GetSalesTrends(ctx context.Context, shopID, period string) ([]repository.SalesTrendPoint, error) {
	switch period {
	case repository.TrendPeriodDay, repository.TrendPeriodWeek, repository.TrendPeriodMonth:
	default:
		return nil, fmt.Errorf("analytics.GetSalesTrends: período inválido %q", period)
	}
	query := fmt.Sprintf(`
	SELECT
	    date_trunc('%s', t.created_at)                          AS bucket,
	    COALESCE(SUM(-t.quantity), 0)                           AS units_sold,
	    COALESCE(SUM(-t.quantity * t.unit_price), 0)            AS total_revenue
	FROM inventory_transactions t
	JOIN shop_inventory si ON si.id = t.shop_inventory_id
	WHERE t.type = 'SALE'
	  AND ($1 = '' OR si.shop_id = $1)
	GROUP BY bucket
	ORDER BY bucket`, period)

	rows, err := r.pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesTrends: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesTrendPoint
	for rows.Next() {
		var p repository.SalesTrendPoint
		if err := rows.Scan(&p.Period, &p.UnitsSold, &p.TotalRevenue); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesTrends scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// GetTopFrames devuelve las `limit` monturas más vendidas por unidades.
func (r *AnalyticsRepo) GetTopFrames(ctx context.Context, shopID string, limit int) ([]repository.TopFrameResult, error) {
	const query = `
	SELECT
	    f.id                                          AS frame_id,
	    f.product_id,
	    f.name                                        AS frame_name,
	    COALESCE(SUM(-t.quantity), 0)                 AS units_sold,
	    COALESCE(SUM(-t.quantity * t.unit_price), 0)  AS total_revenue
	FROM inventory_transactions t
	JOIN shop_inventory si ON si.id = t.shop_inventory_id
	JOIN frames f          ON f.id  = si.frame_id
	WHERE t.type = 'SALE'
	  AND ($1 = '' OR si.shop_id = $1)
	GROUP BY f.id, f.product_id, f.name
	ORDER BY units_sold DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, shopID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopFrames: %w", err)
	}
	defer rows.Close()

	var results []repository.TopFrameResult
	for rows.Next() {
		var row repository.TopFrameResult
		if err := rows.Scan(&row.FrameID, &row.ProductID, &row.FrameName, &row.UnitsSold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopFrames scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetLowStock devuelve filas del ledger con menos de `threshold` unidades restantes.
func (r *AnalyticsRepo) GetLowStock(ctx context.Context, shopID string, threshold int) ([]repository.LowStockItem, error) {
	const query = `
	SELECT
	    si.shop_id,
	    s.name                                                  AS shop_name,
	    si.frame_id,
	    f.product_id,
	    f.name                                                  AS frame_name,
	    si.quantity_received,
	    si.quantity_sold,
	    GREATEST(si.quantity_received - si.quantity_sold, 0)    AS quantity_remaining,
	    si.last_restocked
	FROM shop_inventory si
	JOIN shops  s ON s.id = si.shop_id
	JOIN frames f ON f.id = si.frame_id
	WHERE GREATEST(si.quantity_received - si.quantity_sold, 0) < $2
	  AND ($1 = '' OR si.shop_id = $1)
	ORDER BY quantity_remaining, s.name, f.name`

	rows, err := r.pool.Query(ctx, query, shopID, threshold)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetLowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockItem
	for rows.Next() {
		var row repository.LowStockItem
		if err := rows.Scan(
			&row.ShopID, &row.ShopName, &row.FrameID, &row.ProductID, &row.FrameName,
			&row.QuantityReceived, &row.QuantitySold, &row.QuantityRemaining, &row.LastRestocked,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetLowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetBillingReport agrega las ventas de una tienda en [from, to) por montura,
// valuadas al costo snapshoteado en cada transacción SALE (no al costo actual
// del ledger: el costo vigente puede haber cambiado después de la venta).
func (r *AnalyticsRepo) GetBillingReport(ctx context.Context, shopID string, from, to time.Time) ([]repository.BillingReportLine, error) {
	const query = `
	SELECT
	    f.id                                          AS frame_id,
	    f.product_id,
	    f.name                                        AS frame_name,
	    COALESCE(SUM(-t.quantity), 0)                 AS quantity_sold,
	    COALESCE(SUM(-t.quantity * t.unit_cost), 0)   AS total_cost
	FROM inventory_transactions t
	JOIN shop_inventory si ON si.id = t.shop_inventory_id
	JOIN frames f          ON f.id  = si.frame_id
	WHERE t.type = 'SALE'
	  AND si.shop_id = $1
	  AND t.created_at >= $2
	  AND t.created_at <  $3
	GROUP BY f.id, f.product_id, f.name
	ORDER BY total_cost DESC`

	rows, err := r.pool.Query(ctx, query, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetBillingReport: %w", err)
	}
	defer rows.Close()

	var results []repository.BillingReportLine
	for rows.Next() {
		var row repository.BillingReportLine
		if err := rows.Scan(&row.FrameID, &row.ProductID, &row.FrameName, &row.QuantitySold, &row.TotalCost); err != nil {
			return nil, fmt.Errorf("analytics.GetBillingReport scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesMetrics devuelve unidades, ingreso y costo de las ventas en [from, to).
// Usa COALESCE para devolver cero si el período no tiene ventas.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, shopID string, from, to time.Time) (units int, revenue, cost decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(-t.quantity), 0)                 AS units_sold,
	    COALESCE(SUM(-t.quantity * t.unit_price), 0)  AS revenue,
	    COALESCE(SUM(-t.quantity * t.unit_cost), 0)   AS cost
	FROM inventory_transactions t
	JOIN shop_inventory si ON si.id = t.shop_inventory_id
	WHERE t.type = 'SALE'
	  AND ($1 = '' OR si.shop_id = $1)
	  AND t.created_at >= $2
	  AND t.created_at <  $3`

	err = r.pool.QueryRow(ctx, query, shopID, from, to).Scan(&units, &revenue, &cost)
	if err != nil {
		return 0, decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return units, revenue, cost, nil
}

// GetShopPerformance compara tiendas por ventas en [from, to).
func (r *AnalyticsRepo) GetShopPerformance(ctx context.Context, from, to time.Time) ([]repository.ShopPerformanceResult, error) {
	const query = `
	SELECT
	    s.id                                                             AS shop_id,
	    s.name                                                           AS shop_name,
	    COALESCE(SUM(-t.quantity), 0)                                    AS units_sold,
	    COALESCE(SUM(-t.quantity * t.unit_price), 0)                     AS total_revenue,
	    COALESCE(SUM(-t.quantity * (t.unit_price - t.unit_cost)), 0)     AS total_profit
	FROM shops s
	LEFT JOIN shop_inventory si ON si.shop_id = s.id
	LEFT JOIN inventory_transactions t
	       ON t.shop_inventory_id = si.id
	      AND t.type = 'SALE'
	      AND t.created_at >= $1
	      AND t.created_at <  $2
	GROUP BY s.id, s.name
	ORDER BY total_revenue DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetShopPerformance: %w", err)
	}
	defer rows.Close()

	var results []repository.ShopPerformanceResult
	for rows.Next() {
		var row repository.ShopPerformanceResult
		if err := rows.Scan(&row.ShopID, &row.ShopName, &row.UnitsSold, &row.TotalRevenue, &row.TotalProfit); err != nil {
			return nil, fmt.Errorf("analytics.GetShopPerformance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetStockOnHand suma las unidades restantes del ledger de una tienda.
func (r *AnalyticsRepo) GetStockOnHand(ctx context.Context, shopID string) (int, error) {
	const query = `
	SELECT COALESCE(SUM(GREATEST(quantity_received - quantity_sold, 0)), 0)
	FROM shop_inventory
	WHERE shop_id = $1`

	var total int
	if err := r.pool.QueryRow(ctx, query, shopID).Scan(&total); err != nil {
		return 0, fmt.Errorf("analytics.GetStockOnHand: %w", err)
	}
	return total, nil
}
