package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

var _ repository.FinancialSummaryRepository = (*FinancialSummaryRepo)(nil)

// FinancialSummaryRepo implementación del rollup financiero mensual sobre
// PostgreSQL (usable con pool o tx).
type FinancialSummaryRepo struct {
	q Querier
}

// NewFinancialSummaryRepository construye el adaptador de resúmenes. Pasar pool o tx (Querier).
func NewFinancialSummaryRepository(q Querier) *FinancialSummaryRepo {
	return &FinancialSummaryRepo{q: q}
}

const summaryColumns = `id, shop_id, month, total_revenue, total_cost, total_profit, amount_to_pay_distributor, units_sold, created_at, updated_at`

// Get obtiene el resumen de (tienda, mes). nil, nil si no existe.
func (r *FinancialSummaryRepo) Get(shopID string, month time.Time) (*entity.ShopFinancialSummary, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM shop_financial_summaries WHERE shop_id = $1 AND month = $2`
	return r.scanOne(query, shopID, month)
}

// GetOrCreateForUpdate resuelve la fila de (tienda, mes) creándola en cero si
// no existe y la bloquea (SELECT FOR UPDATE). Solo dentro de una transacción:
// el INSERT ... ON CONFLICT DO NOTHING hace que dos ventas concurrentes del
// primer día del mes no dupliquen la fila, y el lock serializa el ApplySale.
func (r *FinancialSummaryRepo) GetOrCreateForUpdate(shopID string, month time.Time) (*entity.ShopFinancialSummary, error) {
	insert := `
		INSERT INTO shop_financial_summaries (id, shop_id, month, total_revenue, total_cost, total_profit, amount_to_pay_distributor, units_sold, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, 0, 0, 0, now(), now())
		ON CONFLICT (shop_id, month) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), shopID, month); err != nil {
		return nil, fmt.Errorf("insert financial summary: %w", err)
	}
	query := `
		SELECT ` + summaryColumns + `
		FROM shop_financial_summaries WHERE shop_id = $1 AND month = $2
		FOR UPDATE`
	return r.scanOne(query, shopID, month)
}

func (r *FinancialSummaryRepo) scanOne(query string, shopID string, month time.Time) (*entity.ShopFinancialSummary, error) {
	var s entity.ShopFinancialSummary
	err := r.q.QueryRow(context.Background(), query, shopID, month).Scan(
		&s.ID, &s.ShopID, &s.Month, &s.TotalRevenue, &s.TotalCost, &s.TotalProfit,
		&s.AmountToPayDistributor, &s.UnitsSold, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial summary: %w", err)
	}
	return &s, nil
}

// Update persiste los acumulados de un resumen ya bloqueado.
func (r *FinancialSummaryRepo) Update(summary *entity.ShopFinancialSummary) error {
	query := `
		UPDATE shop_financial_summaries
		SET total_revenue = $2, total_cost = $3, total_profit = $4,
		    amount_to_pay_distributor = $5, units_sold = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		summary.ID, summary.TotalRevenue, summary.TotalCost, summary.TotalProfit,
		summary.AmountToPayDistributor, summary.UnitsSold,
	)
	if err != nil {
		return fmt.Errorf("update financial summary: %w", err)
	}
	return nil
}

// ListByShop lista los resúmenes de una tienda, mes más reciente primero.
func (r *FinancialSummaryRepo) ListByShop(shopID string, limit, offset int) ([]*entity.ShopFinancialSummary, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM shop_financial_summaries WHERE shop_id = $1
		ORDER BY month DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list financial summaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShopFinancialSummary
	for rows.Next() {
		var s entity.ShopFinancialSummary
		if err := rows.Scan(&s.ID, &s.ShopID, &s.Month, &s.TotalRevenue, &s.TotalCost,
			&s.TotalProfit, &s.AmountToPayDistributor, &s.UnitsSold, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan financial summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
