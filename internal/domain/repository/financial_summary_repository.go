package repository

import (
	"time"

	"github.com/jfcastano/optica-distri/internal/domain/entity"
)

// FinancialSummaryRepository puerto del rollup financiero mensual por tienda.
//
// GetOrCreateForUpdate resuelve la fila de (tienda, mes) creándola en cero si
// no existe, y la bloquea (SELECT FOR UPDATE). Debe llamarse dentro de la
// transacción de la venta: ApplySale es read-modify-write y dos ventas
// concurrentes del mismo mes perderían incrementos sin el lock.
type FinancialSummaryRepository interface {
	Get(shopID string, month time.Time) (*entity.ShopFinancialSummary, error) // nil, nil si no existe
	GetOrCreateForUpdate(shopID string, month time.Time) (*entity.ShopFinancialSummary, error)
	Update(summary *entity.ShopFinancialSummary) error
	ListByShop(shopID string, limit, offset int) ([]*entity.ShopFinancialSummary, error) // orden: mes descendente
}
