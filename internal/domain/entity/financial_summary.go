package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopFinancialSummary es el rollup financiero mensual por tienda, mantenido
// incrementalmente en cada venta (no se recalcula desde el journal en lecturas).
// Month es siempre el primer día del mes (ver ledger.MonthOf).
type ShopFinancialSummary struct {
	ID                     string
	ShopID                 string
	Month                  time.Time
	TotalRevenue           decimal.Decimal
	TotalCost              decimal.Decimal
	TotalProfit            decimal.Decimal
	AmountToPayDistributor decimal.Decimal
	UnitsSold              int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// ApplySale acumula una venta en el resumen. Debe llamarse con la fila
// bloqueada (SELECT FOR UPDATE) dentro de la misma transacción que la venta.
func (s *ShopFinancialSummary) ApplySale(quantity int, salePrice, costPerUnit decimal.Decimal) {
	qty := decimal.NewFromInt(int64(quantity))
	revenue := salePrice.Mul(qty)
	cost := costPerUnit.Mul(qty)

	s.TotalRevenue = s.TotalRevenue.Add(revenue)
	s.TotalCost = s.TotalCost.Add(cost)
	s.TotalProfit = s.TotalProfit.Add(revenue.Sub(cost))
	s.AmountToPayDistributor = s.AmountToPayDistributor.Add(cost)
	s.UnitsSold += quantity
}
