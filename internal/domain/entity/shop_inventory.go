package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/domain/ledger"
)

// ShopInventory es la fila del ledger por (tienda, montura): contadores
// acumulados de unidades recibidas y vendidas más el costo unitario vigente.
//
// QuantityReceived y QuantitySold solo crecen; el stock disponible se deriva.
// CostPerUnit se sobrescribe en cada reposición (último costo gana, sin
// promedio ponderado). El histórico de costos queda en InventoryTransaction.
type ShopInventory struct {
	ID               string
	ShopID           string
	FrameID          string
	QuantityReceived int
	QuantitySold     int
	CostPerUnit      decimal.Decimal // costo que la tienda paga al distribuidor
	LastRestocked    time.Time       // se actualiza en cada escritura de la fila
	CreatedAt        time.Time
}

// QuantityRemaining devuelve el stock disponible, clampeado a cero.
// Filas antiguas pueden tener sold > received si la entrada se registró tarde.
func (si *ShopInventory) QuantityRemaining() int {
	return ledger.Remaining(si.QuantityReceived, si.QuantitySold)
}

// TotalCost es el costo acumulado de todas las unidades recibidas.
func (si *ShopInventory) TotalCost() decimal.Decimal {
	return si.CostPerUnit.Mul(decimal.NewFromInt(int64(si.QuantityReceived)))
}

// TotalRevenue es el ingreso estimado de las unidades vendidas al precio de catálogo.
func (si *ShopInventory) TotalRevenue(framePrice decimal.Decimal) decimal.Decimal {
	return framePrice.Mul(decimal.NewFromInt(int64(si.QuantitySold)))
}

// TotalProfit es TotalRevenue menos el costo de las unidades vendidas.
func (si *ShopInventory) TotalProfit(framePrice decimal.Decimal) decimal.Decimal {
	soldCost := si.CostPerUnit.Mul(decimal.NewFromInt(int64(si.QuantitySold)))
	return si.TotalRevenue(framePrice).Sub(soldCost)
}

// IsLowStock indica si la fila está por debajo del umbral de reposición.
func (si *ShopInventory) IsLowStock() bool {
	return si.QuantityRemaining() < ledger.LowStockThreshold
}
