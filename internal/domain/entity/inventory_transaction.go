package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypeStockIn    = "STOCK_IN"
	TransactionTypeSale       = "SALE"
	TransactionTypeAdjustment = "ADJUSTMENT"
)

// InventoryTransaction es una entrada del journal append-only de movimientos
// de stock. Nunca se actualiza ni se borra: un asiento erróneo se corrige
// agregando un ADJUSTMENT, no editando la historia.
type InventoryTransaction struct {
	ID              string
	ShopInventoryID string
	Type            string
	Quantity        int              // positivo para entradas, negativo para ventas
	UnitCost        *decimal.Decimal // costo unitario al momento del movimiento
	UnitPrice       *decimal.Decimal // precio de venta (solo SALE)
	Notes           string
	CreatedAt       time.Time
	CreatedBy       string // UserID del actor
}
