package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jfcastano/optica-distri/internal/domain/entity"
)

// InventoryFilter filtros para listar filas del ledger de una tienda.
type InventoryFilter struct {
	LowStockOnly bool
	Search       string // busca en name, product_id y brand de la montura
	Limit        int
	Offset       int
}

// ShopInventoryRepository puerto del ledger por (tienda, montura).
//
// GetForUpdate debe ejecutarse dentro de una transacción: bloquea la fila
// (SELECT FOR UPDATE) para serializar el read-modify-write de los contadores
// frente a ventas o entradas concurrentes sobre el mismo par.
type ShopInventoryRepository interface {
	Get(shopID, frameID string) (*entity.ShopInventory, error)          // nil, nil si no existe
	GetForUpdate(shopID, frameID string) (*entity.ShopInventory, error) // nil, nil si no existe
	Upsert(inv *entity.ShopInventory) error
	ListByShop(shopID string, filter InventoryFilter) ([]*InventoryItemView, error)
}

// InventoryItemView fila del ledger con los datos de catálogo de la montura,
// resuelta con JOIN en la consulta (los filtros de búsqueda aplican sobre
// campos de la montura).
type InventoryItemView struct {
	Inventory  entity.ShopInventory
	ProductID  string
	FrameName  string
	Brand      string
	FramePrice decimal.Decimal
}
