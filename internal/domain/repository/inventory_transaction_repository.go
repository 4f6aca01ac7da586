package repository

import (
	"time"

	"github.com/jfcastano/optica-distri/internal/domain/entity"
)

// TransactionFilter filtros de lectura del journal. ShopID vacío = todas las
// tiendas (solo alcance distribuidor).
type TransactionFilter struct {
	ShopID string
	Type   string // STOCK_IN, SALE, ADJUSTMENT; vacío = todos
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// InventoryTransactionRepository puerto del journal append-only de movimientos.
// Create es la única escritura; no existe Update ni Delete por diseño del journal.
type InventoryTransactionRepository interface {
	Create(tx *entity.InventoryTransaction) error
	List(filter TransactionFilter) ([]*entity.InventoryTransaction, error) // orden: más reciente primero
}
