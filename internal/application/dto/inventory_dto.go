package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInItem una línea de entrada de mercancía.
type StockInItem struct {
	FrameID     string          `json:"frame_id"`
	Quantity    int             `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// StockInRequest body para POST /api/inventory/stock-in (una tienda, varias líneas).
type StockInRequest struct {
	ShopID string        `json:"shop_id"`
	Items  []StockInItem `json:"items"`
}

// ShopDistribution entrada de mercancía para una tienda dentro de una distribución multi-tienda.
type ShopDistribution struct {
	ShopID string        `json:"shop_id"`
	Items  []StockInItem `json:"items"`
}

// DistributeRequest body para POST /api/inventory/distribute.
type DistributeRequest struct {
	Distributions []ShopDistribution `json:"distributions"`
}

// StockInItemResult resultado por línea procesada.
type StockInItemResult struct {
	FrameID          string          `json:"frame_id"`
	ProductID        string          `json:"product_id"`
	FrameName        string          `json:"frame_name"`
	QuantityAdded    int             `json:"quantity_added"`
	CostPerUnit      decimal.Decimal `json:"cost_per_unit"`
	NewTotalReceived int             `json:"new_total_received"`
	InventoryCreated bool            `json:"inventory_created"`
	TransactionID    string          `json:"transaction_id"`
}

// ShopStockInResult resumen por tienda procesada.
type ShopStockInResult struct {
	ShopID     string              `json:"shop_id"`
	ShopName   string              `json:"shop_name"`
	TotalItems int                 `json:"total_items"`
	Items      []StockInItemResult `json:"items_processed"`
}

// DistributeResult resumen de una distribución multi-tienda.
type DistributeResult struct {
	TotalItemsDistributed int                 `json:"total_items_distributed"`
	ShopsUpdated          int                 `json:"shops_updated"`
	Results               []ShopStockInResult `json:"results"`
}

// InventoryItemResponse fila del ledger en listados, con derivados y datos de la montura.
type InventoryItemResponse struct {
	ID                string          `json:"id"`
	ShopID            string          `json:"shop_id"`
	FrameID           string          `json:"frame_id"`
	ProductID         string          `json:"product_id"`
	FrameName         string          `json:"frame_name"`
	Brand             string          `json:"brand"`
	QuantityReceived  int             `json:"quantity_received"`
	QuantitySold      int             `json:"quantity_sold"`
	QuantityRemaining int             `json:"quantity_remaining"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`
	FramePrice        decimal.Decimal `json:"frame_price"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	LowStock          bool            `json:"low_stock"`
	LastRestocked     time.Time       `json:"last_restocked"`
}

// TransactionResponse entrada del journal en respuestas.
type TransactionResponse struct {
	ID              string           `json:"id"`
	ShopInventoryID string           `json:"shop_inventory_id"`
	Type            string           `json:"type"`
	Quantity        int              `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	CreatedBy       string           `json:"created_by"`
}
