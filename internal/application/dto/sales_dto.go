package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest body para POST /api/sales. SalePrice nil usa el precio de
// catálogo de la montura.
type RecordSaleRequest struct {
	ShopID    string           `json:"shop_id"`
	FrameID   string           `json:"frame_id"`
	Quantity  int              `json:"quantity"`
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// RecordSaleResult resultado de una venta registrada.
type RecordSaleResult struct {
	TransactionID  string          `json:"transaction_id"`
	QuantitySold   int             `json:"quantity_sold"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	RemainingStock int             `json:"remaining_stock"`
}
