package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTrendPointDTO punto de la serie de tendencias.
type SalesTrendPointDTO struct {
	Period       string          `json:"period"` // YYYY-MM-DD, YYYY-Www o YYYY-MM según agrupación
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SalesTrendsResponse tendencias de venta agrupadas por período.
type SalesTrendsResponse struct {
	Period string               `json:"period"` // day | week | month
	Trends []SalesTrendPointDTO `json:"trends"`
}

// TopFrameDTO montura más vendida.
type TopFrameDTO struct {
	FrameID      string          `json:"frame_id"`
	ProductID    string          `json:"product_id"`
	FrameName    string          `json:"frame_name"`
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// LowStockItemDTO alerta de quiebre de stock.
type LowStockItemDTO struct {
	ShopID            string    `json:"shop_id"`
	ShopName          string    `json:"shop_name"`
	FrameID           string    `json:"frame_id"`
	ProductID         string    `json:"product_id"`
	FrameName         string    `json:"frame_name"`
	QuantityRemaining int       `json:"quantity_remaining"`
	LastRestocked     time.Time `json:"last_restocked"`
}

// ShopSalesSummaryDTO métricas del mes en curso para una tienda.
type ShopSalesSummaryDTO struct {
	ShopID       string          `json:"shop_id"`
	Month        string          `json:"month"` // YYYY-MM
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ItemsInStock int             `json:"items_in_stock"`
}

// ShopPerformanceDTO comparativo por tienda.
type ShopPerformanceDTO struct {
	ShopID       string          `json:"shop_id"`
	ShopName     string          `json:"shop_name"`
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// RevenueSummaryDTO resumen de ingresos del distribuidor para el mes en curso.
type RevenueSummaryDTO struct {
	Month        string               `json:"month"` // YYYY-MM
	UnitsSold    int                  `json:"units_sold"`
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
	TotalCost    decimal.Decimal      `json:"total_cost"`
	TotalProfit  decimal.Decimal      `json:"total_profit"`
	Shops        []ShopPerformanceDTO `json:"shops"`
}
