package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSummaryResponse resumen financiero mensual de una tienda.
type FinancialSummaryResponse struct {
	ShopID                 string          `json:"shop_id"`
	Month                  string          `json:"month"` // YYYY-MM
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	TotalCost              decimal.Decimal `json:"total_cost"`
	TotalProfit            decimal.Decimal `json:"total_profit"`
	AmountToPayDistributor decimal.Decimal `json:"amount_to_pay_distributor"`
	UnitsSold              int             `json:"units_sold"`
}

// BillingReportLineDTO línea del reporte de cobro por montura.
type BillingReportLineDTO struct {
	FrameID      string          `json:"frame_id"`
	ProductID    string          `json:"product_id"`
	FrameName    string          `json:"frame_name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// BillingReportResponse reporte de cobro del distribuidor a una tienda.
type BillingReportResponse struct {
	ShopID         string                 `json:"shop_id"`
	ShopName       string                 `json:"shop_name"`
	Month          string                 `json:"month"` // YYYY-MM
	PeriodStart    time.Time              `json:"period_start"`
	PeriodEnd      time.Time              `json:"period_end"`
	TotalAmountDue decimal.Decimal        `json:"total_amount_due"`
	Items          []BillingReportLineDTO `json:"items"`
}
