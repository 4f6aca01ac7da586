package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frame representa una montura del catálogo del distribuidor.
// ProductID es el código comercial único (ej. "RB-3025-GLD"); Price es el
// precio de venta sugerido al público, usado cuando una venta no trae precio explícito.
type Frame struct {
	ID        string
	ProductID string // código único de producto
	Name      string
	Brand     string
	FrameType string // aviator, round, square, ...
	Color     string
	Material  string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
