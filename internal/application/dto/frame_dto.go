package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFrameRequest body para POST /api/frames.
type CreateFrameRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	FrameType string          `json:"frame_type"`
	Color     string          `json:"color"`
	Material  string          `json:"material"`
	Price     decimal.Decimal `json:"price"`
}

// UpdateFrameRequest body para PUT /api/frames/:id.
type UpdateFrameRequest struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	FrameType string          `json:"frame_type"`
	Color     string          `json:"color"`
	Material  string          `json:"material"`
	Price     decimal.Decimal `json:"price"`
}

// FrameResponse montura en respuestas.
type FrameResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	FrameType string          `json:"frame_type"`
	Color     string          `json:"color"`
	Material  string          `json:"material"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
