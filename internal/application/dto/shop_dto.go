package dto

import "time"

// CreateShopRequest body para POST /api/shops.
type CreateShopRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	OwnerName string `json:"owner_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// UpdateShopRequest body para PUT /api/shops/:id.
type UpdateShopRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	OwnerName string `json:"owner_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ShopResponse tienda en respuestas.
type ShopResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerName string    `json:"owner_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
