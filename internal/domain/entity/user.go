package entity

import "time"

// Roles válidos para User.
const (
	RoleDistributor = "DISTRIBUTOR"
	RoleShopOwner   = "SHOP_OWNER"
)

// User representa un usuario del sistema. Los dueños de tienda llevan ShopID;
// el distribuidor no está atado a ninguna tienda.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // DISTRIBUTOR, SHOP_OWNER
	ShopID       string // vacío para el distribuidor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
