// Package access define el alcance de datos de un actor autenticado.
// La decisión de autorización se toma una sola vez en el borde HTTP y los
// casos de uso solo consultan el Scope resultante, sin comparar roles.
package access

import "github.com/jfcastano/optica-distri/internal/domain/entity"

// Scope es la capacidad de un actor: todas las tiendas (distribuidor) o una
// tienda específica (dueño). Valor inmutable, construido por el middleware.
type Scope struct {
	userID string
	role   string
	shopID string // vacío cuando el alcance cubre todas las tiendas
}

// Distributor construye el alcance de todas las tiendas.
func Distributor(userID string) Scope {
	return Scope{userID: userID, role: entity.RoleDistributor}
}

// ShopOwner construye el alcance restringido a una tienda.
func ShopOwner(userID, shopID string) Scope {
	return Scope{userID: userID, role: entity.RoleShopOwner, shopID: shopID}
}

// UserID devuelve el actor, para atribución de created_by.
func (s Scope) UserID() string { return s.userID }

// Role devuelve el rol del actor.
func (s Scope) Role() string { return s.role }

// AllShops es true cuando el alcance cubre todas las tiendas.
func (s Scope) AllShops() bool { return s.role == entity.RoleDistributor }

// ShopID devuelve la tienda del alcance; vacío para el distribuidor.
func (s Scope) ShopID() string { return s.shopID }

// CanAccess indica si el actor puede operar sobre la tienda dada.
func (s Scope) CanAccess(shopID string) bool {
	if s.AllShops() {
		return true
	}
	return s.shopID != "" && s.shopID == shopID
}
