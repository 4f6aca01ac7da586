package repository

import "github.com/jfcastano/optica-distri/internal/domain/entity"

// ShopRepository puerto de persistencia para tiendas.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error) // nil, nil si no existe
	List(limit, offset int) ([]*entity.Shop, error)
	Update(shop *entity.Shop) error
	Delete(id string) error
}
