package repository

import "github.com/jfcastano/optica-distri/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error) // nil, nil si no existe
	GetByID(id string) (*entity.User, error)        // nil, nil si no existe
}
