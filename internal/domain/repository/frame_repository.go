package repository

import "github.com/jfcastano/optica-distri/internal/domain/entity"

// FrameFilter filtros de catálogo para listados de monturas.
type FrameFilter struct {
	Brand     string
	FrameType string
	Color     string
	Material  string
	Search    string // busca en name, product_id y brand
	Limit     int
	Offset    int
}

// FrameRepository puerto de persistencia para el catálogo de monturas.
type FrameRepository interface {
	Create(frame *entity.Frame) error
	GetByID(id string) (*entity.Frame, error)               // nil, nil si no existe
	GetByProductID(productID string) (*entity.Frame, error) // nil, nil si no existe
	List(filter FrameFilter) ([]*entity.Frame, error)
	Update(frame *entity.Frame) error
}
