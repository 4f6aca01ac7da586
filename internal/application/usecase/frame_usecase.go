package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/access"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// FrameUseCase casos de uso CRUD para el catálogo de monturas. El catálogo
// es global: todas las tiendas leen el mismo; solo el distribuidor lo muta.
type FrameUseCase struct {
	repo repository.FrameRepository
}

// NewFrameUseCase construye el caso de uso.
func NewFrameUseCase(repo repository.FrameRepository) *FrameUseCase {
	return &FrameUseCase{repo: repo}
}

// Create crea una montura. ProductID debe ser único; devuelve ErrDuplicate si ya existe.
func (uc *FrameUseCase) Create(scope access.Scope, in dto.CreateFrameRequest) (*dto.FrameResponse, error) {
	if !scope.AllShops() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.ProductID) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByProductID(in.ProductID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	frame := &entity.Frame{
		ID:        uuid.New().String(),
		ProductID: strings.TrimSpace(in.ProductID),
		Name:      strings.TrimSpace(in.Name),
		Brand:     in.Brand,
		FrameType: in.FrameType,
		Color:     in.Color,
		Material:  in.Material,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(frame); err != nil {
		return nil, err
	}
	return toFrameResponse(frame), nil
}

// GetByID obtiene una montura por ID. Lectura abierta a cualquier rol autenticado.
func (uc *FrameUseCase) GetByID(id string) (*dto.FrameResponse, error) {
	frame, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, domain.ErrNotFound
	}
	return toFrameResponse(frame), nil
}

// List lista el catálogo con filtros opcionales.
func (uc *FrameUseCase) List(filter repository.FrameFilter) ([]dto.FrameResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FrameResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFrameResponse(f))
	}
	return items, nil
}

// Update actualiza una montura. ProductID es inmutable una vez creado:
// el journal lo referencia y cambiarlo rompería la trazabilidad.
func (uc *FrameUseCase) Update(scope access.Scope, id string, in dto.UpdateFrameRequest) (*dto.FrameResponse, error) {
	if !scope.AllShops() {
		return nil, domain.ErrForbidden
	}
	frame, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	frame.Name = strings.TrimSpace(in.Name)
	frame.Brand = in.Brand
	frame.FrameType = in.FrameType
	frame.Color = in.Color
	frame.Material = in.Material
	frame.Price = in.Price
	frame.UpdatedAt = time.Now()
	if err := uc.repo.Update(frame); err != nil {
		return nil, err
	}
	return toFrameResponse(frame), nil
}

func toFrameResponse(f *entity.Frame) *dto.FrameResponse {
	if f == nil {
		return nil
	}
	return &dto.FrameResponse{
		ID:        f.ID,
		ProductID: f.ProductID,
		Name:      f.Name,
		Brand:     f.Brand,
		FrameType: f.FrameType,
		Color:     f.Color,
		Material:  f.Material,
		Price:     f.Price,
		CreatedAt: f.CreatedAt,
	}
}
