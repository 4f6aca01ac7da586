// Package usecase casos de uso CRUD del catálogo: tiendas y monturas.
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

// ShopUseCase casos de uso CRUD para tiendas. Crear, actualizar y eliminar
// son exclusivos del distribuidor; un dueño solo puede leer la suya.
type ShopUseCase struct {
	repo repository.ShopRepository
}

// NewShopUseCase construye el caso de uso.
func NewShopUseCase(repo repository.ShopRepository) *ShopUseCase {
	return &ShopUseCase{repo: repo}
}

// Create crea una nueva tienda. Solo distribuidor.
func (uc *ShopUseCase) Create(scope access.Scope, in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if !scope.AllShops() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	shop := &entity.Shop{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Address:   strings.TrimSpace(in.Address),
		OwnerName: in.OwnerName,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// GetByID obtiene una tienda. Un dueño solo puede ver la suya.
func (uc *ShopUseCase) GetByID(scope access.Scope, id string) (*dto.ShopResponse, error) {
	if !scope.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return toShopResponse(shop), nil
}

// List lista tiendas con paginación. Un dueño solo recibe la suya.
func (uc *ShopUseCase) List(scope access.Scope, limit, offset int) ([]dto.ShopResponse, error) {
	if !scope.AllShops() {
		own, err := uc.GetByID(scope, scope.ShopID())
		if err != nil {
			return nil, err
		}
		return []dto.ShopResponse{*own}, nil
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShopResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShopResponse(s))
	}
	return items, nil
}

// Update actualiza los datos de una tienda. Solo distribuidor.
func (uc *ShopUseCase) Update(scope access.Scope, id string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	if !scope.AllShops() {
		return nil, domain.ErrForbidden
	}
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, domain.ErrInvalidInput
	}
	shop.Name = strings.TrimSpace(in.Name)
	shop.Address = strings.TrimSpace(in.Address)
	shop.OwnerName = in.OwnerName
	shop.Phone = in.Phone
	shop.Email = in.Email
	shop.UpdatedAt = time.Now()
	if err := uc.repo.Update(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// Delete elimina una tienda. Solo distribuidor. El ledger y el journal de la
// tienda se conservan para auditoría; solo desaparece del catálogo activo.
func (uc *ShopUseCase) Delete(scope access.Scope, id string) error {
	if !scope.AllShops() {
		return domain.ErrForbidden
	}
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	return &dto.ShopResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		OwnerName: s.OwnerName,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
