package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación de ShopRepository sobre PostgreSQL (usable con pool o tx).
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador de tiendas. Pasar pool o tx (Querier).
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persiste una nueva tienda.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, address, owner_name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Address, shop.OwnerName, shop.Phone, shop.Email,
		shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `
		SELECT id, name, address, owner_name, phone, email, created_at, updated_at
		FROM shops WHERE id = $1`
	var s entity.Shop
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.OwnerName, &s.Phone, &s.Email, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// List lista tiendas con paginación, ordenadas por nombre.
func (r *ShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	query := `
		SELECT id, name, address, owner_name, phone, email, created_at, updated_at
		FROM shops ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shop
	for rows.Next() {
		var s entity.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.OwnerName, &s.Phone, &s.Email, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una tienda existente.
func (r *ShopRepo) Update(shop *entity.Shop) error {
	query := `
		UPDATE shops SET name = $2, address = $3, owner_name = $4, phone = $5, email = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Address, shop.OwnerName, shop.Phone, shop.Email, shop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *ShopRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	return nil
}
