package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/ledger"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

var _ repository.ShopInventoryRepository = (*ShopInventoryRepo)(nil)

// ShopInventoryRepo implementación del ledger por (tienda, montura) sobre
// PostgreSQL (usable con pool o tx).
type ShopInventoryRepo struct {
	q Querier
}

// NewShopInventoryRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewShopInventoryRepository(q Querier) *ShopInventoryRepo {
	return &ShopInventoryRepo{q: q}
}

const inventoryColumns = `id, shop_id, frame_id, quantity_received, quantity_sold, cost_per_unit, last_restocked, created_at`

// Get obtiene la fila del ledger de (tienda, montura). nil, nil si no existe.
func (r *ShopInventoryRepo) Get(shopID, frameID string) (*entity.ShopInventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM shop_inventory WHERE shop_id = $1 AND frame_id = $2`
	return r.scanOne(query, shopID, frameID)
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). nil, nil si
// no existe; el caller decide si la crea. Solo dentro de una transacción.
func (r *ShopInventoryRepo) GetForUpdate(shopID, frameID string) (*entity.ShopInventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM shop_inventory WHERE shop_id = $1 AND frame_id = $2
		FOR UPDATE`
	return r.scanOne(query, shopID, frameID)
}

func (r *ShopInventoryRepo) scanOne(query, shopID, frameID string) (*entity.ShopInventory, error) {
	var si entity.ShopInventory
	err := r.q.QueryRow(context.Background(), query, shopID, frameID).Scan(
		&si.ID, &si.ShopID, &si.FrameID, &si.QuantityReceived, &si.QuantitySold,
		&si.CostPerUnit, &si.LastRestocked, &si.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop inventory: %w", err)
	}
	return &si, nil
}

// Upsert inserta o actualiza la fila del ledger (clave única shop_id, frame_id).
func (r *ShopInventoryRepo) Upsert(inv *entity.ShopInventory) error {
	query := `
		INSERT INTO shop_inventory (id, shop_id, frame_id, quantity_received, quantity_sold, cost_per_unit, last_restocked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (shop_id, frame_id)
		DO UPDATE SET
			quantity_received = EXCLUDED.quantity_received,
			quantity_sold     = EXCLUDED.quantity_sold,
			cost_per_unit     = EXCLUDED.cost_per_unit,
			last_restocked    = EXCLUDED.last_restocked`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ShopID, inv.FrameID, inv.QuantityReceived, inv.QuantitySold,
		inv.CostPerUnit, inv.LastRestocked, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert shop inventory: %w", err)
	}
	return nil
}

// ListByShop lista el ledger de una tienda con los datos de catálogo de cada
// montura, con filtros opcionales de búsqueda y quiebre de stock.
func (r *ShopInventoryRepo) ListByShop(shopID string, filter repository.InventoryFilter) ([]*repository.InventoryItemView, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT si.id, si.shop_id, si.frame_id, si.quantity_received, si.quantity_sold,
		       si.cost_per_unit, si.last_restocked, si.created_at,
		       f.product_id, f.name, f.brand, f.price
		FROM shop_inventory si
		JOIN frames f ON f.id = si.frame_id
		WHERE si.shop_id = $1`)
	args := []any{shopID}

	if filter.LowStockOnly {
		args = append(args, ledger.LowStockThreshold)
		sb.WriteString(` AND GREATEST(si.quantity_received - si.quantity_sold, 0) < $` + strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		sb.WriteString(` AND (f.name ILIKE $` + n + ` OR f.product_id ILIKE $` + n + ` OR f.brand ILIKE $` + n + `)`)
	}

	args = append(args, filter.Limit)
	sb.WriteString(` ORDER BY f.name LIMIT $` + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	sb.WriteString(` OFFSET $` + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list shop inventory: %w", err)
	}
	defer rows.Close()
	var list []*repository.InventoryItemView
	for rows.Next() {
		var v repository.InventoryItemView
		if err := rows.Scan(
			&v.Inventory.ID, &v.Inventory.ShopID, &v.Inventory.FrameID,
			&v.Inventory.QuantityReceived, &v.Inventory.QuantitySold,
			&v.Inventory.CostPerUnit, &v.Inventory.LastRestocked, &v.Inventory.CreatedAt,
			&v.ProductID, &v.FrameName, &v.Brand, &v.FramePrice,
		); err != nil {
			return nil, fmt.Errorf("scan shop inventory: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
