package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación del journal append-only sobre
// PostgreSQL (usable con pool o tx). Solo INSERT y SELECT: el journal no se
// actualiza ni se borra.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador del journal. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create agrega una entrada al journal.
func (r *InventoryTransactionRepo) Create(tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, shop_inventory_id, type, quantity, unit_cost, unit_price, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ShopInventoryID, tx.Type, tx.Quantity, tx.UnitCost, tx.UnitPrice,
		tx.Notes, tx.CreatedAt, tx.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// List lee el journal con filtros opcionales, más reciente primero.
// ShopID filtra vía la fila del ledger; vacío trae todas las tiendas.
func (r *InventoryTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.InventoryTransaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT t.id, t.shop_inventory_id, t.type, t.quantity, t.unit_cost, t.unit_price, t.notes, t.created_at, t.created_by
		FROM inventory_transactions t
		JOIN shop_inventory si ON si.id = t.shop_inventory_id
		WHERE 1=1`)
	args := []any{}

	if filter.ShopID != "" {
		args = append(args, filter.ShopID)
		sb.WriteString(` AND si.shop_id = $` + strconv.Itoa(len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		sb.WriteString(` AND t.type = $` + strconv.Itoa(len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		sb.WriteString(` AND t.created_at >= $` + strconv.Itoa(len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		sb.WriteString(` AND t.created_at < $` + strconv.Itoa(len(args)))
	}

	args = append(args, filter.Limit)
	sb.WriteString(` ORDER BY t.created_at DESC LIMIT $` + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	sb.WriteString(` OFFSET $` + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(&t.ID, &t.ShopInventoryID, &t.Type, &t.Quantity, &t.UnitCost,
			&t.UnitPrice, &t.Notes, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
