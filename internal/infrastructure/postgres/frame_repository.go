package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jfcastano/optica-distri/internal/domain"
	"github.com/jfcastano/optica-distri/internal/domain/entity"
	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

var _ repository.FrameRepository = (*FrameRepo)(nil)

// FrameRepo implementación de FrameRepository sobre PostgreSQL (usable con pool o tx).
type FrameRepo struct {
	q Querier
}

// NewFrameRepository construye el adaptador del catálogo de monturas. Pasar pool o tx (Querier).
func NewFrameRepository(q Querier) *FrameRepo {
	return &FrameRepo{q: q}
}

const frameColumns = `id, product_id, name, brand, frame_type, color, material, price, created_at, updated_at`

// Create persiste una nueva montura. product_id tiene constraint único.
func (r *FrameRepo) Create(frame *entity.Frame) error {
	query := `
		INSERT INTO frames (` + frameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		frame.ID, frame.ProductID, frame.Name, frame.Brand, frame.FrameType,
		frame.Color, frame.Material, frame.Price, frame.CreatedAt, frame.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert frame: %w", err)
	}
	return nil
}

// GetByID obtiene una montura por ID.
func (r *FrameRepo) GetByID(id string) (*entity.Frame, error) {
	return r.getOne(`SELECT `+frameColumns+` FROM frames WHERE id = $1`, id)
}

// GetByProductID obtiene una montura por código de producto.
func (r *FrameRepo) GetByProductID(productID string) (*entity.Frame, error) {
	return r.getOne(`SELECT `+frameColumns+` FROM frames WHERE product_id = $1`, productID)
}

func (r *FrameRepo) getOne(query string, arg any) (*entity.Frame, error) {
	var f entity.Frame
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&f.ID, &f.ProductID, &f.Name, &f.Brand, &f.FrameType, &f.Color, &f.Material,
		&f.Price, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get frame: %w", err)
	}
	return &f, nil
}

// List lista el catálogo con filtros opcionales y paginación.
func (r *FrameRepo) List(filter repository.FrameFilter) ([]*entity.Frame, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + frameColumns + ` FROM frames WHERE 1=1`)
	args := []any{}

	addEq := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		sb.WriteString(` AND ` + column + ` = $` + strconv.Itoa(len(args)))
	}
	addEq("brand", filter.Brand)
	addEq("frame_type", filter.FrameType)
	addEq("color", filter.Color)
	addEq("material", filter.Material)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		sb.WriteString(` AND (name ILIKE $` + n + ` OR product_id ILIKE $` + n + ` OR brand ILIKE $` + n + `)`)
	}

	args = append(args, filter.Limit)
	sb.WriteString(` ORDER BY name LIMIT $` + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	sb.WriteString(` OFFSET $` + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list frames: %w", err)
	}
	defer rows.Close()
	var list []*entity.Frame
	for rows.Next() {
		var f entity.Frame
		if err := rows.Scan(&f.ID, &f.ProductID, &f.Name, &f.Brand, &f.FrameType, &f.Color,
			&f.Material, &f.Price, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza una montura. product_id no se toca: el journal lo referencia.
func (r *FrameRepo) Update(frame *entity.Frame) error {
	query := `
		UPDATE frames SET name = $2, brand = $3, frame_type = $4, color = $5, material = $6, price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		frame.ID, frame.Name, frame.Brand, frame.FrameType, frame.Color,
		frame.Material, frame.Price, frame.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update frame: %w", err)
	}
	return nil
}
