package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre la pasarela.
type CategoryRepo struct {
	gw *Gateway
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(gw *Gateway) *CategoryRepo {
	return &CategoryRepo{gw: gw}
}

// Create persiste una categoría; domain.ErrDuplicate si el nombre ya existe.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category, trail *entity.AuditTrail) error {
	res := r.gw.Query(ctx, `INSERT INTO categories (name, description) VALUES (?, ?) RETURNING id`,
		[]any{c.Name, c.Description}, scanID(&c.ID), trail)
	if !res.OK() {
		if isUniqueViolation(res.Err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", res.Err)
	}
	return nil
}

// GetByID obtiene una categoría por ID (nil, nil si no existe).
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	list, err := r.list(ctx, `SELECT id, name, COALESCE(description, '') FROM categories WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Update cambia nombre y descripción.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category, trail *entity.AuditTrail) error {
	res := r.gw.ExecIfAffected(ctx, `UPDATE categories SET name = ?, description = ? WHERE id = ?`,
		[]any{c.Name, c.Description, c.ID}, trail)
	if !res.OK() {
		if isUniqueViolation(res.Err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", res.Err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List categorías por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	list, err := r.list(ctx, `SELECT id, name, COALESCE(description, '') FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// DeleteIfUnused la verificación de referencias y el borrado son una sola sentencia,
// así ningún artículo puede asignarse entre ambas.
func (r *CategoryRepo) DeleteIfUnused(ctx context.Context, id int64, trail *entity.AuditTrail) error {
	res := r.gw.ExecIfAffected(ctx, `
		DELETE FROM categories
		WHERE id = ? AND NOT EXISTS (SELECT 1 FROM items WHERE category_id = ?)`,
		[]any{id, id}, trail)
	if !res.OK() {
		return fmt.Errorf("delete category: %w", res.Err)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	// No se borró: o no existe o está en uso.
	cat, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	n, err := r.CountItems(ctx, id)
	if err != nil {
		return err
	}
	return &domain.CategoryInUseError{CategoryID: id, CategoryName: cat.Name, ItemCount: n}
}

// CountItems artículos (de cualquier estado) que referencian la categoría.
func (r *CategoryRepo) CountItems(ctx context.Context, id int64) (int, error) {
	var n int
	res := r.gw.Query(ctx, `SELECT COUNT(*) FROM items WHERE category_id = ?`, []any{id}, scanInt(&n), nil)
	if !res.OK() {
		return 0, fmt.Errorf("count category items: %w", res.Err)
	}
	return n, nil
}

func (r *CategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	var out []*entity.Category
	res := r.gw.Query(ctx, query, args, func(rows *sql.Rows) error {
		for rows.Next() {
			var c entity.Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
				return err
			}
			out = append(out, &c)
		}
		return nil
	}, nil)
	if !res.OK() {
		return nil, res.Err
	}
	return out, nil
}

// scanInt lee un único entero (COUNT, SUM).
func scanInt(dst *int) ScanFunc {
	return func(rows *sql.Rows) error {
		if rows.Next() {
			return rows.Scan(dst)
		}
		return rows.Err()
	}
}
