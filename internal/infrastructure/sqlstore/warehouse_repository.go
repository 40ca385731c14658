package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository.
type WarehouseRepo struct {
	gw *Gateway
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(gw *Gateway) *WarehouseRepo {
	return &WarehouseRepo{gw: gw}
}

// Create persiste una bodega; domain.ErrDuplicate si el nombre ya existe.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse, trail *entity.AuditTrail) error {
	res := r.gw.Query(ctx, `INSERT INTO warehouses (name, location) VALUES (?, ?) RETURNING id`,
		[]any{w.Name, w.Location}, scanID(&w.ID), trail)
	if !res.OK() {
		if isUniqueViolation(res.Err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", res.Err)
	}
	return nil
}

// GetByID obtiene una bodega por ID (nil, nil si no existe).
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	list, err := r.list(ctx, `SELECT id, name, COALESCE(location, '') FROM warehouses WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Update actualiza nombre y ubicación.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse, trail *entity.AuditTrail) error {
	res := r.gw.ExecIfAffected(ctx, `UPDATE warehouses SET name = ?, location = ? WHERE id = ?`,
		[]any{w.Name, w.Location, w.ID}, trail)
	if !res.OK() {
		if isUniqueViolation(res.Err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update warehouse: %w", res.Err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List bodegas por nombre.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	list, err := r.list(ctx, `SELECT id, name, COALESCE(location, '') FROM warehouses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return list, nil
}

func (r *WarehouseRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	res := r.gw.Query(ctx, query, args, func(rows *sql.Rows) error {
		for rows.Next() {
			var w entity.Warehouse
			if err := rows.Scan(&w.ID, &w.Name, &w.Location); err != nil {
				return err
			}
			out = append(out, &w)
		}
		return nil
	}, nil)
	if !res.OK() {
		return nil, res.Err
	}
	return out, nil
}
