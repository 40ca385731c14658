package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, COALESCE(contact, ''), COALESCE(email, ''), COALESCE(address, '')`

// SupplierRepo implementación del puerto SupplierRepository.
type SupplierRepo struct {
	gw *Gateway
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(gw *Gateway) *SupplierRepo {
	return &SupplierRepo{gw: gw}
}

// Create persiste un proveedor; domain.ErrDuplicate si el nombre ya existe.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier, trail *entity.AuditTrail) error {
	res := r.gw.Query(ctx, `INSERT INTO suppliers (name, contact, email, address) VALUES (?, ?, ?, ?) RETURNING id`,
		[]any{s.Name, s.Contact, s.Email, s.Address}, scanID(&s.ID), trail)
	if !res.OK() {
		if isUniqueViolation(res.Err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", res.Err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID (nil, nil si no existe).
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	list, err := r.list(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Update actualiza los datos de contacto.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier, trail *entity.AuditTrail) error {
	res := r.gw.ExecIfAffected(ctx, `UPDATE suppliers SET name = ?, contact = ?, email = ?, address = ? WHERE id = ?`,
		[]any{s.Name, s.Contact, s.Email, s.Address, s.ID}, trail)
	if !res.OK() {
		if isUniqueViolation(res.Err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", res.Err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteIfUnreferenced borra el proveedor si ninguna orden de compra lo usa.
func (r *SupplierRepo) DeleteIfUnreferenced(ctx context.Context, id int64, trail *entity.AuditTrail) error {
	res := r.gw.ExecIfAffected(ctx, `
		DELETE FROM suppliers
		WHERE id = ? AND NOT EXISTS (SELECT 1 FROM purchase_orders WHERE supplier_id = ?)`,
		[]any{id, id}, trail)
	if !res.OK() {
		return fmt.Errorf("delete supplier: %w", res.Err)
	}
	if res.RowsAffected == 1 {
		return nil
	}
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: el proveedor '%s' tiene órdenes de compra", domain.ErrConflict, s.Name)
}

// List proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	list, err := r.list(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}

func (r *SupplierRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	res := r.gw.Query(ctx, query, args, func(rows *sql.Rows) error {
		for rows.Next() {
			var s entity.Supplier
			if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Email, &s.Address); err != nil {
				return err
			}
			out = append(out, &s)
		}
		return nil
	}, nil)
	if !res.OK() {
		return nil, res.Err
	}
	return out, nil
}
