package repository

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier, trail *entity.AuditTrail) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier, trail *entity.AuditTrail) error
	// DeleteIfUnreferenced falla con domain.ErrConflict si hay órdenes de compra del proveedor.
	DeleteIfUnreferenced(ctx context.Context, id int64, trail *entity.AuditTrail) error
	List(ctx context.Context) ([]*entity.Supplier, error)
}
