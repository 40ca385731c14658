package repository

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder, trail *entity.AuditTrail) error
	GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error)
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)
	// SetStatus cambia el estado sólo si el actual es from; false si no aplicó.
	SetStatus(ctx context.Context, id int64, from, to string, trail *entity.AuditTrail) (bool, error)
}
