package repository

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category, trail *entity.AuditTrail) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category, trail *entity.AuditTrail) error
	List(ctx context.Context) ([]*entity.Category, error)
	// DeleteIfUnused borra la categoría sólo si ningún artículo la referencia.
	// Devuelve *domain.CategoryInUseError en caso contrario y domain.ErrNotFound si no existe.
	DeleteIfUnused(ctx context.Context, id int64, trail *entity.AuditTrail) error
	CountItems(ctx context.Context, id int64) (int, error)
}
