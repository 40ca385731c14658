package repository

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// StockFilter selección de artículos válidos por estado de stock.
type StockFilter string

const (
	StockAll        StockFilter = "all"          // todos, por nombre
	StockAvailable  StockFilter = "available"    // cantidad > 0, por nombre
	StockOutOfStock StockFilter = "out_of_stock" // cantidad = 0, por nombre
	StockLow        StockFilter = "low_stock"    // 0 < cantidad <= mínimo, por cantidad ascendente
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los listados excluyen artículos sin nombre. Las mutaciones reciben el descriptor de auditoría.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item, trail *entity.AuditTrail) error
	Update(ctx context.Context, item *entity.Item, trail *entity.AuditTrail) error
	Delete(ctx context.Context, id int64, trail *entity.AuditTrail) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context, filter StockFilter) ([]*entity.Item, error)
	// LowestQuantity los n artículos válidos de menor cantidad (serie del gráfico).
	LowestQuantity(ctx context.Context, n int) ([]*entity.Item, error)
	// AddQuantity suma delta a la cantidad (recepción de órdenes de compra).
	AddQuantity(ctx context.Context, id int64, delta int, trail *entity.AuditTrail) error
	// DeleteInvalid borra los artículos sin nombre y devuelve cuántos eliminó.
	DeleteInvalid(ctx context.Context, trail *entity.AuditTrail) (int64, error)
}
