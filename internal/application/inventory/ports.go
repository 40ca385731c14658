package inventory

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// La recepción de órdenes de compra lo usa para cambiar estado y stock de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}
