package sqlstore

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con repositorios atados a una misma transacción.
type TxRunner struct {
	gw *Gateway
}

// NewTxRunner construye el runner con la pasarela.
func NewTxRunner(gw *Gateway) *TxRunner {
	return &TxRunner{gw: gw}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	return r.gw.RunInTx(ctx, func(tx *Gateway) error {
		return fn(NewItemRepository(tx), NewPurchaseOrderRepository(tx))
	})
}
