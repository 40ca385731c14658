package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// PurchaseOrderUseCase registro y recepción de órdenes de compra.
// Recibir una orden suma su cantidad al stock del artículo en la misma transacción.
type PurchaseOrderUseCase struct {
	txRunner  TxRunner
	orders    repository.PurchaseOrderRepository
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	authz     ports.Authorizer
	now       func() time.Time
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner TxRunner,
	orders repository.PurchaseOrderRepository,
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	authz ports.Authorizer,
) *PurchaseOrderUseCase {
	if authz == nil {
		authz = ports.AllowAll{}
	}
	return &PurchaseOrderUseCase{
		txRunner:  txRunner,
		orders:    orders,
		items:     items,
		suppliers: suppliers,
		authz:     authz,
		now:       time.Now,
	}
}

// List órdenes, más recientes primero.
func (uc *PurchaseOrderUseCase) List(ctx context.Context) ([]dto.PurchaseOrderResponse, error) {
	list, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toPurchaseOrderResponse(o))
	}
	return out, nil
}

// Create registra una orden pendiente; proveedor y artículo deben existir.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, sess entity.Session, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionAddPurchaseOrder); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("la cantidad pedida debe ser mayor que cero")
	}
	supplier, err := uc.suppliers.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.Invalid("el proveedor %d no existe", in.SupplierID)
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Valid() {
		return nil, domain.Invalid("el artículo %d no existe", in.ItemID)
	}

	o := &entity.PurchaseOrder{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		ItemID:       item.ID,
		ItemName:     item.Name,
		Quantity:     in.Quantity,
		OrderDate:    entity.Today(uc.now()),
		Status:       entity.POStatusPending,
	}
	details := fmt.Sprintf("Ordered %d x %s from %s", o.Quantity, item.Name, supplier.Name)
	if err := uc.orders.Create(ctx, o, sess.Trail(entity.ActionAddPurchaseOrder, details)); err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(o)
	return &resp, nil
}

// Receive marca la orden como recibida y suma la cantidad al artículo, todo o nada.
// domain.ErrConflict si la orden no está pendiente.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, sess entity.Session, id int64) (*dto.PurchaseOrderResponse, error) {
	if err := uc.authz.Authorize(ctx, sess, entity.ActionReceivePurchaseOrder); err != nil {
		return nil, err
	}
	var received *entity.PurchaseOrder
	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, orders repository.PurchaseOrderRepository) error {
		o, err := orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		trail := sess.Trail(entity.ActionReceivePurchaseOrder, fmt.Sprintf("Received purchase order ID: %d", id))
		ok, err := orders.SetStatus(ctx, id, entity.POStatusPending, entity.POStatusReceived, trail)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: la orden %d está en estado %s", domain.ErrConflict, id, o.Status)
		}
		if o.ItemID == 0 {
			return fmt.Errorf("%w: el artículo de la orden %d ya no existe", domain.ErrConflict, id)
		}
		if err := items.AddQuantity(ctx, o.ItemID, o.Quantity, nil); err != nil {
			return err
		}
		o.Status = entity.POStatusReceived
		received = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(received)
	return &resp, nil
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	return dto.PurchaseOrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		ItemID:       o.ItemID,
		ItemName:     o.ItemName,
		Quantity:     o.Quantity,
		OrderDate:    o.OrderDate,
		Status:       o.Status,
	}
}
