package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderSelect = `
	SELECT po.id, COALESCE(po.supplier_id, 0), COALESCE(s.name, ''), COALESCE(po.item_id, 0), COALESCE(i.name, ''),
		po.quantity, po.order_date, po.status
	FROM purchase_orders po
	LEFT JOIN suppliers s ON s.id = po.supplier_id
	LEFT JOIN items i ON i.id = po.item_id`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository.
type PurchaseOrderRepo struct {
	gw *Gateway
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewPurchaseOrderRepository(gw *Gateway) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{gw: gw}
}

// Create persiste una orden y asigna su ID.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder, trail *entity.AuditTrail) error {
	res := r.gw.Query(ctx, `
		INSERT INTO purchase_orders (supplier_id, item_id, quantity, order_date, status)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		[]any{o.SupplierID, o.ItemID, o.Quantity, o.OrderDate, o.Status}, scanID(&o.ID), trail)
	if !res.OK() {
		return fmt.Errorf("insert purchase order: %w", res.Err)
	}
	return nil
}

// GetByID obtiene una orden por ID (nil, nil si no existe).
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	list, err := r.list(ctx, orderSelect+` WHERE po.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// List órdenes, más recientes primero.
func (r *PurchaseOrderRepo) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	list, err := r.list(ctx, orderSelect+` ORDER BY po.order_date DESC, po.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return list, nil
}

// SetStatus transición condicional from -> to.
func (r *PurchaseOrderRepo) SetStatus(ctx context.Context, id int64, from, to string, trail *entity.AuditTrail) (bool, error) {
	res := r.gw.ExecIfAffected(ctx, `UPDATE purchase_orders SET status = ? WHERE id = ? AND status = ?`, []any{to, id, from}, trail)
	if !res.OK() {
		return false, fmt.Errorf("update purchase order status: %w", res.Err)
	}
	return res.RowsAffected == 1, nil
}

func (r *PurchaseOrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	res := r.gw.Query(ctx, query, args, func(rows *sql.Rows) error {
		for rows.Next() {
			var o entity.PurchaseOrder
			if err := rows.Scan(&o.ID, &o.SupplierID, &o.SupplierName, &o.ItemID, &o.ItemName,
				&o.Quantity, &o.OrderDate, &o.Status); err != nil {
				return err
			}
			out = append(out, &o)
		}
		return nil
	}, nil)
	if !res.OK() {
		return nil, res.Err
	}
	return out, nil
}
