package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `
	i.id, COALESCE(i.name, ''), COALESCE(i.category_id, 0), COALESCE(c.name, ''),
	COALESCE(i.quantity, 0), COALESCE(i.price, 0), COALESCE(i.min_stock, 0),
	COALESCE(i.supplier, ''), COALESCE(i.date_added, ''), COALESCE(i.expiry_date, ''),
	i.warehouse_id, COALESCE(i.barcode, '')`

const itemFrom = ` FROM items i LEFT JOIN categories c ON c.id = i.category_id`

// validName filtro de artículos con nombre (los demás son registros basura).
const validName = `i.name IS NOT NULL AND TRIM(i.name) <> ''`

// ItemRepo implementación del puerto ItemRepository sobre la pasarela.
type ItemRepo struct {
	gw *Gateway
}

// NewItemRepository construye el adaptador de persistencia para artículos.
func NewItemRepository(gw *Gateway) *ItemRepo {
	return &ItemRepo{gw: gw}
}

// Create persiste un nuevo artículo y asigna item.ID.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item, trail *entity.AuditTrail) error {
	query := `
		INSERT INTO items (name, category_id, quantity, price, min_stock, supplier, date_added, expiry_date, warehouse_id, barcode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	res := r.gw.Query(ctx, query, []any{
		item.Name, item.CategoryID, item.Quantity, item.Price, item.MinStock,
		item.Supplier, item.DateAdded, nullString(item.ExpiryDate), item.WarehouseID, item.Barcode,
	}, scanID(&item.ID), trail)
	if !res.OK() {
		return fmt.Errorf("insert item: %w", res.Err)
	}
	return nil
}

// Update reemplaza los campos editables; domain.ErrNotFound si el artículo no existe.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item, trail *entity.AuditTrail) error {
	query := `
		UPDATE items SET name = ?, category_id = ?, quantity = ?, price = ?, min_stock = ?,
			supplier = ?, expiry_date = ?, warehouse_id = ?, barcode = ?
		WHERE id = ?`
	res := r.gw.ExecIfAffected(ctx, query, []any{
		item.Name, item.CategoryID, item.Quantity, item.Price, item.MinStock,
		item.Supplier, nullString(item.ExpiryDate), item.WarehouseID, item.Barcode, item.ID,
	}, trail)
	if !res.OK() {
		return fmt.Errorf("update item: %w", res.Err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borrado físico; domain.ErrNotFound si no existe.
func (r *ItemRepo) Delete(ctx context.Context, id int64, trail *entity.AuditTrail) error {
	res := r.gw.ExecIfAffected(ctx, `DELETE FROM items WHERE id = ?`, []any{id}, trail)
	if !res.OK() {
		return fmt.Errorf("delete item: %w", res.Err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un artículo por ID (nil, nil si no existe).
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	items, err := r.list(ctx, `SELECT `+itemColumns+itemFrom+` WHERE i.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// List artículos válidos según el filtro.
func (r *ItemRepo) List(ctx context.Context, filter repository.StockFilter) ([]*entity.Item, error) {
	var where, order string
	switch filter {
	case repository.StockAvailable:
		where, order = `i.quantity > 0`, `i.name`
	case repository.StockOutOfStock:
		where, order = `i.quantity = 0`, `i.name`
	case repository.StockLow:
		where, order = `i.quantity > 0 AND i.quantity <= i.min_stock`, `i.quantity ASC, i.name`
	case repository.StockAll, "":
		where, order = `1 = 1`, `i.name`
	default:
		return nil, fmt.Errorf("%w: filtro de stock desconocido %q", domain.ErrInvalidInput, filter)
	}
	query := `SELECT ` + itemColumns + itemFrom + ` WHERE ` + validName + ` AND ` + where + ` ORDER BY ` + order
	items, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items (%s): %w", filter, err)
	}
	return items, nil
}

// LowestQuantity los n artículos válidos de menor cantidad.
func (r *ItemRepo) LowestQuantity(ctx context.Context, n int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + itemFrom + ` WHERE ` + validName + ` ORDER BY i.quantity ASC, i.name LIMIT ?`
	items, err := r.list(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("lowest quantity items: %w", err)
	}
	return items, nil
}

// AddQuantity suma delta a la cantidad actual.
func (r *ItemRepo) AddQuantity(ctx context.Context, id int64, delta int, trail *entity.AuditTrail) error {
	res := r.gw.ExecIfAffected(ctx, `UPDATE items SET quantity = COALESCE(quantity, 0) + ? WHERE id = ?`, []any{delta, id}, trail)
	if !res.OK() {
		return fmt.Errorf("add item quantity: %w", res.Err)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteInvalid borra artículos con nombre nulo o en blanco.
func (r *ItemRepo) DeleteInvalid(ctx context.Context, trail *entity.AuditTrail) (int64, error) {
	res := r.gw.Exec(ctx, `DELETE FROM items WHERE name IS NULL OR TRIM(name) = ''`, nil, trail)
	if !res.OK() {
		return 0, fmt.Errorf("delete invalid items: %w", res.Err)
	}
	return res.RowsAffected, nil
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	var out []*entity.Item
	res := r.gw.Query(ctx, query, args, func(rows *sql.Rows) error {
		for rows.Next() {
			var (
				it        entity.Item
				warehouse sql.NullInt64
			)
			if err := rows.Scan(
				&it.ID, &it.Name, &it.CategoryID, &it.CategoryName,
				&it.Quantity, &it.Price, &it.MinStock,
				&it.Supplier, &it.DateAdded, &it.ExpiryDate,
				&warehouse, &it.Barcode,
			); err != nil {
				return err
			}
			if warehouse.Valid {
				id := warehouse.Int64
				it.WarehouseID = &id
			}
			out = append(out, &it)
		}
		return nil
	}, nil)
	if !res.OK() {
		return nil, res.Err
	}
	return out, nil
}

// scanID lee el id devuelto por INSERT ... RETURNING id.
func scanID(dst *int64) ScanFunc {
	return func(rows *sql.Rows) error {
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return fmt.Errorf("insert sin id devuelto")
		}
		return rows.Scan(dst)
	}
}
