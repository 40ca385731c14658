package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación read-only.
type ReportRepo struct {
	gw *Gateway
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(gw *Gateway) *ReportRepo {
	return &ReportRepo{gw: gw}
}

// CategoryRollup conteo, unidades y valor por categoría; las categorías vacías reportan ceros.
func (r *ReportRepo) CategoryRollup(ctx context.Context) ([]repository.CategoryRollup, error) {
	query := `
		SELECT c.id, c.name, COUNT(i.id), COALESCE(SUM(i.quantity), 0), COALESCE(SUM(i.quantity * i.price), 0)
		FROM categories c
		LEFT JOIN items i ON i.category_id = c.id AND i.name IS NOT NULL AND TRIM(i.name) <> ''
		GROUP BY c.id, c.name
		ORDER BY c.name`
	var out []repository.CategoryRollup
	res := r.gw.Query(ctx, query, nil, func(rows *sql.Rows) error {
		for rows.Next() {
			var row repository.CategoryRollup
			if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.ItemCount, &row.TotalQuantity, &row.TotalValue); err != nil {
				return err
			}
			// SUM sobre REAL en SQLite arrastra error binario.
			row.TotalValue = row.TotalValue.Round(2)
			out = append(out, row)
		}
		return nil
	}, nil)
	if !res.OK() {
		return nil, fmt.Errorf("category rollup: %w", res.Err)
	}
	return out, nil
}

// StockCounts totales para las tarjetas del dashboard.
func (r *ReportRepo) StockCounts(ctx context.Context) (repository.StockCounts, error) {
	var c repository.StockCounts
	query := `
		SELECT
			(SELECT COUNT(*) FROM items WHERE name IS NOT NULL AND TRIM(name) <> ''),
			(SELECT COUNT(*) FROM items WHERE name IS NOT NULL AND TRIM(name) <> '' AND quantity = 0),
			(SELECT COUNT(*) FROM categories)`
	res := r.gw.Query(ctx, query, nil, func(rows *sql.Rows) error {
		if rows.Next() {
			return rows.Scan(&c.TotalItems, &c.OutOfStockItems, &c.TotalCategories)
		}
		return rows.Err()
	}, nil)
	if !res.OK() {
		return repository.StockCounts{}, fmt.Errorf("stock counts: %w", res.Err)
	}
	return c, nil
}
