package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategoryRollup fila agregada por categoría (incluye categorías sin artículos).
type CategoryRollup struct {
	CategoryID    int64
	CategoryName  string
	ItemCount     int
	TotalQuantity int
	TotalValue    decimal.Decimal
}

// StockCounts contadores para las tarjetas del dashboard.
type StockCounts struct {
	TotalItems      int
	OutOfStockItems int
	TotalCategories int
}

// ReportRepository consultas read-only de agregación.
type ReportRepository interface {
	CategoryRollup(ctx context.Context) ([]CategoryRollup, error)
	StockCounts(ctx context.Context) (StockCounts, error)
}
