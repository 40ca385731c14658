package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockReportDTO artículos agotados con su exposición y artículos en advertencia.
type LowStockReportDTO struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	Depleted      []ItemResponse  `json:"depleted"`
	TotalValue    decimal.Decimal `json:"total_value"`    // Σ precio de los agotados
	PotentialLoss decimal.Decimal `json:"potential_loss"` // 25% de TotalValue
	Warning       []ItemResponse  `json:"warning"`        // 0 < cantidad <= mínimo, por cantidad
}

// InventoryMetricsDTO métricas de la cartera.
type InventoryMetricsDTO struct {
	TotalItems      int             `json:"total_items"`
	AvailableItems  int             `json:"available_items"`
	OutOfStockItems int             `json:"out_of_stock_items"`
	LowStockItems   int             `json:"low_stock_items"`
	OutOfStockPct   decimal.Decimal `json:"out_of_stock_pct"`
	LowStockPct     decimal.Decimal `json:"low_stock_pct"`
	TotalValue      decimal.Decimal `json:"total_value"`
}

// ReportLineDTO artículo clasificado con su valor de línea.
type ReportLineDTO struct {
	ItemResponse
	LineValue decimal.Decimal `json:"line_value"`
}

// InventoryReportDTO reporte completo de inventario.
type InventoryReportDTO struct {
	GeneratedAt        time.Time           `json:"generated_at"`
	Metrics            InventoryMetricsDTO `json:"metrics"`
	RiskLevel          string              `json:"risk_level"` // CRITICAL | HIGH | LOW
	TopDepleted        []ItemResponse      `json:"top_depleted"`
	AdditionalDepleted int                 `json:"additional_depleted"`
	Items              []ReportLineDTO     `json:"items"`
}

// CategoryRollupDTO fila por categoría.
type CategoryRollupDTO struct {
	CategoryID    int64           `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	ItemCount     int             `json:"item_count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// CategoryReportDTO desglose por categoría con totales.
type CategoryReportDTO struct {
	GeneratedAt   time.Time           `json:"generated_at"`
	Categories    []CategoryRollupDTO `json:"categories"`
	TotalItems    int                 `json:"total_items"`
	TotalQuantity int                 `json:"total_quantity"`
	TotalValue    decimal.Decimal     `json:"total_value"`
}

// AvailabilityDTO partición disponible / agotado para la exportación PDF.
type AvailabilityDTO struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Available   []ItemResponse `json:"available"`
	Depleted    []ItemResponse `json:"depleted"`
}
