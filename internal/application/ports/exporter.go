package ports

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
)

// SpreadsheetExporter genera la hoja de cálculo plana de artículos.
type SpreadsheetExporter interface {
	ItemsSpreadsheet(ctx context.Context, items []dto.ItemResponse) ([]byte, error)
}

// PDFExporter genera el reporte PDF de disponibilidad.
type PDFExporter interface {
	InventoryPDF(ctx context.Context, availability *dto.AvailabilityDTO) ([]byte, error)
}

// ReportRenderer texto legible para operadores.
type ReportRenderer interface {
	LowStock(r *dto.LowStockReportDTO) string
	Inventory(r *dto.InventoryReportDTO) string
	Categories(r *dto.CategoryReportDTO) string
}
