package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// ExportUseCase arma los documentos descargables a partir de los reportes.
type ExportUseCase struct {
	reports *ReportUseCase
	items   repository.ItemRepository
	xlsx    ports.SpreadsheetExporter
	pdf     ports.PDFExporter
	now     func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(reports *ReportUseCase, items repository.ItemRepository, xlsx ports.SpreadsheetExporter, pdf ports.PDFExporter) *ExportUseCase {
	return &ExportUseCase{reports: reports, items: items, xlsx: xlsx, pdf: pdf, now: time.Now}
}

// SpreadsheetFilename inventory_export_YYYYMMDD_HHMMSS.xlsx
func SpreadsheetFilename(t time.Time) string {
	return "inventory_export_" + t.Format("20060102_150405") + ".xlsx"
}

// PDFFilename inventory_report_YYYYMMDD_HHMMSS.pdf
func PDFFilename(t time.Time) string {
	return "inventory_report_" + t.Format("20060102_150405") + ".pdf"
}

// Spreadsheet todos los artículos válidos por nombre, una fila cada uno.
func (uc *ExportUseCase) Spreadsheet(ctx context.Context) (*dto.ExportFile, error) {
	items, err := uc.items.List(ctx, repository.StockAll)
	if err != nil {
		return nil, err
	}
	data, err := uc.xlsx.ItemsSpreadsheet(ctx, inventory.ToItemResponses(items))
	if err != nil {
		return nil, fmt.Errorf("export xlsx: %w", err)
	}
	return &dto.ExportFile{Name: SpreadsheetFilename(uc.now()), ContentType: dto.ContentTypeXLSX, Data: data}, nil
}

// PDF reporte de disponibilidad: disponibles y agotados.
func (uc *ExportUseCase) PDF(ctx context.Context) (*dto.ExportFile, error) {
	av, err := uc.reports.Availability(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.InventoryPDF(ctx, av)
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	return &dto.ExportFile{Name: PDFFilename(uc.now()), ContentType: dto.ContentTypePDF, Data: data}, nil
}
