// Package xlsx exporta el inventario a una hoja de cálculo con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
)

var _ ports.SpreadsheetExporter = (*ExcelizeExporter)(nil)

// SheetName hoja única del libro exportado.
const SheetName = "Inventory"

// Headers columnas de la exportación, en orden.
var Headers = []string{"Name", "Category", "Quantity", "Price", "Min Stock", "Supplier", "Barcode", "Date Added"}

// ExcelizeExporter implementa ports.SpreadsheetExporter.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ItemsSpreadsheet una fila por artículo con el nombre de categoría resuelto.
func (e *ExcelizeExporter) ItemsSpreadsheet(_ context.Context, items []dto.ItemResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	_ = f.SetCellStyle(SheetName, "A1", last, header)

	for r, it := range items {
		values := []any{
			it.Name,
			it.CategoryName,
			it.Quantity,
			it.Price.InexactFloat64(),
			it.MinStock,
			it.Supplier,
			it.Barcode,
			it.DateAdded,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", r+2, err)
			}
		}
	}
	if len(items) > 0 {
		_ = f.SetCellStyle(SheetName, "D2", fmt.Sprintf("D%d", len(items)+1), money)
	}
	_ = f.SetColWidth(SheetName, "A", "B", 28)
	_ = f.SetColWidth(SheetName, "F", "H", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
