package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/xlsx"
)

func TestItemsSpreadsheet_UnaFilaPorArticulo(t *testing.T) {
	items := []dto.ItemResponse{
		{Name: "Bolt", CategoryName: "Parts", Quantity: 3, Price: decimal.RequireFromString("9.99"), MinStock: 5, Supplier: "Acme", Barcode: "123", DateAdded: "2024-03-01"},
		{Name: "Gear", CategoryName: "Parts", Quantity: 0, Price: decimal.RequireFromString("2"), DateAdded: "2024-03-02"},
	}

	data, err := xlsx.NewExcelizeExporter().ItemsSpreadsheet(context.Background(), items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, xlsx.Headers, rows[0])

	name, _ := f.GetCellValue(xlsx.SheetName, "A2")
	category, _ := f.GetCellValue(xlsx.SheetName, "B2")
	qty, _ := f.GetCellValue(xlsx.SheetName, "C2")
	barcode, _ := f.GetCellValue(xlsx.SheetName, "G2")
	assert.Equal(t, "Bolt", name)
	assert.Equal(t, "Parts", category)
	assert.Equal(t, "3", qty)
	assert.Equal(t, "123", barcode)

	gear, _ := f.GetCellValue(xlsx.SheetName, "A3")
	assert.Equal(t, "Gear", gear)
}

func TestItemsSpreadsheet_SinArticulosSoloEncabezado(t *testing.T) {
	data, err := xlsx.NewExcelizeExporter().ItemsSpreadsheet(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
