package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/pdf"
)

func TestInventoryPDF_GeneraDocumento(t *testing.T) {
	av := &dto.AvailabilityDTO{
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Available: []dto.ItemResponse{
			{Name: "Bolt", CategoryName: "Parts", Quantity: 3, Price: decimal.RequireFromString("9.99"), Status: "LOW"},
		},
		Depleted: []dto.ItemResponse{
			{Name: "Gear", Quantity: 0, Price: decimal.RequireFromString("2"), Status: "DEPLETED"},
		},
	}

	data, err := pdf.NewMarotoPDFGenerator("inventory-pro").InventoryPDF(context.Background(), av)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

// Sin artículos el documento se genera igual (secciones vacías).
func TestInventoryPDF_SinArticulos(t *testing.T) {
	data, err := pdf.NewMarotoPDFGenerator("inventory-pro").InventoryPDF(context.Background(), &dto.AvailabilityDTO{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
