package textreport_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/textreport"
)

var generated = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

func TestLowStock_FormatsExposure(t *testing.T) {
	r := textreport.New()
	out := r.LowStock(&dto.LowStockReportDTO{
		GeneratedAt: generated,
		Depleted: []dto.ItemResponse{
			{Name: "Widget", CategoryName: "Tools", Price: decimal.RequireFromString("1234.5"), MinStock: 3},
		},
		TotalValue:    decimal.RequireFromString("1234.5"),
		PotentialLoss: decimal.RequireFromString("308.63"),
		Warning: []dto.ItemResponse{
			{Name: "Bolt", Quantity: 2, MinStock: 5, Price: decimal.NewFromInt(1)},
		},
	})

	assert.Contains(t, out, "Generated on: 2024-05-02 09:30:00")
	assert.Contains(t, out, "Total Product Value at Risk: $1,234.50")
	assert.Contains(t, out, "Estimated Revenue Impact: $308.63")
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "Bolt (-): Current Stock: 2 | Minimum Required: 5")
}

func TestLowStock_NothingDepleted(t *testing.T) {
	out := textreport.New().LowStock(&dto.LowStockReportDTO{GeneratedAt: generated})
	assert.Contains(t, out, "No items are out of stock.")
	assert.NotContains(t, out, "LOW INVENTORY WARNING")
}

func TestInventory_EmptyAndPopulated(t *testing.T) {
	r := textreport.New()
	assert.Contains(t, r.Inventory(&dto.InventoryReportDTO{GeneratedAt: generated}), "No items in inventory.")

	out := r.Inventory(&dto.InventoryReportDTO{
		GeneratedAt: generated,
		Metrics: dto.InventoryMetricsDTO{
			TotalItems: 7, AvailableItems: 6, OutOfStockItems: 1,
			OutOfStockPct: decimal.RequireFromString("14.29"),
			LowStockPct:   decimal.Zero,
			TotalValue:    decimal.RequireFromString("25000"),
		},
		RiskLevel:          "HIGH",
		TopDepleted:        []dto.ItemResponse{{Name: "Widget"}},
		AdditionalDepleted: 2,
		Items: []dto.ReportLineDTO{{
			ItemResponse: dto.ItemResponse{Name: "Hammer", Quantity: 10, Status: "NORMAL", Price: decimal.NewFromInt(2500)},
			LineValue:    decimal.NewFromInt(25000),
		}},
	})
	assert.Contains(t, out, "Stock Depletion: 1 products (14.29%)")
	assert.Contains(t, out, "Total Portfolio Valuation: $25,000.00")
	assert.Contains(t, out, "Supply Chain Risk Assessment: HIGH")
	assert.Contains(t, out, "... and 2 additional critical items")
	assert.Contains(t, out, "Hammer")
}

func TestCategories_TotalRow(t *testing.T) {
	out := textreport.New().Categories(&dto.CategoryReportDTO{
		GeneratedAt: generated,
		Categories: []dto.CategoryRollupDTO{
			{CategoryName: "Tools", ItemCount: 2, TotalQuantity: 15, TotalValue: decimal.NewFromInt(90)},
			{CategoryName: "Empty", TotalValue: decimal.Zero},
		},
		TotalItems: 2, TotalQuantity: 15, TotalValue: decimal.NewFromInt(90),
	})
	assert.Contains(t, out, "Empty")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "$90.00")
}
