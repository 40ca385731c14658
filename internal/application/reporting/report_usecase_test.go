package reporting_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/bootstrap"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/pkg/config"
)

var admin = entity.Session{UserID: 1, Username: "admin", Role: entity.RoleAdmin}

// seeded almacén con tres artículos en "Tools" y una categoría vacía:
//
//	Anvil   qty 0   price 10.00  min 5  → DEPLETED
//	Bolt    qty 2   price  3.00  min 5  → LOW
//	Chisel  qty 10  price  1.00  min 2  → NORMAL
func seeded(t *testing.T) *bootstrap.Runtime {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Name: "inventory-pro-test"},
		DB:  config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "inventory.db")},
	}
	rt, err := bootstrap.Open(context.Background(), cfg, nil, bootstrap.Options{BcryptCost: bcrypt.MinCost, SkipSweep: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })

	ctx := context.Background()
	tools, err := rt.Categories.Create(ctx, admin, dto.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)
	_, err = rt.Categories.Create(ctx, admin, dto.CategoryRequest{Name: "Empty"})
	require.NoError(t, err)

	for _, in := range []dto.ItemRequest{
		{Name: "Anvil", Quantity: 0, Price: decimal.RequireFromString("10"), MinStock: 5},
		{Name: "Bolt", Quantity: 2, Price: decimal.RequireFromString("3"), MinStock: 5},
		{Name: "Chisel", Quantity: 10, Price: decimal.RequireFromString("1"), MinStock: 2},
	} {
		in.CategoryID = tools.ID
		_, err := rt.Items.Create(ctx, admin, in)
		require.NoError(t, err)
	}
	// Registro basura: no cuenta en ningún reporte.
	_, err = rt.DB.Exec(`INSERT INTO items (name, category_id, quantity, price) VALUES ('', ?, 0, 99)`, tools.ID)
	require.NoError(t, err)
	return rt
}

func decimalEq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestLowStockReport_ExposicionYAdvertencias(t *testing.T) {
	rt := seeded(t)

	rep, err := rt.Reports.LowStockReport(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.Depleted, 1)
	assert.Equal(t, "Anvil", rep.Depleted[0].Name)
	decimalEq(t, "10", rep.TotalValue)
	decimalEq(t, "2.5", rep.PotentialLoss)

	require.Len(t, rep.Warning, 1)
	assert.Equal(t, "Bolt", rep.Warning[0].Name)
	assert.False(t, rep.GeneratedAt.IsZero())
}

func TestInventoryReport_MetricasYRiesgo(t *testing.T) {
	rt := seeded(t)

	rep, err := rt.Reports.InventoryReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Metrics.TotalItems)
	assert.Equal(t, 2, rep.Metrics.AvailableItems)
	assert.Equal(t, 1, rep.Metrics.OutOfStockItems)
	assert.Equal(t, 1, rep.Metrics.LowStockItems)
	decimalEq(t, "33.33", rep.Metrics.OutOfStockPct)
	decimalEq(t, "16", rep.Metrics.TotalValue)
	assert.Equal(t, "CRITICAL", rep.RiskLevel)

	require.Len(t, rep.TopDepleted, 1)
	assert.Zero(t, rep.AdditionalDepleted)

	require.Len(t, rep.Items, 3)
	assert.Equal(t, "Bolt", rep.Items[1].Name)
	assert.Equal(t, "LOW", rep.Items[1].Status)
	decimalEq(t, "6", rep.Items[1].LineValue)
}

func TestCategoryReport_IncluyeCategoriasVacias(t *testing.T) {
	rt := seeded(t)

	rep, err := rt.Reports.CategoryReport(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.Categories, 2)
	assert.Equal(t, "Empty", rep.Categories[0].CategoryName)
	assert.Zero(t, rep.Categories[0].ItemCount)
	decimalEq(t, "0", rep.Categories[0].TotalValue)

	assert.Equal(t, "Tools", rep.Categories[1].CategoryName)
	assert.Equal(t, 3, rep.Categories[1].ItemCount)
	assert.Equal(t, 12, rep.Categories[1].TotalQuantity)
	decimalEq(t, "16", rep.Categories[1].TotalValue)

	assert.Equal(t, 3, rep.TotalItems)
	assert.Equal(t, 12, rep.TotalQuantity)
	decimalEq(t, "16", rep.TotalValue)
}

func TestDashboard_TarjetasYGrafico(t *testing.T) {
	rt := seeded(t)

	d, err := rt.Reports.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, d.TotalItems)
	assert.Equal(t, 1, d.OutOfStockItems)
	assert.Equal(t, 2, d.TotalCategories)
	require.Len(t, d.Chart, 3)
	assert.Equal(t, dto.ChartPointDTO{Label: "Anvil", Quantity: 0, Status: "DEPLETED"}, d.Chart[0])
	assert.Equal(t, dto.ChartPointDTO{Label: "Bolt", Quantity: 2, Status: "LOW"}, d.Chart[1])
	assert.Equal(t, dto.ChartPointDTO{Label: "Chisel", Quantity: 10, Status: "NORMAL"}, d.Chart[2])
}

func TestExports_NombresYFormato(t *testing.T) {
	rt := seeded(t)
	ctx := context.Background()

	xlsx, err := rt.Exports.Spreadsheet(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(xlsx.Name, "inventory_export_"))
	assert.True(t, strings.HasSuffix(xlsx.Name, ".xlsx"))
	assert.Equal(t, dto.ContentTypeXLSX, xlsx.ContentType)
	assert.True(t, strings.HasPrefix(string(xlsx.Data), "PK"), "xlsx es un zip")

	pdf, err := rt.Exports.PDF(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pdf.Name, "inventory_report_"))
	assert.Equal(t, dto.ContentTypePDF, pdf.ContentType)
	assert.True(t, strings.HasPrefix(string(pdf.Data), "%PDF"))
}
