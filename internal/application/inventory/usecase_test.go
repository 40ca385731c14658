package inventory_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/bootstrap"
	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
	"github.com/jhoicas/inventory-pro/pkg/config"
)

var admin = entity.Session{UserID: 1, Username: "admin", Role: entity.RoleAdmin}

func newRuntime(t *testing.T, authz ports.Authorizer) *bootstrap.Runtime {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Name: "inventory-pro-test"},
		DB:  config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "inventory.db")},
	}
	rt, err := bootstrap.Open(context.Background(), cfg, nil, bootstrap.Options{
		Authorizer: authz,
		BcryptCost: bcrypt.MinCost,
		SkipSweep:  true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })
	return rt
}

func mustCategory(t *testing.T, rt *bootstrap.Runtime, name string) int64 {
	t.Helper()
	c, err := rt.Categories.Create(context.Background(), admin, dto.CategoryRequest{Name: name})
	require.NoError(t, err)
	return c.ID
}

func mustItem(t *testing.T, rt *bootstrap.Runtime, in dto.ItemRequest) dto.ItemResponse {
	t.Helper()
	it, err := rt.Items.Create(context.Background(), admin, in)
	require.NoError(t, err)
	return *it
}

func auditActions(t *testing.T, rt *bootstrap.Runtime) []string {
	t.Helper()
	entries, err := rt.Audit.ListRecent(context.Background(), 100)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Action)
	}
	return out
}

// ── Artículos ──

func TestItemUseCase_ValidaAntesDeEscribir(t *testing.T) {
	rt := newRuntime(t, nil)
	catID := mustCategory(t, rt, "Tools")
	missingWarehouse := int64(99)

	tests := []struct {
		name string
		in   dto.ItemRequest
	}{
		{"nombre en blanco", dto.ItemRequest{Name: "   ", CategoryID: catID, Quantity: 1}},
		{"sin categoría", dto.ItemRequest{Name: "Saw", Quantity: 1}},
		{"categoría inexistente", dto.ItemRequest{Name: "Saw", CategoryID: 99, Quantity: 1}},
		{"cantidad negativa", dto.ItemRequest{Name: "Saw", CategoryID: catID, Quantity: -1}},
		{"mínimo negativo", dto.ItemRequest{Name: "Saw", CategoryID: catID, Quantity: 1, MinStock: -2}},
		{"precio negativo", dto.ItemRequest{Name: "Saw", CategoryID: catID, Quantity: 1, Price: decimal.NewFromInt(-1)}},
		{"vencimiento inválido", dto.ItemRequest{Name: "Saw", CategoryID: catID, Quantity: 1, ExpiryDate: "31/12/2024"}},
		{"bodega inexistente", dto.ItemRequest{Name: "Saw", CategoryID: catID, Quantity: 1, WarehouseID: &missingWarehouse}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rt.Items.Create(context.Background(), admin, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	all, err := rt.Items.List(context.Background(), repository.StockAll)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotContains(t, auditActions(t, rt), entity.ActionAddItem)
}

func TestItemUseCase_CreaNormalizaYAudita(t *testing.T) {
	rt := newRuntime(t, nil)
	catID := mustCategory(t, rt, "Hardware")

	got := mustItem(t, rt, dto.ItemRequest{
		Name: "  Widget  ", CategoryID: catID, Quantity: 3, Price: decimal.RequireFromString("9.999"),
		MinStock: 5, Supplier: " Acme ", Barcode: "123", ExpiryDate: "2030-01-31",
	})

	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "Hardware", got.CategoryName)
	assert.Equal(t, "Acme", got.Supplier)
	assert.Equal(t, "LOW", got.Status)
	assert.Equal(t, "2030-01-31", got.ExpiryDate)
	assert.NotEmpty(t, got.DateAdded)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("10")), got.Price.String())

	entries, err := rt.Audit.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionAddItem, entries[0].Action)
	assert.Equal(t, "Added item: Widget", entries[0].Details)
	require.NotNil(t, entries[0].UserID)
	assert.EqualValues(t, 1, *entries[0].UserID)
}

func TestItemUseCase_UpdateConservaFechaDeAlta(t *testing.T) {
	rt := newRuntime(t, nil)
	ctx := context.Background()
	catID := mustCategory(t, rt, "Hardware")
	created := mustItem(t, rt, dto.ItemRequest{Name: "Widget", CategoryID: catID, Quantity: 3, MinStock: 1})

	updated, err := rt.Items.Update(ctx, admin, created.ID, dto.ItemRequest{Name: "Widget XL", CategoryID: catID, Quantity: 0, MinStock: 1})
	require.NoError(t, err)
	assert.Equal(t, "Widget XL", updated.Name)
	assert.Equal(t, "DEPLETED", updated.Status)
	assert.Equal(t, created.DateAdded, updated.DateAdded)

	_, err = rt.Items.Update(ctx, admin, 999, dto.ItemRequest{Name: "Ghost", CategoryID: catID})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, rt.Items.Delete(ctx, admin, created.ID))
	assert.ErrorIs(t, rt.Items.Delete(ctx, admin, created.ID), domain.ErrNotFound)
	_, err = rt.Items.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, []string{entity.ActionDeleteItem, entity.ActionUpdateItem, entity.ActionAddItem, entity.ActionAddCategory},
		auditActions(t, rt))
}

func TestItemUseCase_SweepConSesionDeSistema(t *testing.T) {
	rt := newRuntime(t, nil)
	ctx := context.Background()
	for _, stmt := range []string{
		`INSERT INTO items (name, quantity) VALUES (NULL, 1)`,
		`INSERT INTO items (name, quantity) VALUES ('  ', 1)`,
	} {
		_, err := rt.DB.Exec(stmt)
		require.NoError(t, err)
	}

	n, err := rt.Items.SweepInvalid(ctx, entity.SystemSession())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	n, err = rt.Items.SweepInvalid(ctx, entity.SystemSession())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	entries, err := rt.Audit.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, entity.ActionCleanDatabase, entries[0].Action)
	assert.Nil(t, entries[0].UserID)
}

func TestItemUseCase_AuthorizerRechaza(t *testing.T) {
	deny := ports.AuthorizerFunc(func(_ context.Context, sess entity.Session, action string) error {
		if sess.Role == entity.RoleStaff && action == entity.ActionDeleteCategory {
			return domain.ErrForbidden
		}
		return nil
	})
	rt := newRuntime(t, deny)
	catID := mustCategory(t, rt, "Tools")
	staff := entity.Session{UserID: 2, Username: "ana", Role: entity.RoleStaff}

	err := rt.Categories.Delete(context.Background(), staff, catID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = rt.Categories.GetByID(context.Background(), catID)
	assert.NoError(t, err)
}

// ── Categorías ──

func TestCategoryUseCase_BorradoEnUso(t *testing.T) {
	rt := newRuntime(t, nil)
	ctx := context.Background()
	catID := mustCategory(t, rt, "Tools")
	mustItem(t, rt, dto.ItemRequest{Name: "Hammer", CategoryID: catID, Quantity: 1})

	err := rt.Categories.Delete(ctx, admin, catID)
	var inUse *domain.CategoryInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 1, inUse.ItemCount)
	assert.Contains(t, err.Error(), "Tools")

	assert.ErrorIs(t, rt.Categories.Delete(ctx, admin, 999), domain.ErrNotFound)
	_, err = rt.Categories.Update(ctx, admin, 999, dto.CategoryRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Las operaciones rechazadas no dejan rastro en la auditoría.
	assert.Equal(t, []string{entity.ActionAddItem, entity.ActionAddCategory}, auditActions(t, rt))

	_, err = rt.Categories.Create(ctx, admin, dto.CategoryRequest{Name: " Tools "})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = rt.Categories.Create(ctx, admin, dto.CategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Órdenes de compra ──

func TestPurchaseOrderUseCase_RecepcionAtomica(t *testing.T) {
	rt := newRuntime(t, nil)
	ctx := context.Background()
	catID := mustCategory(t, rt, "Parts")
	bolt := mustItem(t, rt, dto.ItemRequest{Name: "Bolt", CategoryID: catID, Quantity: 2, MinStock: 10})
	sup, err := rt.Suppliers.Create(ctx, admin, dto.SupplierRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = rt.PurchaseOrders.Create(ctx, admin, dto.CreatePurchaseOrderRequest{SupplierID: sup.ID, ItemID: bolt.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = rt.PurchaseOrders.Create(ctx, admin, dto.CreatePurchaseOrderRequest{SupplierID: 99, ItemID: bolt.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	po, err := rt.PurchaseOrders.Create(ctx, admin, dto.CreatePurchaseOrderRequest{SupplierID: sup.ID, ItemID: bolt.ID, Quantity: 8})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusPending, po.Status)
	assert.Equal(t, "Acme", po.SupplierName)

	received, err := rt.PurchaseOrders.Receive(ctx, admin, po.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusReceived, received.Status)

	_, err = rt.PurchaseOrders.Receive(ctx, admin, po.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = rt.PurchaseOrders.Receive(ctx, admin, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := rt.Items.GetByID(ctx, bolt.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, "LOW", got.Status)
}

// Si el artículo desaparece antes de recibir, la orden sigue pendiente.
func TestPurchaseOrderUseCase_RecepcionSinArticuloRevierte(t *testing.T) {
	rt := newRuntime(t, nil)
	ctx := context.Background()
	catID := mustCategory(t, rt, "Parts")
	bolt := mustItem(t, rt, dto.ItemRequest{Name: "Bolt", CategoryID: catID, Quantity: 2})
	sup, err := rt.Suppliers.Create(ctx, admin, dto.SupplierRequest{Name: "Acme"})
	require.NoError(t, err)
	po, err := rt.PurchaseOrders.Create(ctx, admin, dto.CreatePurchaseOrderRequest{SupplierID: sup.ID, ItemID: bolt.ID, Quantity: 8})
	require.NoError(t, err)
	require.NoError(t, rt.Items.Delete(ctx, admin, bolt.ID))

	_, err = rt.PurchaseOrders.Receive(ctx, admin, po.ID)
	require.Error(t, err)

	list, err := rt.PurchaseOrders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.POStatusPending, list[0].Status)
	assert.NotContains(t, auditActions(t, rt), entity.ActionReceivePurchaseOrder)
}
