package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/bootstrap"
	apphttp "github.com/jhoicas/inventory-pro/internal/interfaces/http"
	"github.com/jhoicas/inventory-pro/pkg/config"
)

// newServer levanta el router completo sobre un SQLite temporal.
func newServer(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		App:   config.AppConfig{Env: "test", Name: "inventory-pro-test"},
		DB:    config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "inventory.db")},
		JWT:   config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer},
		Admin: config.AdminConfig{DefaultPassword: "admin"},
	}
	rt, err := bootstrap.Open(context.Background(), cfg, nil, bootstrap.Options{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          rt.Auth,
		ItemUC:          rt.Items,
		CategoryUC:      rt.Categories,
		PurchaseOrderUC: rt.PurchaseOrders,
		WarehouseUC:     rt.Warehouses,
		SupplierUC:      rt.Suppliers,
		UserUC:          rt.Users,
		ReportUC:        rt.Reports,
		ExportUC:        rt.Exports,
		Renderer:        rt.Renderer,
		JWTSecret:       testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Role)
	return out.Token
}

func TestLogin_FallosIndistinguibles(t *testing.T) {
	app := newServer(t)

	wrong := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "nope"})
	unknown := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "ghost", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode)
	assert.Equal(t, wrong.StatusCode, unknown.StatusCode)
	wrongBody, _ := io.ReadAll(wrong.Body)
	unknownBody, _ := io.ReadAll(unknown.Body)
	assert.Equal(t, string(wrongBody), string(unknownBody))
	assert.Contains(t, string(wrongBody), "INVALID_CREDENTIALS")
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodGet, "/api/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestItems_FlujoCompleto(t *testing.T) {
	app := newServer(t)
	token := login(t, app)

	resp := call(t, app, http.MethodPost, "/api/categories", token, dto.CategoryRequest{Name: "Tools"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cat := decode[dto.CategoryResponse](t, resp)

	widget := map[string]any{
		"name": "Widget", "category_id": cat.ID, "quantity": 0, "price": "9.99",
		"min_stock": 5, "supplier": "Acme", "barcode": "123",
	}
	resp = call(t, app, http.MethodPost, "/api/items", token, widget)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFIRM_ZERO_STOCK", decode[dto.ErrorResponse](t, resp).Code)

	widget["confirm_zero_stock"] = true
	resp = call(t, app, http.MethodPost, "/api/items", token, widget)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, "DEPLETED", created.Status)
	assert.Equal(t, "Tools", created.CategoryName)

	delete(widget, "confirm_zero_stock")
	resp = call(t, app, http.MethodPut, "/api/items/"+itoa(created.ID), token, widget)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFIRM_ZERO_STOCK", decode[dto.ErrorResponse](t, resp).Code)
	widget["quantity"] = 4
	resp = call(t, app, http.MethodPut, "/api/items/"+itoa(created.ID), token, widget)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	widget["quantity"] = 0
	widget["confirm_zero_stock"] = true
	resp = call(t, app, http.MethodPut, "/api/items/"+itoa(created.ID), token, widget)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/items?status=out_of_stock", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[dto.ItemResponse]](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Items[0].ID)

	resp = call(t, app, http.MethodGet, "/api/items?status=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/categories/"+itoa(cat.ID), token, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	inUse := decode[dto.CategoryInUseResponse](t, resp)
	assert.Equal(t, "CATEGORY_IN_USE", inUse.Code)
	assert.Equal(t, 1, inUse.ItemCount)

	resp = call(t, app, http.MethodGet, "/api/items/999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/items", token, map[string]any{"name": "  ", "category_id": cat.ID, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReports_TextoYExportaciones(t *testing.T) {
	app := newServer(t)
	token := login(t, app)

	resp := call(t, app, http.MethodGet, "/api/reports/low-stock?format=text", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "LOW STOCK REPORT")

	resp = call(t, app, http.MethodGet, "/api/reports/inventory", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decode[dto.InventoryReportDTO](t, resp)
	assert.Equal(t, 0, inv.Metrics.TotalItems)
	assert.Equal(t, "LOW", inv.RiskLevel)

	resp = call(t, app, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/exports/items.xlsx", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.ContentTypeXLSX, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventory_export_")
}

func TestPurchaseOrders_Recepcion(t *testing.T) {
	app := newServer(t)
	token := login(t, app)

	cat := decode[dto.CategoryResponse](t, call(t, app, http.MethodPost, "/api/categories", token, dto.CategoryRequest{Name: "Parts"}))
	item := decode[dto.ItemResponse](t, call(t, app, http.MethodPost, "/api/items", token,
		map[string]any{"name": "Bolt", "category_id": cat.ID, "quantity": 2, "price": "0.5", "min_stock": 10}))
	sup := decode[dto.SupplierResponse](t, call(t, app, http.MethodPost, "/api/suppliers", token, dto.SupplierRequest{Name: "Acme"}))

	resp := call(t, app, http.MethodPost, "/api/purchase-orders", token,
		dto.CreatePurchaseOrderRequest{SupplierID: sup.ID, ItemID: item.ID, Quantity: 8})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	po := decode[dto.PurchaseOrderResponse](t, resp)
	assert.Equal(t, "pending", po.Status)

	resp = call(t, app, http.MethodPost, "/api/purchase-orders/"+itoa(po.ID)+"/receive", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "received", decode[dto.PurchaseOrderResponse](t, resp).Status)

	resp = call(t, app, http.MethodPost, "/api/purchase-orders/"+itoa(po.ID)+"/receive", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	got := decode[dto.ItemResponse](t, call(t, app, http.MethodGet, "/api/items/"+itoa(item.ID), token, nil))
	assert.Equal(t, 10, got.Quantity)

	resp = call(t, app, http.MethodDelete, "/api/suppliers/"+itoa(sup.ID), token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
