package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/auth"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/application/reporting"
	"github.com/jhoicas/inventory-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ItemUC          *inventory.ItemUseCase
	CategoryUC      *inventory.CategoryUseCase
	PurchaseOrderUC *inventory.PurchaseOrderUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	SupplierUC      *usecase.SupplierUseCase
	UserUC          *usecase.UserUseCase
	ReportUC        *reporting.ReportUseCase
	ExportUC        *reporting.ExportUseCase
	Renderer        ports.ReportRenderer
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Post("/sweep", itemHandler.Sweep)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Purchase orders
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Post("/:id/receive", orderHandler.Receive)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)

	// Reports (sólo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Renderer)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/categories", reportHandler.Categories)

	dashboardHandler := NewDashboardHandler(deps.ReportUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Exports
	exports := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/items.xlsx", exportHandler.Spreadsheet)
	exports.Get("/items.pdf", exportHandler.PDF)
}
