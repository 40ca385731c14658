// Package bootstrap arma el grafo de dependencias compartido por el servidor HTTP,
// la CLI y las pruebas de integración: almacén, esquema, pasarela, repositorios
// y casos de uso.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/inventory-pro/internal/application/auth"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/application/reporting"
	"github.com/jhoicas/inventory-pro/internal/application/usecase"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	infrapdf "github.com/jhoicas/inventory-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/sqlstore"
	"github.com/jhoicas/inventory-pro/internal/infrastructure/textreport"
	infraxlsx "github.com/jhoicas/inventory-pro/internal/infrastructure/xlsx"
	"github.com/jhoicas/inventory-pro/pkg/config"
	"github.com/jhoicas/inventory-pro/pkg/logger"
)

// Options ajustes que no vienen de la configuración.
type Options struct {
	// Registerer recibe las métricas de la pasarela; nil no registra nada.
	Registerer prometheus.Registerer
	// Authorizer consultado antes de cada mutación; nil equivale a ports.AllowAll.
	Authorizer ports.Authorizer
	// BcryptCost para el admin sembrado; 0 usa el costo por defecto.
	BcryptCost int
	// SkipSweep no ejecuta el barrido de artículos inválidos al arrancar.
	SkipSweep bool
}

// Runtime dependencias listas para usar. Close libera el almacén.
type Runtime struct {
	DB      *sql.DB
	Dialect sqlstore.Dialect
	Gateway *sqlstore.Gateway
	Metrics *sqlstore.Metrics
	Audit   *sqlstore.AuditRepo

	Auth           *auth.AuthUseCase
	Items          *inventory.ItemUseCase
	Categories     *inventory.CategoryUseCase
	PurchaseOrders *inventory.PurchaseOrderUseCase
	Warehouses     *usecase.WarehouseUseCase
	Suppliers      *usecase.SupplierUseCase
	Users          *usecase.UserUseCase
	Reports        *reporting.ReportUseCase
	Exports        *reporting.ExportUseCase
	Renderer       ports.ReportRenderer
}

// Open abre el almacén, asegura el esquema, construye los casos de uso y
// ejecuta el barrido de artículos inválidos con la sesión de sistema.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger, opts Options) (*Runtime, error) {
	if log == nil {
		log = logger.Nop()
	}
	db, dialect, err := sqlstore.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	seed := sqlstore.SeedOptions{AdminPassword: cfg.Admin.DefaultPassword, BcryptCost: opts.BcryptCost}
	if err := sqlstore.EnsureSchema(ctx, db, dialect, seed); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("esquema: %w", err)
	}

	metrics := sqlstore.NewMetrics(opts.Registerer)
	gw := sqlstore.NewGateway(db, dialect, log, metrics, sqlstore.GatewayOptions{StrictAudit: cfg.DB.StrictAudit})

	itemRepo := sqlstore.NewItemRepository(gw)
	categoryRepo := sqlstore.NewCategoryRepository(gw)
	warehouseRepo := sqlstore.NewWarehouseRepository(gw)
	supplierRepo := sqlstore.NewSupplierRepository(gw)
	orderRepo := sqlstore.NewPurchaseOrderRepository(gw)
	userRepo := sqlstore.NewUserRepository(gw)
	reportRepo := sqlstore.NewReportRepository(gw)
	txRunner := sqlstore.NewTxRunner(gw)

	reportUC := reporting.NewReportUseCase(itemRepo, reportRepo)
	rt := &Runtime{
		DB:      db,
		Dialect: dialect,
		Gateway: gw,
		Metrics: metrics,
		Audit:   sqlstore.NewAuditRepository(gw),

		Auth: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}, log),
		Items:          inventory.NewItemUseCase(itemRepo, categoryRepo, warehouseRepo, opts.Authorizer),
		Categories:     inventory.NewCategoryUseCase(categoryRepo, opts.Authorizer),
		PurchaseOrders: inventory.NewPurchaseOrderUseCase(txRunner, orderRepo, itemRepo, supplierRepo, opts.Authorizer),
		Warehouses:     usecase.NewWarehouseUseCase(warehouseRepo, opts.Authorizer),
		Suppliers:      usecase.NewSupplierUseCase(supplierRepo, opts.Authorizer),
		Users:          usecase.NewUserUseCase(userRepo, opts.Authorizer),
		Reports:        reportUC,
		Exports: reporting.NewExportUseCase(reportUC, itemRepo,
			infraxlsx.NewExcelizeExporter(), infrapdf.NewMarotoPDFGenerator(cfg.App.Name)),
		Renderer: textreport.New(),
	}

	if !opts.SkipSweep {
		removed, err := rt.Items.SweepInvalid(ctx, entity.SystemSession())
		if err != nil {
			log.Warn().Err(err).Msg("barrido inicial de artículos inválidos")
		} else if removed > 0 {
			log.Info().Int64("removed", removed).Msg("artículos sin nombre eliminados")
		}
	}
	return rt, nil
}

// Close cierra el pool del almacén.
func (r *Runtime) Close() error {
	return r.DB.Close()
}
