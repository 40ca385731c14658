// Package reporting contiene los casos de uso de agregación: reporte de stock bajo,
// reporte completo de inventario, desglose por categoría y datos del dashboard.
// Sólo lee del almacén.
package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	invrules "github.com/jhoicas/inventory-pro/internal/domain/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

const (
	topDepletedShown = 5  // agotados listados en el resumen del reporte completo
	chartItems       = 10 // barras del gráfico del dashboard
)

// ReportUseCase genera los resúmenes derivados de las filas almacenadas.
// Cada resumen es una proyección desechable: no se cachea.
type ReportUseCase struct {
	items   repository.ItemRepository
	reports repository.ReportRepository
	now     func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(items repository.ItemRepository, reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{items: items, reports: reports, now: time.Now}
}

// LowStockReport agotados (por nombre) con valor total y pérdida potencial (25%),
// más los artículos en advertencia (0 < cantidad <= mínimo, por cantidad ascendente).
func (uc *ReportUseCase) LowStockReport(ctx context.Context) (*dto.LowStockReportDTO, error) {
	depleted, err := uc.items.List(ctx, repository.StockOutOfStock)
	if err != nil {
		return nil, err
	}
	warning, err := uc.items.List(ctx, repository.StockLow)
	if err != nil {
		return nil, err
	}
	exposure := invrules.DepletedExposure(deref(depleted))
	return &dto.LowStockReportDTO{
		GeneratedAt:   uc.now(),
		Depleted:      inventory.ToItemResponses(depleted),
		TotalValue:    exposure.TotalValue,
		PotentialLoss: exposure.PotentialLoss,
		Warning:       inventory.ToItemResponses(warning),
	}, nil
}

// InventoryReport métricas de cartera, nivel de riesgo, primeros agotados y
// cada artículo válido clasificado con su valor de línea.
func (uc *ReportUseCase) InventoryReport(ctx context.Context) (*dto.InventoryReportDTO, error) {
	all, err := uc.items.List(ctx, repository.StockAll)
	if err != nil {
		return nil, err
	}
	m := invrules.ComputeMetrics(deref(all))

	report := &dto.InventoryReportDTO{
		GeneratedAt: uc.now(),
		Metrics: dto.InventoryMetricsDTO{
			TotalItems:      m.TotalSKUs,
			AvailableItems:  m.Available,
			OutOfStockItems: m.Depleted,
			LowStockItems:   m.Low,
			OutOfStockPct:   m.DepletedPercent,
			LowStockPct:     m.LowPercent,
			TotalValue:      m.TotalValuation,
		},
		RiskLevel:   string(invrules.RiskLevelFor(m.Depleted, m.TotalSKUs)),
		TopDepleted: []dto.ItemResponse{},
		Items:       make([]dto.ReportLineDTO, 0, len(all)),
	}

	for _, it := range all {
		resp := inventory.ToItemResponse(it)
		if it.Quantity == 0 {
			if len(report.TopDepleted) < topDepletedShown {
				report.TopDepleted = append(report.TopDepleted, resp)
			} else {
				report.AdditionalDepleted++
			}
		}
		report.Items = append(report.Items, dto.ReportLineDTO{ItemResponse: resp, LineValue: it.LineValue()})
	}
	return report, nil
}

// CategoryReport conteo, unidades y valor por categoría (las vacías reportan ceros) y totales.
func (uc *ReportUseCase) CategoryReport(ctx context.Context) (*dto.CategoryReportDTO, error) {
	rows, err := uc.reports.CategoryRollup(ctx)
	if err != nil {
		return nil, err
	}
	report := &dto.CategoryReportDTO{
		GeneratedAt: uc.now(),
		Categories:  make([]dto.CategoryRollupDTO, 0, len(rows)),
		TotalValue:  decimal.Zero,
	}
	for _, r := range rows {
		report.Categories = append(report.Categories, dto.CategoryRollupDTO{
			CategoryID:    r.CategoryID,
			CategoryName:  r.CategoryName,
			ItemCount:     r.ItemCount,
			TotalQuantity: r.TotalQuantity,
			TotalValue:    r.TotalValue,
		})
		report.TotalItems += r.ItemCount
		report.TotalQuantity += r.TotalQuantity
		report.TotalValue = report.TotalValue.Add(r.TotalValue)
	}
	return report, nil
}

// Availability partición disponible / agotado usada por la exportación PDF.
func (uc *ReportUseCase) Availability(ctx context.Context) (*dto.AvailabilityDTO, error) {
	available, err := uc.items.List(ctx, repository.StockAvailable)
	if err != nil {
		return nil, err
	}
	depleted, err := uc.items.List(ctx, repository.StockOutOfStock)
	if err != nil {
		return nil, err
	}
	return &dto.AvailabilityDTO{
		GeneratedAt: uc.now(),
		Available:   inventory.ToItemResponses(available),
		Depleted:    inventory.ToItemResponses(depleted),
	}, nil
}

func deref(items []*entity.Item) []entity.Item {
	out := make([]entity.Item, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}
