package reporting

import (
	"context"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	invrules "github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

// Dashboard tarjetas (total de artículos, agotados, categorías) y la serie del gráfico:
// los 10 artículos de menor cantidad con su estado.
//
// Lecturas secuenciales: StockCounts para las tarjetas y LowestQuantity(10) para el gráfico.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	counts, err := uc.reports.StockCounts(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.items.LowestQuantity(ctx, chartItems)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardDTO{
		TotalItems:      counts.TotalItems,
		OutOfStockItems: counts.OutOfStockItems,
		TotalCategories: counts.TotalCategories,
		Chart:           make([]dto.ChartPointDTO, 0, len(items)),
	}
	for _, it := range items {
		out.Chart = append(out.Chart, dto.ChartPointDTO{
			Label:    it.Name,
			Quantity: it.Quantity,
			Status:   string(invrules.Classify(it.Quantity, it.MinStock)),
		})
	}
	return out, nil
}
