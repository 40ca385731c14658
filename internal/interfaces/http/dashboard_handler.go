package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/reporting"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc *reporting.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reporting.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las tarjetas y la serie del gráfico.
// GET /api/dashboard
//
// Respuesta: DashboardDTO (total_items, out_of_stock_items, total_categories,
// chart[10] con los artículos de menor cantidad).
//
// @Summary      Dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(summary)
}
