package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/application/reporting"
)

// ReportHandler reportes derivados (sólo lectura). ?format=text devuelve texto plano.
type ReportHandler struct {
	uc       *reporting.ReportUseCase
	renderer ports.ReportRenderer
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase, renderer ports.ReportRenderer) *ReportHandler {
	return &ReportHandler{uc: uc, renderer: renderer}
}

// LowStock godoc
// @Summary      Reporte de stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json,plain
// @Param        format  query  string  false  "json (defecto) o text"
// @Success      200  {object}  dto.LowStockReportDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	rep, err := h.uc.LowStockReport(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	if wantsText(c) {
		return c.SendString(h.renderer.LowStock(rep))
	}
	return c.JSON(rep)
}

// Inventory godoc
// @Summary      Reporte completo de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json,plain
// @Param        format  query  string  false  "json (defecto) o text"
// @Success      200  {object}  dto.InventoryReportDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	rep, err := h.uc.InventoryReport(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	if wantsText(c) {
		return c.SendString(h.renderer.Inventory(rep))
	}
	return c.JSON(rep)
}

// Categories godoc
// @Summary      Análisis por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json,plain
// @Param        format  query  string  false  "json (defecto) o text"
// @Success      200  {object}  dto.CategoryReportDTO
// @Router       /api/reports/categories [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	rep, err := h.uc.CategoryReport(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	if wantsText(c) {
		return c.SendString(h.renderer.Categories(rep))
	}
	return c.JSON(rep)
}

func wantsText(c *fiber.Ctx) bool {
	if c.Query("format") != "text" {
		return false
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return true
}
