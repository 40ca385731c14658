package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/reporting"
)

// ExportHandler descargas XLSX/PDF (protegido).
type ExportHandler struct {
	uc *reporting.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *reporting.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Spreadsheet godoc
// @Summary      Exportar artículos a Excel
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exports/items.xlsx [get]
func (h *ExportHandler) Spreadsheet(c *fiber.Ctx) error {
	f, err := h.uc.Spreadsheet(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	return sendFile(c, f)
}

// PDF godoc
// @Summary      Exportar reporte de disponibilidad en PDF
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exports/items.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	f, err := h.uc.PDF(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	return sendFile(c, f)
}

func sendFile(c *fiber.Ctx, f *dto.ExportFile) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+f.Name+`"`)
	return c.Send(f.Data)
}
