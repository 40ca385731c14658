// Package pdf implementa el reporte PDF de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Complete Inventory Report + fecha de generación    │
//	│  RESUMEN: Total Items | Available | Out of Stock            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Available Items                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: CRITICAL ALERT: Out of Stock Items                  │
//	│     (o "Good News: All items are currently in stock!")      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
)

var _ ports.PDFExporter = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 30}
	colorOK      = &props.Color{Red: 30, Green: 130, Blue: 60}
	colorHeader  = &props.Color{Red: 225, Green: 232, Blue: 240}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.PDFExporter usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// InventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) InventoryPDF(_ context.Context, av *dto.AvailabilityDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Complete Inventory Report", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(av))
	m.AddRows(summaryRow(av))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Available Items", colorPrimary))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(av.Available)...)

	m.AddRows(line.NewRow(4))
	if len(av.Depleted) > 0 {
		m.AddRows(sectionRow("CRITICAL ALERT: Out of Stock Items", colorAlert))
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(av.Depleted)...)
	} else {
		m.AddRows(sectionRow("Good News: All items are currently in stock!", colorOK))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(av *dto.AvailabilityDTO) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Complete Inventory Report", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Align: align.Center, Top: 1,
			}),
			text.New("Generated on: "+av.GeneratedAt.Format("2006-01-02 15:04:05"), props.Text{
				Size: 8, Color: colorGray, Align: align.Center, Top: 10,
			}),
		),
	)
}

func summaryRow(av *dto.AvailabilityDTO) core.Row {
	total := len(av.Available) + len(av.Depleted)
	summary := fmt.Sprintf("Total Items: %d  |  Available: %d  |  Out of Stock: %d",
		total, len(av.Available), len(av.Depleted))
	return row.New(9).Add(col.New(12).Add(
		text.New(summary, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 2}),
	))
}

func sectionRow(title string, color *props.Color) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Top: 2}),
	))
}

// tableHeaderRow: Name | Category | Quantity | Price | Min Stock
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Name", 4, align.Left),
		h("Category", 3, align.Left),
		h("Quantity", 1, align.Right),
		h("Price", 2, align.Right),
		h("Min Stock", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableRows: una fila por artículo.
func tableRows(items []dto.ItemResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, it := range items {
		result = append(result, row.New(6).Add(
			cell(it.Name, 4, align.Left),
			cell(nonEmpty(it.CategoryName, "-"), 3, align.Left),
			cell(strconv.Itoa(it.Quantity), 1, align.Right),
			cell("$"+it.Price.StringFixed(2), 2, align.Right),
			cell(strconv.Itoa(it.MinStock), 2, align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
