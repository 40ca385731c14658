// Package textreport renderiza los reportes de inventario como texto plano de
// ancho fijo para operadores (GET /api/reports/*?format=text y inventoryctl report).
package textreport

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/application/ports"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

var _ ports.ReportRenderer = (*Renderer)(nil)

const ruleWidth = 96

// Renderer implementa ports.ReportRenderer. Los números se agrupan por miles
// según el idioma configurado.
type Renderer struct {
	p *message.Printer
}

// New construye el renderer en inglés, el idioma de los reportes.
func New() *Renderer {
	return NewWithLanguage(language.English)
}

// NewWithLanguage permite otro separador de miles/decimales.
func NewWithLanguage(tag language.Tag) *Renderer {
	return &Renderer{p: message.NewPrinter(tag)}
}

// ── Stock bajo ───────────────────────────────────────────────────────────────

// LowStock agotados con su impacto financiero y artículos en advertencia.
func (r *Renderer) LowStock(rep *dto.LowStockReportDTO) string {
	var b strings.Builder
	r.header(&b, "LOW STOCK REPORT", rep.GeneratedAt.Format(entity.TimestampLayout))

	if len(rep.Depleted) == 0 {
		b.WriteString("No items are out of stock.\n\n")
	} else {
		r.p.Fprintf(&b, "Critical Items Count: %d products require immediate procurement action\n\n", len(rep.Depleted))

		section(&b, "FINANCIAL IMPACT ASSESSMENT")
		r.p.Fprintf(&b, "Total Product Value at Risk: %s\n", r.money(rep.TotalValue))
		r.p.Fprintf(&b, "Estimated Revenue Impact: %s\n\n", r.money(rep.PotentialLoss))

		r.p.Fprintf(&b, "%-30s %-20s %-6s %-12s %-12s %-20s\n",
			"PRODUCT", "CATEGORY", "QTY", "UNIT VALUE", "REORDER LVL", "SUPPLIER")
		for _, it := range rep.Depleted {
			r.p.Fprintf(&b, "%-30s %-20s %-6d %-12s %-12d %-20s\n",
				clip(it.Name, 30), clip(orDash(it.CategoryName), 20), it.Quantity,
				r.money(it.Price), it.MinStock, clip(orDash(it.Supplier), 20))
		}
		b.WriteString("\n")
	}

	if len(rep.Warning) > 0 {
		section(&b, "LOW INVENTORY WARNING")
		r.p.Fprintf(&b, "Items Operating Below Minimum Threshold: %d products\n\n", len(rep.Warning))
		for _, it := range rep.Warning {
			r.p.Fprintf(&b, "  * %s (%s): Current Stock: %d | Minimum Required: %d | Unit Value: %s\n",
				it.Name, orDash(it.CategoryName), it.Quantity, it.MinStock, r.money(it.Price))
		}
	}
	return b.String()
}

// ── Inventario completo ──────────────────────────────────────────────────────

// Inventory métricas, riesgo, primeros agotados y la tabla completa.
func (r *Renderer) Inventory(rep *dto.InventoryReportDTO) string {
	var b strings.Builder
	r.header(&b, "COMPLETE INVENTORY REPORT", rep.GeneratedAt.Format(entity.TimestampLayout))

	m := rep.Metrics
	if m.TotalItems == 0 {
		b.WriteString("No items in inventory.\n")
		return b.String()
	}

	section(&b, "INVENTORY PERFORMANCE METRICS")
	r.p.Fprintf(&b, "Total Product Portfolio: %d SKUs\n", m.TotalItems)
	r.p.Fprintf(&b, "Available Inventory: %d products\n", m.AvailableItems)
	r.p.Fprintf(&b, "Stock Depletion: %d products (%s%%)\n", m.OutOfStockItems, m.OutOfStockPct.StringFixed(2))
	r.p.Fprintf(&b, "Below Minimum Threshold: %d products (%s%%)\n", m.LowStockItems, m.LowStockPct.StringFixed(2))
	r.p.Fprintf(&b, "Total Portfolio Valuation: %s\n", r.money(m.TotalValue))
	r.p.Fprintf(&b, "Supply Chain Risk Assessment: %s\n\n", rep.RiskLevel)

	if len(rep.TopDepleted) > 0 {
		section(&b, "CRITICAL OPERATIONAL ALERTS")
		r.p.Fprintf(&b, "IMMEDIATE ATTENTION: %d products completely depleted\n", m.OutOfStockItems)
		for _, it := range rep.TopDepleted {
			r.p.Fprintf(&b, "   * %s | %s | Unit Value: %s\n", it.Name, orDash(it.CategoryName), r.money(it.Price))
		}
		if rep.AdditionalDepleted > 0 {
			r.p.Fprintf(&b, "   ... and %d additional critical items requiring procurement\n", rep.AdditionalDepleted)
		}
		b.WriteString("\n")
	}

	section(&b, "DETAILED INVENTORY")
	r.p.Fprintf(&b, "%-8s %-30s %-20s %-6s %-6s %-12s %-12s %-20s\n",
		"STATUS", "PRODUCT", "CATEGORY", "QTY", "MIN", "UNIT VALUE", "TOTAL VALUE", "SUPPLIER")
	for _, line := range rep.Items {
		r.p.Fprintf(&b, "%-8s %-30s %-20s %-6d %-6d %-12s %-12s %-20s\n",
			line.Status, clip(line.Name, 30), clip(orDash(line.CategoryName), 20),
			line.Quantity, line.MinStock, r.money(line.Price), r.money(line.LineValue),
			clip(orDash(line.Supplier), 20))
	}
	return b.String()
}

// ── Categorías ───────────────────────────────────────────────────────────────

// Categories una fila por categoría (incluidas las vacías) y la fila TOTAL.
func (r *Renderer) Categories(rep *dto.CategoryReportDTO) string {
	var b strings.Builder
	r.header(&b, "CATEGORY ANALYSIS REPORT", rep.GeneratedAt.Format(entity.TimestampLayout))

	if len(rep.Categories) == 0 {
		b.WriteString("No categories defined.\n")
		return b.String()
	}
	r.p.Fprintf(&b, "%-20s %-10s %-15s %-15s\n", "Category", "Items", "Total Qty", "Total Value")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, c := range rep.Categories {
		r.p.Fprintf(&b, "%-20s %-10d %-15d %-15s\n",
			clip(c.CategoryName, 20), c.ItemCount, c.TotalQuantity, r.money(c.TotalValue))
	}
	b.WriteString(strings.Repeat("-", 60) + "\n")
	r.p.Fprintf(&b, "%-20s %-10d %-15d %-15s\n", "TOTAL", rep.TotalItems, rep.TotalQuantity, r.money(rep.TotalValue))
	return b.String()
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (r *Renderer) header(b *strings.Builder, title, generated string) {
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString(title + "\n")
	b.WriteString("Generated on: " + generated + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
}

// money: $1,234.50. El float sólo se usa para presentación.
func (r *Renderer) money(d decimal.Decimal) string {
	return r.p.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

func clip(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
