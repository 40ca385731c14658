// Package inventory reúne las reglas puras de clasificación y valoración de stock.
// No accede al almacén: opera sobre filas ya leídas.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// StockStatus clasificación de un artículo según cantidad y mínimo.
type StockStatus string

const (
	StatusDepleted StockStatus = "DEPLETED"
	StatusLow      StockStatus = "LOW"
	StatusNormal   StockStatus = "NORMAL"
)

// RiskLevel riesgo de la cartera según la fracción de artículos agotados.
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskLow      RiskLevel = "LOW"
)

var (
	criticalThreshold = decimal.RequireFromString("0.15")
	highThreshold     = decimal.RequireFromString("0.05")
	// LossFactor fracción del valor agotado que se estima como pérdida potencial.
	LossFactor = decimal.RequireFromString("0.25")
	hundred    = decimal.NewFromInt(100)
)

// Classify DEPLETED si qty == 0, LOW si 0 < qty <= minStock, NORMAL en otro caso.
func Classify(qty, minStock int) StockStatus {
	switch {
	case qty <= 0:
		return StatusDepleted
	case qty <= minStock:
		return StatusLow
	default:
		return StatusNormal
	}
}

// EntersDepletedVisibility la capa de presentación debe pedir confirmación
// antes de guardar un artículo que quedará agotado.
func EntersDepletedVisibility(qty int) bool {
	return qty == 0
}

// RiskLevelFor CRITICAL si depleted/total > 0.15, HIGH si > 0.05, LOW en otro caso.
// Con total 0 la fracción es 0.
func RiskLevelFor(depleted, total int) RiskLevel {
	frac := Fraction(depleted, total)
	switch {
	case frac.GreaterThan(criticalThreshold):
		return RiskCritical
	case frac.GreaterThan(highThreshold):
		return RiskHigh
	default:
		return RiskLow
	}
}

// Fraction n/total; 0 si total es 0.
func Fraction(n, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).Div(decimal.NewFromInt(int64(total)))
}

// Percent n/total × 100 redondeado a 2 decimales; 0 si total es 0.
func Percent(n, total int) decimal.Decimal {
	return Fraction(n, total).Mul(hundred).Round(2)
}

// PortfolioMetrics cifras agregadas sobre los artículos válidos.
type PortfolioMetrics struct {
	TotalSKUs       int
	Available       int
	Depleted        int
	Low             int
	DepletedPercent decimal.Decimal
	LowPercent      decimal.Decimal
	TotalValuation  decimal.Decimal // Σ cantidad × precio
}

// ComputeMetrics calcula las métricas ignorando artículos sin nombre.
func ComputeMetrics(items []entity.Item) PortfolioMetrics {
	m := PortfolioMetrics{TotalValuation: decimal.Zero}
	for _, it := range items {
		if !it.Valid() {
			continue
		}
		m.TotalSKUs++
		switch Classify(it.Quantity, it.MinStock) {
		case StatusDepleted:
			m.Depleted++
		case StatusLow:
			m.Low++
		}
		m.TotalValuation = m.TotalValuation.Add(it.LineValue())
	}
	m.Available = m.TotalSKUs - m.Depleted
	m.DepletedPercent = Percent(m.Depleted, m.TotalSKUs)
	m.LowPercent = Percent(m.Low, m.TotalSKUs)
	return m
}

// Exposure valor de los artículos agotados y su pérdida potencial estimada.
type Exposure struct {
	TotalValue    decimal.Decimal // Σ precio unitario de los agotados
	PotentialLoss decimal.Decimal // TotalValue × LossFactor
}

// DepletedExposure suma el precio unitario (no cantidad × precio: la cantidad es 0)
// de los artículos agotados válidos.
func DepletedExposure(items []entity.Item) Exposure {
	total := decimal.Zero
	for _, it := range items {
		if it.Valid() && it.Quantity == 0 {
			total = total.Add(it.Price)
		}
	}
	return Exposure{TotalValue: total, PotentialLoss: total.Mul(LossFactor)}
}
