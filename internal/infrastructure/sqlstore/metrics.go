package sqlstore

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contadores de la pasarela de consultas.
type Metrics struct {
	statements    *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	auditFailures prometheus.Counter
}

// NewMetrics crea y registra las métricas en reg. Con reg nil no se registran.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		statements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_gateway_statements_total",
				Help: "Sentencias ejecutadas por la pasarela, por tipo y resultado",
			},
			[]string{"kind", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_gateway_statement_duration_seconds",
				Help:    "Duración de las sentencias de la pasarela",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		auditFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "inventory_audit_failures_total",
				Help: "Filas de auditoría que no se pudieron escribir",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.statements, m.latency, m.auditFailures)
	}
	return m
}

// StatementsCounter expuesto para pruebas y paneles.
func (m *Metrics) StatementsCounter() *prometheus.CounterVec { return m.statements }

// AuditFailuresCounter expuesto para pruebas y paneles.
func (m *Metrics) AuditFailuresCounter() prometheus.Counter { return m.auditFailures }

func (m *Metrics) observe(kind string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.statements.WithLabelValues(kind, status).Inc()
	m.latency.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
