package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Leganyst/crm-core/internal/storeerr"
)

// Исходы операций в метке outcome, кроме видов ошибок storeerr.
const (
	OutcomeOK     = "ok"
	OutcomeNoRows = "no_rows"
)

// Metrics считает операции хранилища в Prometheus.
type Metrics struct {
	operations *prometheus.CounterVec
	rows       *prometheus.CounterVec
	registry   *prometheus.Registry
}

func NewMetrics(namespace string) (*Metrics, error) {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_operations_total",
				Help:      "Total number of store operations by outcome",
			},
			[]string{"op", "table", "outcome"},
		),
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_rows_total",
				Help:      "Rows returned or affected by store operations",
			},
			[]string{"op", "table"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.rows} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Report(ev Event) {
	outcome := OutcomeOK
	switch ev.Kind {
	case KindFailed:
		outcome = storeerr.KindOf(ev.Err).String()
	case KindAffected:
		if ev.Affected == 0 {
			outcome = OutcomeNoRows
		}
		m.rows.WithLabelValues(ev.Op, ev.Table).Add(float64(ev.Affected))
	case KindRows:
		m.rows.WithLabelValues(ev.Op, ev.Table).Add(float64(ev.Count))
	case KindCreated:
		m.rows.WithLabelValues(ev.Op, ev.Table).Inc()
	}
	m.operations.WithLabelValues(ev.Op, ev.Table, outcome).Inc()
}
