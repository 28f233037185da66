package lift

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts lifted values and lift failures per WIT type.
type Metrics struct {
	lifted *prometheus.CounterVec
	failed *prometheus.CounterVec
}

// NewMetrics creates the lift counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lifted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wire",
				Name:      "values_lifted_total",
				Help:      "Wire values lifted from guest memory.",
			},
			[]string{"type"},
		),
		failed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wire",
				Name:      "lift_errors_total",
				Help:      "Wire values rejected while lifting from guest memory.",
			},
			[]string{"type"},
		),
	}
	reg.MustRegister(m.lifted, m.failed)
	return m
}

func (m *Metrics) observe(witType string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.failed.WithLabelValues(witType).Inc()
		return
	}
	m.lifted.WithLabelValues(witType).Inc()
}
