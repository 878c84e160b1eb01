package throttle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultAdmitted  = "admitted"
	resultRejected  = "rejected"
	resultClockSkew = "clock_skew"
)

// Metrics records throttle outcomes as Prometheus counters. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	decisions *prometheus.CounterVec
	resets    *prometheus.CounterVec
}

// NewMetrics registers the throttle collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "throttle_decisions_total",
				Help: "Total number of throttle admission checks by result",
			},
			[]string{"name", "result"},
		),
		resets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "throttle_window_resets_total",
				Help: "Total number of throttle windows started",
			},
			[]string{"name"},
		),
	}
}

func (m *Metrics) observe(name, result string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(name, result).Inc()
}

func (m *Metrics) reset(name string) {
	if m == nil {
		return
	}
	m.resets.WithLabelValues(name).Inc()
}
