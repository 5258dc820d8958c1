// Package metrics exports the business counters of the core as Prometheus
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cashrun"

// Prometheus implements ports.Metrics.
type Prometheus struct {
	atmAssignments         *prometheus.CounterVec
	preferenceWriteFailure prometheus.Counter
	transitions            *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them on reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	m := &Prometheus{
		atmAssignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "atm_assignments_total",
			Help:      "ATM assignments by source (preference or nearest).",
		}, []string{"source"}),
		preferenceWriteFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "atm_preference_write_failures_total",
			Help:      "Address preference writes that failed and were skipped.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order status transition requests by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.atmAssignments, m.preferenceWriteFailure, m.transitions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Prometheus) AtmAssigned(source string) {
	m.atmAssignments.WithLabelValues(source).Inc()
}

func (m *Prometheus) PreferenceWriteFailed() {
	m.preferenceWriteFailure.Inc()
}

func (m *Prometheus) TransitionRequested(outcome string) {
	m.transitions.WithLabelValues(outcome).Inc()
}
