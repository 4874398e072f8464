// Package metrics exports evolver activity as Prometheus counters.
package metrics

import (
	"openlife/internal/core"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "openlife"

// Collector counts evolution steps by verdict. It implements
// evolver.Observer.
type Collector struct {
	steps    prometheus.Counter
	verdicts *prometheus.CounterVec
}

// NewCollector creates the counters and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "evolver",
			Name:      "steps_total",
			Help:      "Positions driven through a rule strategy.",
		}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "evolver",
			Name:      "verdicts_total",
			Help:      "Stored verdicts by resulting cell state.",
		}, []string{"state"}),
	}
	for _, col := range []prometheus.Collector{c.steps, c.verdicts} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Evolved records one step.
func (c *Collector) Evolved(_ core.Position, s core.CellState) {
	c.steps.Inc()
	c.verdicts.WithLabelValues(s.String()).Inc()
}

// Steps returns the step counter.
func (c *Collector) Steps() prometheus.Counter { return c.steps }

// Verdicts returns the counter for state s.
func (c *Collector) Verdicts(s core.CellState) prometheus.Counter {
	return c.verdicts.WithLabelValues(s.String())
}
