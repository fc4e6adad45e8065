// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine label values.
const (
	EngineGonum    = "gonum"
	EngineSerial   = "mmatrix"
	EngineParallel = "parallel"
)

// Metrics holds the collectors a Runner records into. Each Runner owns a
// private registry so runs (and tests) never share state.
type Metrics struct {
	Registry *prometheus.Registry

	multiply   *prometheus.HistogramVec
	crossCheck prometheus.Gauge
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		multiply: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mmult",
			Name:      "multiply_seconds",
			Help:      "Wall time of one matrix product, by engine.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"engine", "size"}),
		crossCheck: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mmult",
			Name:      "crosscheck_equal",
			Help:      "1 when the last gonum cross-check matched within epsilon, else 0.",
		}),
	}
	m.Registry.MustRegister(m.multiply, m.crossCheck)

	return m
}

func (m *Metrics) observe(engine string, size int, seconds float64) {
	m.multiply.WithLabelValues(engine, fmt.Sprint(size)).Observe(seconds)
}

func (m *Metrics) setCrossCheck(equal bool) {
	if equal {
		m.crossCheck.Set(1)
		return
	}
	m.crossCheck.Set(0)
}

// WriteTextfile writes the registry in Prometheus text format to path,
// suitable for node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("bench: write metrics: %w", err)
	}

	return nil
}
