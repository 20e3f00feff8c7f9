// ABOUTME: Prometheus implementation of the load metrics sink
// ABOUTME: Counts load outcomes and records load durations

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements the Metrics interface
type PrometheusMetrics struct {
	loads    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feedloader_loads_total",
			Help: "The total number of completed feed loads by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feedloader_load_duration_seconds",
			Help:    "Time from issuing a feed request to delivering its result",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	if err := reg.Register(m.loads); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveLoad records one delivered load
func (m *PrometheusMetrics) ObserveLoad(outcome string, elapsed time.Duration) {
	m.loads.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
