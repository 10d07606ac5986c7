package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments exported by the benchmark
// endpoint together with the handler that renders them.
type Metrics struct {
	registry   *prometheus.Registry
	handler    http.Handler
	activeRuns prometheus.Gauge
	operations *prometheus.CounterVec
	opDuration *prometheus.HistogramVec
}

// NewMetrics creates the metric instruments on a private registry, together
// with the Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "numsys_active_runs",
			Help: "Number of benchmark runs currently in progress.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numsys_operations_total",
			Help: "Arithmetic operations executed, by number system and operation.",
		}, []string{"system", "op"}),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "numsys_operation_duration_seconds",
			Help:    "Duration of individual arithmetic operations.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"system", "op"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.activeRuns,
		m.operations,
		m.opDuration,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRuns marks a benchmark run as started.
func (m *Metrics) IncrementActiveRuns() { m.activeRuns.Inc() }

// DecrementActiveRuns marks a benchmark run as finished.
func (m *Metrics) DecrementActiveRuns() { m.activeRuns.Dec() }

// ObserveOperation records one executed operation with its duration.
func (m *Metrics) ObserveOperation(system, op string, seconds float64) {
	m.operations.WithLabelValues(system, op).Inc()
	m.opDuration.WithLabelValues(system, op).Observe(seconds)
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
