package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all watergrid metrics backed by a dedicated prometheus
// registry, so tests and embedding programs don't fight over the global one.
type Registry struct {
	registry *prometheus.Registry

	SensorReadingsTotal      *prometheus.CounterVec // by sensor_type
	ConsumptionReadingsTotal prometheus.Counter
	LeakRowsMutatedTotal     *prometheus.CounterVec // by sensor_type
	LeakInjectionsTotal      prometheus.Counter
	GenerationDuration       *prometheus.HistogramVec // by table
	NetworkNodesTotal        prometheus.Gauge
	NetworkPipesTotal        prometheus.Gauge
}

// NewRegistry creates a registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initGenerationMetrics()
	r.initNetworkMetrics()
	return r
}

// PrometheusRegistry exposes the underlying registry for gathering.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
