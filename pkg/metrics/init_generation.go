package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.SensorReadingsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "watergrid_sensor_readings_total",
			Help: "Total number of synthetic sensor readings generated",
		},
		[]string{"sensor_type"},
	)

	r.ConsumptionReadingsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "watergrid_consumption_readings_total",
			Help: "Total number of synthetic consumption readings generated",
		},
	)

	r.LeakRowsMutatedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "watergrid_leak_rows_mutated_total",
			Help: "Total number of sensor readings perturbed by leak injection",
		},
		[]string{"sensor_type"},
	)

	r.LeakInjectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "watergrid_leak_injections_total",
			Help: "Total number of leak events injected",
		},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watergrid_generation_duration_seconds",
			Help:    "Synthetic table generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"table"},
	)
}

func (r *Registry) initNetworkMetrics() {
	r.NetworkNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "watergrid_network_nodes_total",
			Help: "Number of nodes in the water network",
		},
	)

	r.NetworkPipesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "watergrid_network_pipes_total",
			Help: "Number of pipes in the water network",
		},
	)
}
