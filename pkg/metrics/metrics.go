package metrics

import (
	"time"
)

// RecordSensorGeneration records a completed sensor-table generation pass.
func (r *Registry) RecordSensorGeneration(countByType map[string]int, duration time.Duration) {
	if r == nil {
		return
	}
	for sensorType, n := range countByType {
		r.SensorReadingsTotal.WithLabelValues(sensorType).Add(float64(n))
	}
	r.GenerationDuration.WithLabelValues("sensor").Observe(duration.Seconds())
}

// RecordConsumptionGeneration records a completed consumption-table generation pass.
func (r *Registry) RecordConsumptionGeneration(rows int, duration time.Duration) {
	if r == nil {
		return
	}
	r.ConsumptionReadingsTotal.Add(float64(rows))
	r.GenerationDuration.WithLabelValues("consumption").Observe(duration.Seconds())
}

// RecordLeakInjection records one leak event and the rows it perturbed.
func (r *Registry) RecordLeakInjection(mutatedByType map[string]int) {
	if r == nil {
		return
	}
	r.LeakInjectionsTotal.Inc()
	for sensorType, n := range mutatedByType {
		r.LeakRowsMutatedTotal.WithLabelValues(sensorType).Add(float64(n))
	}
}

// SetNetworkSize records the dimensions of the active network.
func (r *Registry) SetNetworkSize(nodes, pipes int) {
	if r == nil {
		return
	}
	r.NetworkNodesTotal.Set(float64(nodes))
	r.NetworkPipesTotal.Set(float64(pipes))
}
