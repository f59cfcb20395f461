package synth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

// TestGenerationInvariants uses property-based testing to verify the
// invariants that must hold for any generated table, regardless of seed,
// range or sampling interval.
func TestGenerationInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	net, err := network.BuildDemoNetwork()
	if err != nil {
		t.Fatalf("BuildDemoNetwork failed: %v", err)
	}
	r1, _ := net.Node("R1")

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeFor := func(hours, intervalMinutes int) Range {
		return Range{
			Start:    base,
			End:      base.Add(time.Duration(hours) * time.Hour),
			Interval: time.Duration(intervalMinutes) * time.Minute,
		}
	}

	properties.Property("sensor rows = grid x sensors, all non-negative", prop.ForAll(
		func(seed int64, hours, intervalMinutes int) bool {
			r := rangeFor(hours, intervalMinutes)
			readings, err := testGenerator(seed).SensorReadings(net, r)
			if err != nil {
				return false
			}
			if len(readings) != len(r.Grid())*len(net.SensorIDs()) {
				return false
			}
			for _, rec := range readings {
				if rec.Value < 0 {
					return false
				}
				if rec.SensorType == network.SensorLevel && rec.Value > r1.Capacity {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, 48),
		gen.IntRange(5, 120),
	))

	properties.Property("consumption rows = grid x zones, all non-negative", prop.ForAll(
		func(seed int64, hours, intervalMinutes int) bool {
			r := rangeFor(hours, intervalMinutes)
			readings, err := testGenerator(seed).ConsumptionReadings(net, r)
			if err != nil {
				return false
			}
			if len(readings) != len(r.Grid())*len(net.NodesByType(network.TypeConsumptionZone)) {
				return false
			}
			for _, rec := range readings {
				if rec.LitersPerSec < 0 {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, 48),
		gen.IntRange(5, 120),
	))

	properties.Property("identical seeds produce identical tables", prop.ForAll(
		func(seed int64) bool {
			r := rangeFor(24, 60)
			first, err1 := testGenerator(seed).SensorReadings(net, r)
			second, err2 := testGenerator(seed).SensorReadings(net, r)
			if err1 != nil || err2 != nil || len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("leak injection preserves rows outside its scope", prop.ForAll(
		func(seed int64, severity float64) bool {
			r := rangeFor(48, 60)
			readings, err := testGenerator(seed).SensorReadings(net, r)
			if err != nil {
				return false
			}
			before := append([]SensorReading(nil), readings...)

			event := LeakEvent{
				NodeID:   "J1",
				Start:    base.Add(10 * time.Hour),
				End:      base.Add(20 * time.Hour),
				Severity: severity,
			}
			injector := NewGenerator(GeneratorOptions{Rand: rand.New(rand.NewSource(seed + 1))})
			after := injector.InjectLeak(readings, net, event)

			affected := map[string]bool{"J1": true, "P1": true, "R1": true}
			for i := range after {
				pre := before[i]
				inScope := !pre.Timestamp.Before(event.Start) && !pre.Timestamp.After(event.End) &&
					affected[pre.AttachedTo] &&
					(pre.SensorType == network.SensorFlow || pre.SensorType == network.SensorPressure)
				if !inScope && after[i] != pre {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.Float64Range(0.05, 0.9),
	))

	properties.TestingRun(t)
}
