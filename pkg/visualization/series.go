package visualization

import (
	"time"

	"github.com/dd0wney/cluso-watergrid/pkg/synth"
)

// Point is one sample of a plotted series.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// SensorSeries extracts the time-ordered series for one sensor.
func SensorSeries(readings []synth.SensorReading, sensorID string) []Point {
	var points []Point
	for _, r := range readings {
		if r.SensorID == sensorID {
			points = append(points, Point{Timestamp: r.Timestamp, Value: r.Value})
		}
	}
	return points
}

// ZoneSeries extracts the time-ordered consumption series for one zone.
func ZoneSeries(readings []synth.ConsumptionReading, zoneID string) []Point {
	var points []Point
	for _, r := range readings {
		if r.ZoneID == zoneID {
			points = append(points, Point{Timestamp: r.Timestamp, Value: r.LitersPerSec})
		}
	}
	return points
}

// NearestTimestamp returns the grid timestamp closest to ts. The second
// return is false when the table is empty.
func NearestTimestamp(readings []synth.SensorReading, ts time.Time) (time.Time, bool) {
	if len(readings) == 0 {
		return time.Time{}, false
	}
	best := readings[0].Timestamp
	bestDiff := absDuration(ts.Sub(best))
	for _, r := range readings[1:] {
		if d := absDuration(ts.Sub(r.Timestamp)); d < bestDiff {
			best = r.Timestamp
			bestDiff = d
		}
	}
	return best, true
}

// ReadingsAt returns the sensor readings recorded exactly at ts, keyed by
// sensor ID.
func ReadingsAt(readings []synth.SensorReading, ts time.Time) map[string]synth.SensorReading {
	out := make(map[string]synth.SensorReading)
	for _, r := range readings {
		if r.Timestamp.Equal(ts) {
			out[r.SensorID] = r
		}
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
