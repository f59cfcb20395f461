// Package synth generates synthetic time-series tables over a water
// network: sensor readings (flow, pressure, reservoir level), zone
// consumption, and a scripted leak perturbation applied on top of an
// already-generated sensor table.
//
// Generation is pure iteration over a sampling grid; the only source of
// variation is the generator's random source, so a fixed seed reproduces a
// table exactly.
package synth

import (
	"math"
	"time"

	"github.com/dd0wney/cluso-watergrid/pkg/logging"
	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

const (
	// Base flow assumed for a junction with no consumption-zone successors.
	defaultJunctionFlow = 150.0

	flowNoiseStddev     = 5.0
	pressureNoiseStddev = 10_000.0
	levelNoiseStddev    = 10_000.0
	levelSwingAmplitude = 50_000.0
)

// SensorReadings produces one reading per sensor node per grid timestamp,
// timestamp-major, sensors in network insertion order. An empty grid
// (Start after End) yields an empty table.
func (g *Generator) SensorReadings(net *network.Network, r Range) ([]SensorReading, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	grid := r.Grid()
	sensors := net.NodesByType(network.TypeSensor)

	readings := make([]SensorReading, 0, len(grid)*len(sensors))
	countByType := make(map[string]int)

	for _, ts := range grid {
		for _, sensor := range sensors {
			attached, err := net.Node(sensor.AttachedTo)
			if err != nil {
				return nil, err
			}

			var value float64
			switch sensor.SensorType {
			case network.SensorFlow:
				value = g.flowValue(net, attached, ts)
			case network.SensorPressure:
				value = g.pressureValue(sensor, attached)
			case network.SensorLevel:
				value = g.levelValue(sensor, attached, ts)
			}

			readings = append(readings, SensorReading{
				Timestamp:  ts,
				SensorID:   sensor.ID,
				AttachedTo: sensor.AttachedTo,
				SensorType: sensor.SensorType,
				Value:      value,
			})
			countByType[sensor.SensorType.String()]++
		}
	}

	g.metrics.RecordSensorGeneration(countByType, time.Since(started))
	g.logger.Info("sensor table generated",
		logging.Rows(len(readings)),
		logging.Int("sensors", len(sensors)),
		logging.Int("timestamps", len(grid)),
		logging.Latency(time.Since(started)),
	)
	return readings, nil
}

// flowValue synthesizes a flow reading for a sensor attached to the given
// node: base flow from the attachment, a jittered diurnal multiplier, and
// additive noise, floored at zero.
func (g *Generator) flowValue(net *network.Network, attached *network.Node, ts time.Time) float64 {
	var base float64
	switch attached.Type {
	case network.TypeConsumptionZone:
		base = attached.BaseDemand
	case network.TypeJunction:
		// Estimate junction throughput from immediate downstream demand.
		downstream := 0.0
		successors, _ := net.Successors(attached.ID)
		for _, succID := range successors {
			if succ, err := net.Node(succID); err == nil && succ.Type == network.TypeConsumptionZone {
				downstream += succ.BaseDemand
			}
		}
		base = downstream
		if downstream <= 0 {
			base = defaultJunctionFlow
		}
	default:
		base = attached.PumpRate
	}

	bucket := flowDiurnal(ts.Hour())
	factor := bucket.mean + g.rng.NormFloat64()*bucket.stddev
	return math.Max(0, base*factor+g.rng.NormFloat64()*flowNoiseStddev)
}

// pressureValue synthesizes a pressure reading from the attached node's
// fixed base plus noise. Attachments with no pressure model yield 0.0,
// the documented silent default.
func (g *Generator) pressureValue(sensor, attached *network.Node) float64 {
	base, ok := pressureBase(attached.Type)
	if !ok {
		g.logger.Debug("no pressure model for attachment, defaulting to zero",
			logging.SensorID(sensor.ID),
			logging.String("attached_type", attached.Type.String()),
		)
		return 0.0
	}
	return math.Max(0, base+g.rng.NormFloat64()*pressureNoiseStddev)
}

// levelValue synthesizes a reservoir level: the current level plus a slow
// day-of-year sinusoid and noise, clipped to the reservoir's physical
// bounds. Level sensors attached to anything but a reservoir yield 0.0.
func (g *Generator) levelValue(sensor, attached *network.Node, ts time.Time) float64 {
	if attached.Type != network.TypeReservoir {
		g.logger.Debug("level sensor not attached to a reservoir, defaulting to zero",
			logging.SensorID(sensor.ID),
			logging.String("attached_type", attached.Type.String()),
		)
		return 0.0
	}
	swing := math.Sin(float64(ts.YearDay())/365*2*math.Pi) * levelSwingAmplitude
	value := attached.CurrentLevel + swing + g.rng.NormFloat64()*levelNoiseStddev
	return math.Max(0, math.Min(attached.Capacity, value))
}
