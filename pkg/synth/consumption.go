package synth

import (
	"math"
	"time"

	"github.com/dd0wney/cluso-watergrid/pkg/logging"
	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

const consumptionNoiseStddev = 2.0

// ConsumptionReadings produces one demand sample per consumption zone per
// grid timestamp: base demand shaped by the zone's diurnal profile, a
// weekend multiplier and the seasonal curve, plus additive noise, floored
// at zero.
func (g *Generator) ConsumptionReadings(net *network.Network, r Range) ([]ConsumptionReading, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	grid := r.Grid()
	zones := net.NodesByType(network.TypeConsumptionZone)

	readings := make([]ConsumptionReading, 0, len(grid)*len(zones))
	for _, ts := range grid {
		for _, zone := range zones {
			daily := demandDiurnal(zone.Profile, ts.Hour())
			daily *= weekendFactor(zone.Profile, ts.Weekday())

			value := zone.BaseDemand * daily * seasonalFactor(ts)
			value += g.rng.NormFloat64() * consumptionNoiseStddev

			readings = append(readings, ConsumptionReading{
				Timestamp:    ts,
				ZoneID:       zone.ID,
				LitersPerSec: math.Max(0, value),
			})
		}
	}

	g.metrics.RecordConsumptionGeneration(len(readings), time.Since(started))
	g.logger.Info("consumption table generated",
		logging.Rows(len(readings)),
		logging.Int("zones", len(zones)),
		logging.Int("timestamps", len(grid)),
		logging.Latency(time.Since(started)),
	)
	return readings, nil
}
