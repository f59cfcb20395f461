package synth

import (
	"time"

	"github.com/dd0wney/cluso-watergrid/pkg/algorithms"
	"github.com/dd0wney/cluso-watergrid/pkg/logging"
	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

// LeakEvent describes a scripted leak: where it occurs, when, and how hard
// it distorts the affected readings. Severity is the relative deviation
// (0.3 means roughly ±30% swings).
type LeakEvent struct {
	NodeID   string
	Start    time.Time
	End      time.Time
	Severity float64
}

// InjectLeak perturbs an already-generated sensor table in place and
// returns it. Affected rows are those whose timestamp falls inside the
// event window (inclusive on both ends) and whose sensor is attached to
// the leak node or one of its upstream ancestors. Flow readings scale up,
// pressure readings scale down, each by a fresh uniform draw; level
// readings are untouched.
//
// The leak node is not validated: an unknown node has an empty ancestor
// set and no attached sensors, so the table comes back unchanged.
func (g *Generator) InjectLeak(readings []SensorReading, net *network.Network, event LeakEvent) []SensorReading {
	affected := algorithms.Ancestors(net, event.NodeID)
	affected[event.NodeID] = struct{}{}

	if !net.Has(event.NodeID) {
		g.logger.Warn("leak node not in network, injection is a no-op",
			logging.NodeID(event.NodeID),
		)
	}

	g.logger.Info("injecting leak",
		logging.NodeID(event.NodeID),
		logging.Time("window_start", event.Start),
		logging.Time("window_end", event.End),
		logging.Float64("severity", event.Severity),
		logging.Int("affected_nodes", len(affected)),
	)

	mutatedByType := make(map[string]int)
	for i := range readings {
		row := &readings[i]
		if row.Timestamp.Before(event.Start) || row.Timestamp.After(event.End) {
			continue
		}
		if _, ok := affected[row.AttachedTo]; !ok {
			continue
		}

		switch row.SensorType {
		case network.SensorFlow:
			row.Value *= 1 + event.Severity*g.uniform(0.8, 1.2)
		case network.SensorPressure:
			row.Value *= 1 - event.Severity*g.uniform(0.8, 1.2)
		default:
			continue
		}
		mutatedByType[row.SensorType.String()]++
	}

	g.metrics.RecordLeakInjection(mutatedByType)
	g.logger.Info("leak injected",
		logging.NodeID(event.NodeID),
		logging.Rows(mutatedByType["Flow"]+mutatedByType["Pressure"]),
	)
	return readings
}

// uniform draws from U(min, max).
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
