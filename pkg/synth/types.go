package synth

import (
	"math/rand"
	"time"

	"github.com/dd0wney/cluso-watergrid/pkg/logging"
	"github.com/dd0wney/cluso-watergrid/pkg/metrics"
	"github.com/dd0wney/cluso-watergrid/pkg/network"
	"github.com/dd0wney/cluso-watergrid/pkg/validation"
)

// SensorReading is one synthetic measurement from one sensor at one
// timestamp.
type SensorReading struct {
	Timestamp  time.Time
	SensorID   string
	AttachedTo string
	SensorType network.SensorType
	Value      float64
}

// ConsumptionReading is one synthetic demand sample for one consumption
// zone at one timestamp, in liters per second.
type ConsumptionReading struct {
	Timestamp    time.Time
	ZoneID       string
	LitersPerSec float64
}

// Range describes the sampling grid: timestamps from Start to End
// inclusive, spaced exactly Interval apart. Start equal to End yields a
// single timestamp; Start after End yields an empty grid.
type Range struct {
	Start    time.Time
	End      time.Time
	Interval time.Duration
}

// Validate checks the range parameters. A Start after End is legal (it
// produces an empty table), a non-positive interval is not.
func (r Range) Validate() error {
	return validation.NewConfigValidator("Range").
		RequiredTime("Start", r.Start).
		RequiredTime("End", r.End).
		PositiveDuration("Interval", r.Interval).
		Validate()
}

// Grid materializes the sampling timestamps.
func (r Range) Grid() []time.Time {
	var grid []time.Time
	for ts := r.Start; !ts.After(r.End); ts = ts.Add(r.Interval) {
		grid = append(grid, ts)
	}
	return grid
}

// GeneratorOptions configures a Generator. All fields are optional: a nil
// Rand gets a time-seeded source (non-reproducible runs, like the original
// tooling), a nil Logger discards output, a nil Metrics registry records
// nothing.
type GeneratorOptions struct {
	Rand    *rand.Rand
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Generator produces synthetic time-series tables over a water network.
// It is not safe for concurrent use: the random source is shared across
// calls.
type Generator struct {
	rng     *rand.Rand
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewGenerator creates a generator from the given options.
func NewGenerator(opts GeneratorOptions) *Generator {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Generator{
		rng:     rng,
		logger:  logger,
		metrics: opts.Metrics,
	}
}
