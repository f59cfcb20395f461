package synth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(GeneratorOptions{Rand: rand.New(rand.NewSource(seed))})
}

func demoNet(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.BuildDemoNetwork()
	if err != nil {
		t.Fatalf("BuildDemoNetwork failed: %v", err)
	}
	return net
}

func dayRange(interval time.Duration) Range {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(0, 0, 1), Interval: interval}
}

func TestSensorReadings_RowCount(t *testing.T) {
	net := demoNet(t)
	r := dayRange(15 * time.Minute)

	readings, err := testGenerator(1).SensorReadings(net, r)
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}

	wantRows := len(r.Grid()) * len(net.SensorIDs())
	if len(readings) != wantRows {
		t.Errorf("row count = %d, want %d", len(readings), wantRows)
	}
}

func TestSensorReadings_NonNegative(t *testing.T) {
	net := demoNet(t)

	readings, err := testGenerator(2).SensorReadings(net, dayRange(15*time.Minute))
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}

	for _, r := range readings {
		if r.Value < 0 {
			t.Fatalf("negative value %f for %s at %v", r.Value, r.SensorID, r.Timestamp)
		}
	}
}

func TestSensorReadings_LevelWithinReservoirBounds(t *testing.T) {
	net := demoNet(t)
	r1, _ := net.Node("R1")

	readings, err := testGenerator(3).SensorReadings(net, dayRange(15*time.Minute))
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}

	for _, r := range readings {
		if r.SensorType != network.SensorLevel {
			continue
		}
		if r.Value < 0 || r.Value > r1.Capacity {
			t.Fatalf("level %f outside [0, %f] at %v", r.Value, r1.Capacity, r.Timestamp)
		}
	}
}

func TestSensorReadings_Deterministic(t *testing.T) {
	net := demoNet(t)
	r := dayRange(time.Hour)

	first, err := testGenerator(42).SensorReadings(net, r)
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}
	second, err := testGenerator(42).SensorReadings(net, r)
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSensorReadings_EmptyRange(t *testing.T) {
	net := demoNet(t)
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	r := Range{Start: start, End: start.AddDate(0, 0, -1), Interval: time.Hour}

	readings, err := testGenerator(4).SensorReadings(net, r)
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}
	if len(readings) != 0 {
		t.Errorf("row count = %d, want 0 for inverted range", len(readings))
	}
}

func TestSensorReadings_InvalidInterval(t *testing.T) {
	net := demoNet(t)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := testGenerator(5).SensorReadings(net, Range{Start: start, End: start}); err == nil {
		t.Error("zero interval accepted, want error")
	}
}

// Single-reservoir scenario: one level sensor sampled hourly over a
// 23-hour inclusive range gives 24 level records inside physical bounds.
func TestSensorReadings_ReservoirLevelScenario(t *testing.T) {
	net, err := network.NewBuilder().
		AddReservoir("R1", 1_000_000, 900_000, network.Coords{}).
		AddSensor("S_L_R1", network.SensorLevel, "R1", network.Coords{}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	r := Range{Start: start, End: start.Add(23 * time.Hour), Interval: time.Hour}

	readings, err := testGenerator(6).SensorReadings(net, r)
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}

	if len(readings) != 24 {
		t.Fatalf("row count = %d, want 24", len(readings))
	}
	for _, rec := range readings {
		if rec.SensorType != network.SensorLevel {
			t.Errorf("unexpected sensor type %v", rec.SensorType)
		}
		if rec.Value < 0 || rec.Value > 1_000_000 {
			t.Errorf("level %f outside [0, 1000000]", rec.Value)
		}
	}
}

// Junction flow base: sum of downstream zone demand, or the fixed default
// when the junction feeds no zones directly.
func TestFlowValue_JunctionBases(t *testing.T) {
	net := demoNet(t)
	gen := testGenerator(7)

	j1, _ := net.Node("J1") // feeds Z1 directly: base 100
	j2, _ := net.Node("J2") // feeds J4 only: falls back to 150

	// With the diurnal mean at minimum 0.6 and noise stddev bounded, a
	// large sample mean should sit near base*mean for the hour bucket.
	midday := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC) // bucket mean 0.9

	sum1, sum2 := 0.0, 0.0
	const n = 2000
	for i := 0; i < n; i++ {
		sum1 += gen.flowValue(net, j1, midday)
		sum2 += gen.flowValue(net, j2, midday)
	}
	mean1, mean2 := sum1/n, sum2/n

	if mean1 < 70 || mean1 > 110 {
		t.Errorf("J1 mean flow = %f, want near 90 (base 100 x 0.9)", mean1)
	}
	if mean2 < 115 || mean2 > 155 {
		t.Errorf("J2 mean flow = %f, want near 135 (default 150 x 0.9)", mean2)
	}
}

// Pressure sensors attached to node types without a pressure model fall
// back to the documented zero default.
func TestPressureValue_UnmodeledAttachment(t *testing.T) {
	net, err := network.NewBuilder().
		AddValve("V1", "open", network.Coords{}).
		AddSensor("S_P_V1", network.SensorPressure, "V1", network.Coords{}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	readings, err := testGenerator(8).SensorReadings(net, Range{
		Start:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Interval: time.Hour,
	})
	if err != nil {
		t.Fatalf("SensorReadings failed: %v", err)
	}
	if len(readings) != 1 {
		t.Fatalf("row count = %d, want 1", len(readings))
	}
	if readings[0].Value != 0 {
		t.Errorf("valve pressure = %f, want 0.0 default", readings[0].Value)
	}
}

// Level sensors attached to anything but a reservoir also default to zero.
func TestLevelValue_NonReservoirAttachment(t *testing.T) {
	net, err := network.NewBuilder().
		AddJunction("J1", network.Coords{}).
		AddSensor("S_L_J1", network.SensorLevel, "J1", network.Coords{}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	gen := testGenerator(9)
	sensor, _ := net.Node("S_L_J1")
	junction, _ := net.Node("J1")
	if got := gen.levelValue(sensor, junction, time.Now()); got != 0 {
		t.Errorf("level on junction = %f, want 0.0 default", got)
	}
}
