package visualization

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func rampPoints(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{Timestamp: ts(0).Add(time.Duration(i) * time.Hour), Value: float64(i)}
	}
	return points
}

func TestTimeWindowContains(t *testing.T) {
	w := TimeWindow{Start: ts(10), End: ts(18)}

	tests := []struct {
		at       time.Time
		expected bool
	}{
		{ts(9), false},
		{ts(10), true}, // inclusive start
		{ts(14), true},
		{ts(18), true}, // inclusive end
		{ts(19), false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.at); got != tt.expected {
			t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.expected)
		}
	}
}

func TestPlotSeries(t *testing.T) {
	out := PlotSeries(rampPoints(48), PlotConfig{
		Title:  "flow S_F_J1",
		YLabel: "L/s",
		Width:  40,
		Height: 8,
	})

	if !strings.Contains(out, "flow S_F_J1") {
		t.Error("title missing from plot output")
	}
	if !strings.Contains(out, "y: L/s") {
		t.Error("y label missing from plot output")
	}
	// Axis labels carry the bucketed extremes: the first column averages
	// hours 0 and 1, the last holds hour 47 alone.
	if !strings.Contains(out, "47.0") || !strings.Contains(out, "0.5") {
		t.Error("min/max axis labels missing from plot output")
	}
	if !strings.Contains(out, "01-01 00:00") {
		t.Error("start timestamp missing from plot footer")
	}
}

func TestPlotSeries_BandFooter(t *testing.T) {
	band := &TimeWindow{Start: ts(10), End: ts(20)}
	out := PlotSeries(rampPoints(48), PlotConfig{Width: 40, Height: 6, Band: band})

	if !strings.Contains(out, "band: 01-01 10:00") {
		t.Error("band footer missing from plot output")
	}
}

func TestPlotSeries_Empty(t *testing.T) {
	out := PlotSeries(nil, PlotConfig{Width: 40, Height: 6})
	if !strings.Contains(out, "(no data)") {
		t.Errorf("empty series output = %q, want (no data) placeholder", out)
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline(rampPoints(60), 30)
	if utf8.RuneCountInString(out) != 30 {
		t.Errorf("sparkline width = %d runes, want 30", utf8.RuneCountInString(out))
	}
	runes := []rune(out)
	if runes[0] != '▁' {
		t.Errorf("sparkline starts with %q, want lowest block", runes[0])
	}
	if runes[len(runes)-1] != '█' {
		t.Errorf("sparkline ends with %q, want highest block", runes[len(runes)-1])
	}

	if Sparkline(nil, 30) != "" {
		t.Error("empty series sparkline not empty")
	}
}

func TestBucketize(t *testing.T) {
	points := rampPoints(10)
	cols, inBand := bucketize(points, 5, &TimeWindow{Start: ts(0), End: ts(3)})

	if len(cols) != 5 || len(inBand) != 5 {
		t.Fatalf("column counts = %d/%d, want 5/5", len(cols), len(inBand))
	}
	// Two points per column: first column averages hours 0 and 1.
	if cols[0] != 0.5 {
		t.Errorf("cols[0] = %f, want 0.5", cols[0])
	}
	if !inBand[0] || !inBand[1] {
		t.Error("band columns not flagged")
	}
	if inBand[4] {
		t.Error("column outside band flagged")
	}
}
