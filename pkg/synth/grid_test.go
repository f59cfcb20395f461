package synth

import (
	"testing"
	"time"
)

func TestRangeGrid(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		r        Range
		expected int
	}{
		{
			name:     "one day at 15 minutes, inclusive ends",
			r:        Range{Start: base, End: base.AddDate(0, 0, 1), Interval: 15 * time.Minute},
			expected: 97,
		},
		{
			name:     "start equals end yields the start",
			r:        Range{Start: base, End: base, Interval: 15 * time.Minute},
			expected: 1,
		},
		{
			name:     "start after end yields nothing",
			r:        Range{Start: base.AddDate(0, 0, 1), End: base, Interval: 15 * time.Minute},
			expected: 0,
		},
		{
			name:     "interval longer than range yields the start",
			r:        Range{Start: base, End: base.Add(time.Minute), Interval: time.Hour},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := tt.r.Grid()
			if len(grid) != tt.expected {
				t.Errorf("grid length = %d, want %d", len(grid), tt.expected)
			}
			if tt.expected > 0 && !grid[0].Equal(tt.r.Start) {
				t.Errorf("grid[0] = %v, want %v", grid[0], tt.r.Start)
			}
			for i := 1; i < len(grid); i++ {
				if got := grid[i].Sub(grid[i-1]); got != tt.r.Interval {
					t.Errorf("grid spacing at %d = %v, want %v", i, got, tt.r.Interval)
				}
			}
		})
	}
}

func TestRangeValidate(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := (Range{Start: base, End: base, Interval: time.Minute}).Validate(); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	if err := (Range{Start: base, End: base}).Validate(); err == nil {
		t.Error("zero interval accepted, want error")
	}
	if err := (Range{Start: base, End: base, Interval: -time.Minute}).Validate(); err == nil {
		t.Error("negative interval accepted, want error")
	}
	if err := (Range{Interval: time.Minute}).Validate(); err == nil {
		t.Error("zero timestamps accepted, want error")
	}
}
