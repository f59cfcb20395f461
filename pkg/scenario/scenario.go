// Package scenario defines the scripted demonstration scenario: the
// sampling range, the leak event, and what to render afterwards. The
// default scenario ships embedded in the binary so the demo runs with no
// flags, environment variables or external configuration.
package scenario

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-watergrid/pkg/synth"
	"github.com/dd0wney/cluso-watergrid/pkg/validation"
)

//go:embed scenario.yaml
var defaultScenario []byte

// Scenario is a fully scripted simulation run.
type Scenario struct {
	Name      string         `yaml:"name" validate:"required"`
	Range     SampleRange    `yaml:"range" validate:"required"`
	Leak      Leak           `yaml:"leak" validate:"required"`
	Snapshots []SnapshotSpec `yaml:"snapshots" validate:"dive"`
	Plots     []PlotSpec     `yaml:"plots" validate:"dive"`
}

// SampleRange is the sampling grid definition.
type SampleRange struct {
	Start           time.Time `yaml:"start" validate:"required"`
	End             time.Time `yaml:"end" validate:"required"`
	IntervalMinutes int       `yaml:"interval_minutes" validate:"required,gt=0"`
}

// Leak is the scripted leak event.
type Leak struct {
	Node     string    `yaml:"node" validate:"required"`
	Start    time.Time `yaml:"start" validate:"required"`
	End      time.Time `yaml:"end" validate:"required"`
	Severity float64   `yaml:"severity" validate:"required,gt=0,lte=1"`
}

// SnapshotSpec is one network-state render.
type SnapshotSpec struct {
	Label string    `yaml:"label" validate:"required"`
	At    time.Time `yaml:"at" validate:"required"`
}

// PlotSpec is one time-series plot.
type PlotSpec struct {
	Kind     string `yaml:"kind" validate:"required,oneof=sensor zone"`
	ID       string `yaml:"id" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
	MarkLeak bool   `yaml:"mark_leak"`
}

// Default returns the embedded demonstration scenario.
func Default() (*Scenario, error) {
	return Parse(defaultScenario)
}

// Parse unmarshals and validates a scenario definition.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := validation.ValidateStruct(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", s.Name, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate covers cross-field rules the struct tags can't express.
func (s *Scenario) validate() error {
	return validation.NewConfigValidator("Scenario").
		Custom("Range", func() error {
			if s.Range.End.Before(s.Range.Start) {
				return fmt.Errorf("range end %s precedes start %s", s.Range.End, s.Range.Start)
			}
			return nil
		}).
		Custom("Leak", func() error {
			if s.Leak.End.Before(s.Leak.Start) {
				return fmt.Errorf("leak end %s precedes start %s", s.Leak.End, s.Leak.Start)
			}
			return nil
		}).
		Custom("Leak.Node", func() error {
			return validation.ValidateNodeID(s.Leak.Node)
		}).
		Validate()
}

// SynthRange converts the scenario range for the generator.
func (s *Scenario) SynthRange() synth.Range {
	return synth.Range{
		Start:    s.Range.Start,
		End:      s.Range.End,
		Interval: time.Duration(s.Range.IntervalMinutes) * time.Minute,
	}
}

// LeakEvent converts the scripted leak for the injector.
func (s *Scenario) LeakEvent() synth.LeakEvent {
	return synth.LeakEvent{
		NodeID:   s.Leak.Node,
		Start:    s.Leak.Start,
		End:      s.Leak.End,
		Severity: s.Leak.Severity,
	}
}
