package network

import (
	"fmt"

	"github.com/dd0wney/cluso-watergrid/pkg/validation"
)

// Builder accumulates nodes and pipes, then validates the schema and
// produces an immutable Network. Add calls record errors rather than
// failing; Build reports everything collected at once.
type Builder struct {
	order []string
	nodes map[string]*Node
	pipes []Pipe
	cv    *validation.ConfigValidator
}

// NewBuilder creates an empty network builder.
func NewBuilder() *Builder {
	return &Builder{
		nodes: make(map[string]*Node),
		cv:    validation.NewConfigValidator("Network"),
	}
}

func (b *Builder) add(node *Node) *Builder {
	if err := validation.ValidateNodeID(node.ID); err != nil {
		b.cv.Custom("ID", func() error { return err })
		return b
	}
	if _, exists := b.nodes[node.ID]; exists {
		b.cv.Custom("ID", func() error { return nodeError("add node", node.ID, ErrDuplicateID) })
		return b
	}
	b.order = append(b.order, node.ID)
	b.nodes[node.ID] = node
	return b
}

// AddReservoir adds a reservoir with the given capacity and current level, in liters.
func (b *Builder) AddReservoir(id string, capacity, currentLevel float64, coords Coords) *Builder {
	b.cv.PositiveFloat(id+".Capacity", capacity)
	b.cv.RangeFloat(id+".CurrentLevel", currentLevel, 0, capacity)
	return b.add(&Node{ID: id, Type: TypeReservoir, Capacity: capacity, CurrentLevel: currentLevel, Coords: coords})
}

// AddPumpStation adds a pump station with the given pump rate in liters/sec.
func (b *Builder) AddPumpStation(id, status string, pumpRate float64, coords Coords) *Builder {
	b.cv.OneOf(id+".Status", status, []string{"on", "off"})
	b.cv.NonNegativeFloat(id+".PumpRate", pumpRate)
	return b.add(&Node{ID: id, Type: TypePumpStation, Status: status, PumpRate: pumpRate, Coords: coords})
}

// AddJunction adds a junction node.
func (b *Builder) AddJunction(id string, coords Coords) *Builder {
	return b.add(&Node{ID: id, Type: TypeJunction, Coords: coords})
}

// AddConsumptionZone adds a consumption zone with its demand profile and
// base demand in liters/sec.
func (b *Builder) AddConsumptionZone(id string, profile DemandProfile, baseDemand float64, coords Coords) *Builder {
	b.cv.OneOf(id+".Profile", string(profile), []string{
		string(ProfileResidential), string(ProfileCommercial), string(ProfileIndustrial),
	})
	b.cv.PositiveFloat(id+".BaseDemand", baseDemand)
	return b.add(&Node{ID: id, Type: TypeConsumptionZone, Profile: profile, BaseDemand: baseDemand, Coords: coords})
}

// AddValve adds a valve node.
func (b *Builder) AddValve(id, status string, coords Coords) *Builder {
	b.cv.OneOf(id+".Status", status, []string{"open", "closed"})
	return b.add(&Node{ID: id, Type: TypeValve, Status: status, Coords: coords})
}

// AddSensor adds a sensor attached to an existing node. The attachment is
// checked at Build time so sensors may be declared before their target.
func (b *Builder) AddSensor(id string, sensorType SensorType, attachedTo string, coords Coords) *Builder {
	return b.add(&Node{ID: id, Type: TypeSensor, SensorType: sensorType, AttachedTo: attachedTo, Coords: coords})
}

// AddPipe adds a directed pipe between two nodes. Endpoints are checked at
// Build time.
func (b *Builder) AddPipe(from, to string, length, diameter float64, material string) *Builder {
	b.cv.PositiveFloat(fmt.Sprintf("Pipe[%s->%s].Length", from, to), length)
	b.cv.PositiveFloat(fmt.Sprintf("Pipe[%s->%s].Diameter", from, to), diameter)
	b.cv.Required(fmt.Sprintf("Pipe[%s->%s].Material", from, to), material)
	b.pipes = append(b.pipes, Pipe{From: from, To: to, Length: length, Diameter: diameter, Material: material})
	return b
}

// Build validates the accumulated schema and returns the immutable network.
// Invariants enforced: every sensor's AttachedTo references an existing
// non-sensor node, and every pipe endpoint exists.
func (b *Builder) Build() (*Network, error) {
	for _, id := range b.order {
		node := b.nodes[id]
		if node.Type != TypeSensor {
			continue
		}
		target, ok := b.nodes[node.AttachedTo]
		switch {
		case !ok:
			b.cv.Custom(id+".AttachedTo", func() error {
				return nodeError("attach sensor to", node.AttachedTo, ErrNodeNotFound)
			})
		case target.Type == TypeSensor:
			b.cv.Custom(id+".AttachedTo", func() error {
				return fmt.Errorf("sensor %q cannot attach to another sensor %q", id, node.AttachedTo)
			})
		}
	}

	for _, p := range b.pipes {
		for _, end := range []string{p.From, p.To} {
			if _, ok := b.nodes[end]; !ok {
				b.cv.Custom(fmt.Sprintf("Pipe[%s->%s]", p.From, p.To), func() error {
					return nodeError("connect pipe to", end, ErrNodeNotFound)
				})
			}
		}
	}

	if err := b.cv.Validate(); err != nil {
		return nil, err
	}

	net := &Network{
		order:   append([]string(nil), b.order...),
		nodes:   make(map[string]*Node, len(b.nodes)),
		pipes:   append([]Pipe(nil), b.pipes...),
		forward: make(map[string][]string),
		reverse: make(map[string][]string),
	}
	for id, node := range b.nodes {
		clone := *node
		net.nodes[id] = &clone
	}
	for _, p := range net.pipes {
		net.forward[p.From] = append(net.forward[p.From], p.To)
		net.reverse[p.To] = append(net.reverse[p.To], p.From)
	}
	// Derive sensor attachment lists so they can never disagree with AttachedTo.
	for _, id := range net.order {
		node := net.nodes[id]
		if node.Type == TypeSensor {
			target := net.nodes[node.AttachedTo]
			target.Sensors = append(target.Sensors, id)
		}
	}
	return net, nil
}
