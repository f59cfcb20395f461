package network

import "fmt"

// NodeType identifies the kind of asset a node represents
type NodeType uint8

const (
	TypeReservoir NodeType = iota
	TypePumpStation
	TypeJunction
	TypeConsumptionZone
	TypeValve
	TypeSensor
)

// String returns the human-readable name of a node type
func (t NodeType) String() string {
	switch t {
	case TypeReservoir:
		return "Reservoir"
	case TypePumpStation:
		return "PumpStation"
	case TypeJunction:
		return "Junction"
	case TypeConsumptionZone:
		return "ConsumptionZone"
	case TypeValve:
		return "Valve"
	case TypeSensor:
		return "Sensor"
	default:
		return fmt.Sprintf("NodeType(%d)", t)
	}
}

// SensorType identifies what physical quantity a sensor measures
type SensorType uint8

const (
	SensorFlow SensorType = iota
	SensorPressure
	SensorLevel
)

// String returns the human-readable name of a sensor type
func (s SensorType) String() string {
	switch s {
	case SensorFlow:
		return "Flow"
	case SensorPressure:
		return "Pressure"
	case SensorLevel:
		return "Level"
	default:
		return fmt.Sprintf("SensorType(%d)", s)
	}
}

// DemandProfile classifies a consumption zone's usage pattern
type DemandProfile string

const (
	ProfileResidential DemandProfile = "residential"
	ProfileCommercial  DemandProfile = "commercial"
	ProfileIndustrial  DemandProfile = "industrial"
)

// Coords is a 2D position used for layout and rendering
type Coords struct {
	X float64
	Y float64
}

// Node is a typed vertex in the water network. Exactly one of the
// per-type field groups is meaningful, selected by Type.
type Node struct {
	ID     string
	Type   NodeType
	Coords Coords

	// Reservoir
	Capacity     float64 // liters
	CurrentLevel float64 // liters

	// PumpStation
	PumpRate float64 // liters/sec
	Status   string  // PumpStation and Valve: "on"/"off", "open"/"closed"

	// ConsumptionZone
	Profile    DemandProfile
	BaseDemand float64 // liters/sec

	// Sensor
	SensorType SensorType
	AttachedTo string

	// Sensor IDs attached to this node. Only populated on non-sensor nodes.
	Sensors []string
}

// Pipe is a directed edge between two nodes, oriented with water flow
type Pipe struct {
	From     string
	To       string
	Length   float64 // meters
	Diameter float64 // meters
	Material string
}
