// Package visualization renders water-network state and generated
// time-series in the terminal: a styled snapshot of the network at one
// timestamp, and unicode line plots of individual sensor or zone series.
package visualization

import (
	"math"

	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

// Position is a 2D canvas coordinate.
type Position struct {
	X float64
	Y float64
}

// LayoutConfig configures layout parameters.
type LayoutConfig struct {
	Width   float64 // canvas width in cells
	Height  float64 // canvas height in rows
	Padding float64 // padding from edges
}

// CoordinateLayout places nodes from their builder coordinates, scaled to
// fit the canvas. Nodes in the demo topology all carry coordinates; a
// network without them falls back to HierarchicalLayout.
type CoordinateLayout struct {
	config LayoutConfig
}

// NewCoordinateLayout creates a coordinate-based layout.
func NewCoordinateLayout(config LayoutConfig) *CoordinateLayout {
	if config.Padding == 0 {
		config.Padding = 2
	}
	return &CoordinateLayout{config: config}
}

// ComputeLayout scales node coordinates to the canvas.
func (cl *CoordinateLayout) ComputeLayout(net *network.Network) map[string]Position {
	positions := make(map[string]Position)
	allZero := true
	for _, node := range net.Nodes() {
		positions[node.ID] = Position{X: node.Coords.X, Y: node.Coords.Y}
		if node.Coords.X != 0 || node.Coords.Y != 0 {
			allZero = false
		}
	}
	if allZero && net.NodeCount() > 1 {
		return NewHierarchicalLayout(cl.config).ComputeLayout(net)
	}
	return normalizePositions(positions, cl.config.Width, cl.config.Height, cl.config.Padding)
}

// HierarchicalLayout arranges nodes in BFS levels from the source nodes
// (those with no incoming pipes), top to bottom.
type HierarchicalLayout struct {
	config LayoutConfig
}

// NewHierarchicalLayout creates a hierarchical layout.
func NewHierarchicalLayout(config LayoutConfig) *HierarchicalLayout {
	if config.Padding == 0 {
		config.Padding = 2
	}
	return &HierarchicalLayout{config: config}
}

// ComputeLayout arranges nodes hierarchically.
func (hl *HierarchicalLayout) ComputeLayout(net *network.Network) map[string]Position {
	positions := make(map[string]Position)
	nodes := net.Nodes()
	if len(nodes) == 0 {
		return positions
	}

	// Roots are nodes with no incoming pipes (the reservoirs).
	var roots []string
	for _, node := range nodes {
		preds, _ := net.Predecessors(node.ID)
		if len(preds) == 0 {
			roots = append(roots, node.ID)
		}
	}
	if len(roots) == 0 {
		roots = []string{nodes[0].ID}
	}

	// Build levels using BFS.
	var levels [][]string
	visited := make(map[string]bool)
	currentLevel := roots
	for _, id := range roots {
		visited[id] = true
	}

	for len(currentLevel) > 0 {
		levels = append(levels, currentLevel)
		var nextLevel []string
		for _, id := range currentLevel {
			successors, _ := net.Successors(id)
			for _, next := range successors {
				if !visited[next] {
					visited[next] = true
					nextLevel = append(nextLevel, next)
				}
			}
		}
		currentLevel = nextLevel
	}

	// Unreached nodes (sensors have no pipes) go on the last level.
	for _, node := range nodes {
		if !visited[node.ID] {
			levels[len(levels)-1] = append(levels[len(levels)-1], node.ID)
		}
	}

	levelHeight := (hl.config.Height - 2*hl.config.Padding) / float64(len(levels))
	for levelIdx, level := range levels {
		y := hl.config.Padding + float64(levelIdx)*levelHeight + levelHeight/2
		levelWidth := hl.config.Width - 2*hl.config.Padding
		step := levelWidth / float64(len(level)+1)
		for i, id := range level {
			positions[id] = Position{
				X: hl.config.Padding + float64(i+1)*step,
				Y: y,
			}
		}
	}
	return positions
}

// normalizePositions scales positions to fit within bounds.
func normalizePositions(positions map[string]Position, width, height, padding float64) map[string]Position {
	if len(positions) == 0 {
		return positions
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}

	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	normalized := make(map[string]Position)
	for id, pos := range positions {
		normalized[id] = Position{
			X: padding + ((pos.X-minX)/rangeX)*targetWidth,
			Y: padding + ((pos.Y-minY)/rangeY)*targetHeight,
		}
	}
	return normalized
}
