package algorithms

import (
	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

// HasCycle reports whether the network contains a directed cycle.
//
// Uses depth-first search with three-color marking: WHITE nodes are
// unvisited, GRAY nodes are in the current recursion stack, BLACK nodes are
// fully explored. A pipe into a GRAY node is a back edge, hence a cycle.
func HasCycle(net *network.Network) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int, net.NodeCount())

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		successors, _ := net.Successors(id)
		for _, next := range successors {
			switch color[next] {
			case gray:
				return true
			case white:
				if visit(next) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, node := range net.Nodes() {
		if color[node.ID] == white {
			if visit(node.ID) {
				return true
			}
		}
	}
	return false
}

// IsDAG reports whether the network is a directed acyclic graph. A water
// distribution network oriented with flow is expected to be one.
func IsDAG(net *network.Network) bool {
	return !HasCycle(net)
}
