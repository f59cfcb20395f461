// Package algorithms provides graph traversals over a water network:
// reachability queries used by the leak injector and topology checks used
// for sanity reporting.
package algorithms

import (
	"github.com/dd0wney/cluso-watergrid/pkg/network"
)

// NeighborDirection controls which edges to follow during traversal.
type NeighborDirection int

const (
	DirectionOut NeighborDirection = iota // outgoing pipes only
	DirectionIn                           // incoming pipes only
)

// Ancestors returns the set of node IDs with a directed path TO the given
// node, computed by breadth-first traversal over reverse edges. The node
// itself is not included. An unknown node yields an empty set, not an
// error: callers treat "no ancestors" and "no such node" identically.
func Ancestors(net *network.Network, nodeID string) map[string]struct{} {
	return reachable(net, nodeID, DirectionIn)
}

// Descendants returns the set of node IDs reachable FROM the given node
// over forward edges. The node itself is not included.
func Descendants(net *network.Network, nodeID string) map[string]struct{} {
	return reachable(net, nodeID, DirectionOut)
}

// reachable performs an unbounded BFS from sourceID in the given direction.
func reachable(net *network.Network, sourceID string, direction NeighborDirection) map[string]struct{} {
	result := make(map[string]struct{})
	if !net.Has(sourceID) {
		return result
	}

	visited := map[string]bool{sourceID: true}
	queue := []string{sourceID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		var neighbors []string
		switch direction {
		case DirectionOut:
			neighbors, _ = net.Successors(current)
		case DirectionIn:
			neighbors, _ = net.Predecessors(current)
		}

		for _, next := range neighbors {
			if visited[next] {
				continue
			}
			visited[next] = true
			result[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return result
}
