// Package network models a small water-distribution network as a typed
// directed graph. Nodes are physical assets (reservoirs, pumps, junctions,
// consumption zones, valves) plus the sensors attached to them; edges are
// pipes oriented with the direction of flow.
//
// A Network is immutable once built. Construct one through Builder, which
// validates the schema invariants before handing the graph out.
package network

// Network is an immutable directed graph of water assets.
type Network struct {
	order   []string // node IDs in insertion order
	nodes   map[string]*Node
	pipes   []Pipe
	forward map[string][]string // from -> to
	reverse map[string][]string // to -> from
}

// Node returns the node with the given ID, or ErrNodeNotFound.
func (n *Network) Node(id string) (*Node, error) {
	node, ok := n.nodes[id]
	if !ok {
		return nil, nodeError("lookup node", id, ErrNodeNotFound)
	}
	return node, nil
}

// Has reports whether a node with the given ID exists.
func (n *Network) Has(id string) bool {
	_, ok := n.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order.
func (n *Network) Nodes() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, n.nodes[id])
	}
	return out
}

// NodesByType returns the nodes of the given type, in insertion order.
func (n *Network) NodesByType(t NodeType) []*Node {
	var out []*Node
	for _, id := range n.order {
		if node := n.nodes[id]; node.Type == t {
			out = append(out, node)
		}
	}
	return out
}

// Successors returns the IDs of nodes reachable from id over one pipe.
// Unknown IDs yield ErrNodeNotFound.
func (n *Network) Successors(id string) ([]string, error) {
	if !n.Has(id) {
		return nil, nodeError("successors of", id, ErrNodeNotFound)
	}
	return append([]string(nil), n.forward[id]...), nil
}

// Predecessors returns the IDs of nodes with a pipe into id.
// Unknown IDs yield ErrNodeNotFound.
func (n *Network) Predecessors(id string) ([]string, error) {
	if !n.Has(id) {
		return nil, nodeError("predecessors of", id, ErrNodeNotFound)
	}
	return append([]string(nil), n.reverse[id]...), nil
}

// Pipes returns all pipes in insertion order.
func (n *Network) Pipes() []Pipe {
	return append([]Pipe(nil), n.pipes...)
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// PipeCount returns the number of pipes.
func (n *Network) PipeCount() int { return len(n.pipes) }

// SensorIDs returns the IDs of all sensor nodes in insertion order.
func (n *Network) SensorIDs() []string {
	var ids []string
	for _, id := range n.order {
		if n.nodes[id].Type == TypeSensor {
			ids = append(ids, id)
		}
	}
	return ids
}
