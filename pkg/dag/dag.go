// Package dag provides the directed graph underlying dependency
// resolution. Nodes are string identifiers registered in a significant
// insertion order; that order is the tie-break for the deterministic
// topological sort, so the same declaration set always yields the same
// output order.
package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// node does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrCycle is returned by [Graph.TopoSort] when no topological order
	// exists. Use [Graph.CycleNodes] to report the offending nodes.
	ErrCycle = errors.New("graph contains a cycle")
)

// Edge is a directed connection between two registered nodes.
type Edge struct {
	From string
	To   string
}

// Graph is a directed graph over string node IDs.
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	ids      []string // insertion order, drives sort stability
	index    map[string]int
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index:    make(map[string]int),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode registers a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID if the ID is already registered.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.index[id]; exists {
		return ErrDuplicateNodeID
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Multiple edges
// between the same pair are collapsed into one.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.index[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.index[to]; !ok {
		return ErrUnknownTargetNode
	}
	if slices.Contains(g.outgoing[from], to) {
		return nil
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	return nil
}

// Has reports whether id is a registered node.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string { return slices.Clone(g.ids) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs this node has edges to.
// The returned slice is a read-only view.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs that have edges to this node.
// The returned slice is a read-only view.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// InDegree returns the number of incoming edges, 0 for unknown nodes.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// OutDegree returns the number of outgoing edges, 0 for unknown nodes.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// TopoSort returns a topological order over all nodes: every edge From→To
// places From before To. Among nodes whose predecessors are all emitted,
// the one registered earliest is emitted first, which makes the order
// deterministic and keeps it as close to insertion order as the edges
// allow. Returns ErrCycle when nodes remain with unresolved predecessors.
func (g *Graph) TopoSort() ([]string, error) {
	degree := make(map[string]int, len(g.ids))
	for _, id := range g.ids {
		degree[id] = len(g.incoming[id])
	}

	out := make([]string, 0, len(g.ids))
	emitted := make(map[string]bool, len(g.ids))
	for len(out) < len(g.ids) {
		next := ""
		for _, id := range g.ids {
			if !emitted[id] && degree[id] == 0 {
				next = id
				break
			}
		}
		if next == "" {
			return nil, ErrCycle
		}
		emitted[next] = true
		out = append(out, next)
		for _, child := range g.outgoing[next] {
			degree[child]--
		}
	}
	return out, nil
}

// CycleNodes returns the nodes that prevent a topological order: members
// of at least one cycle plus nodes only reachable through one. Returns nil
// for an acyclic graph. The result preserves insertion order.
func (g *Graph) CycleNodes() []string {
	degree := make(map[string]int, len(g.ids))
	for _, id := range g.ids {
		degree[id] = len(g.incoming[id])
	}

	// Kahn peeling: whatever cannot be peeled sits on or behind a cycle.
	queue := make([]string, 0, len(g.ids))
	for _, id := range g.ids {
		if degree[id] == 0 {
			queue = append(queue, id)
		}
	}
	peeled := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		peeled++
		for _, child := range g.outgoing[id] {
			degree[child]--
			if degree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	if peeled == len(g.ids) {
		return nil
	}

	var stuck []string
	for _, id := range g.ids {
		if degree[id] > 0 {
			stuck = append(stuck, id)
		}
	}
	return stuck
}
