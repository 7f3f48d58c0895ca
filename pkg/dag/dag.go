package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by [Graph.AddEdgeByID] when an endpoint ID
	// is not part of the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNodeIndex is returned by [Graph.AddEdge] when an endpoint index is
	// out of range.
	ErrNodeIndex = errors.New("node index out of range")
)

// Graph is a directed multigraph over dense integer node indices.
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	ids   []string
	index map[string]int
	out   [][]int // node -> children, in edge insertion order
	in    [][]int // node -> parents, in edge insertion order
	edges int
}

// New creates an empty graph with room for capacity nodes.
func New(capacity int) *Graph {
	return &Graph{
		ids:   make([]string, 0, capacity),
		index: make(map[string]int, capacity),
		out:   make([][]int, 0, capacity),
		in:    make([][]int, 0, capacity),
	}
}

// AddNode interns id and returns its index.
// Returns ErrInvalidNodeID for an empty id or ErrDuplicateNodeID when the id
// is already present (together with the existing index).
func (g *Graph) AddNode(id string) (int, error) {
	if id == "" {
		return -1, ErrInvalidNodeID
	}
	if i, exists := g.index[id]; exists {
		return i, ErrDuplicateNodeID
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = i
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return i, nil
}

// AddEdge adds a directed edge between two existing node indices.
func (g *Graph) AddEdge(from, to int) error {
	if !g.valid(from) || !g.valid(to) {
		return ErrNodeIndex
	}
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	g.edges++
	return nil
}

// AddEdgeByID adds a directed edge between two nodes looked up by ID.
// Returns ErrUnknownNode if either endpoint does not exist.
func (g *Graph) AddEdgeByID(from, to string) error {
	f, ok := g.index[from]
	if !ok {
		return ErrUnknownNode
	}
	t, ok := g.index[to]
	if !ok {
		return ErrUnknownNode
	}
	return g.AddEdge(f, t)
}

// RemoveEdge removes one edge from→to if it exists.
// No error is returned if the edge does not exist.
func (g *Graph) RemoveEdge(from, to int) {
	if !g.valid(from) || !g.valid(to) {
		return
	}
	i := slices.Index(g.out[from], to)
	if i < 0 {
		return
	}
	g.out[from] = slices.Delete(g.out[from], i, i+1)
	if j := slices.Index(g.in[to], from); j >= 0 {
		g.in[to] = slices.Delete(g.in[to], j, j+1)
	}
	g.edges--
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.ids) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// ID returns the string ID of node i.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Index returns the index of the node with the given ID.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Children returns the targets of edges leaving i, in insertion order.
// The returned slice must not be modified.
func (g *Graph) Children(i int) []int { return g.out[i] }

// Parents returns the sources of edges entering i, in insertion order.
// The returned slice must not be modified.
func (g *Graph) Parents(i int) []int { return g.in[i] }

// OutDegree returns the number of edges leaving i.
func (g *Graph) OutDegree(i int) int { return len(g.out[i]) }

// InDegree returns the number of edges entering i.
func (g *Graph) InDegree(i int) int { return len(g.in[i]) }

// Sources returns every node without incoming edges, in index order.
func (g *Graph) Sources() []int {
	var result []int
	for i := range g.ids {
		if len(g.in[i]) == 0 {
			result = append(result, i)
		}
	}
	return result
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		ids:   slices.Clone(g.ids),
		index: make(map[string]int, len(g.index)),
		out:   make([][]int, len(g.out)),
		in:    make([][]int, len(g.in)),
		edges: g.edges,
	}
	for id, i := range g.index {
		c.index[id] = i
	}
	for i := range g.out {
		c.out[i] = slices.Clone(g.out[i])
		c.in[i] = slices.Clone(g.in[i])
	}
	return c
}

func (g *Graph) valid(i int) bool { return i >= 0 && i < len(g.ids) }
