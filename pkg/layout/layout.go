package layout

import (
	"github.com/matzehuels/gridlayout/pkg/dag"
	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
)

// Result is the output of [Build].
type Result struct {
	// Graph is the positioned diagram.
	Graph diagram.PositionedGraph

	// Diagnostics lists every input problem that was repaired or dropped.
	Diagnostics []diagram.Diagnostic

	// BrokenEdges counts connections ignored for ranking because they closed
	// a cycle. They are still routed.
	BrokenEdges int

	// Snake reports whether the nodes were wrapped as a linear chain.
	Snake bool

	// Crossings counts connections that cross between adjacent ranks of a
	// TB or LR grid.
	Crossings int
}

// Build positions g. The input is never modified and the same input always
// yields the same output.
//
// Build first sanitizes g (see [diagram.Sanitize]), then ranks the nodes,
// optionally wraps a left-to-right chain, sizes and places every node on the
// grid, and finally routes connections and places groups, notes and the
// title. Problems with the input never abort the layout; they are reported
// in [Result.Diagnostics].
func Build(g diagram.Graph, opts ...Option) Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	clean, diags := diagram.Sanitize(g)
	cfg := o.config
	if err := cfg.Validate(); err != nil {
		diags = append(diags, diagram.Diagnostic{
			Code:    errors.ErrCodeInvalidConfig,
			Subject: "config",
			Message: errors.UserMessage(err) + ", using defaults",
		})
		cfg = DefaultConfig()
	}

	conn := connectionGraph(clean)
	cells := assignCells(clean, conn, cfg)

	l := &layouter{
		cfg:   cfg,
		ids:   o.ids,
		graph: clean,
		index: make(map[string]int, len(clean.Nodes)),
	}
	if clean.Title != "" {
		l.header = cfg.HeaderOffset
	}
	l.placeNodes(cells)

	out := diagram.PositionedGraph{
		Direction:   clean.Direction,
		Nodes:       l.nodes,
		Connections: l.routeConnections(),
		Groups:      l.placeGroups(),
		Notes:       l.placeNotes(),
		Title:       l.placeTitle(),
	}
	out.Width, out.Height = l.canvas(out)

	return Result{
		Graph:       out,
		Diagnostics: diags,
		BrokenEdges: cells.broken,
		Snake:       cells.snake,
		Crossings:   cells.crossings(conn, clean.Direction),
	}
}

// connectionGraph interns the sanitized nodes in input order and adds every
// connection, self-loops and repeats included.
func connectionGraph(g diagram.Graph) *dag.Graph {
	d := dag.New(len(g.Nodes))
	for _, n := range g.Nodes {
		_, _ = d.AddNode(n.ID)
	}
	for _, c := range g.Connections {
		_ = d.AddEdgeByID(c.From, c.To)
	}
	return d
}

// layouter holds the single node lookup shared by the placement passes of
// one Build call.
type layouter struct {
	cfg    Config
	ids    diagram.IDSource
	graph  diagram.Graph
	header float64

	nodes []diagram.PositionedNode
	index map[string]int // node id -> position in nodes

	// occupied grid: first cell and size in cells
	originRow, originCol int
	rows, cols           float64
}

func (l *layouter) node(id string) (*diagram.PositionedNode, bool) {
	i, ok := l.index[id]
	if !ok {
		return nil, false
	}
	return &l.nodes[i], true
}

// gridWidth is the width of the occupied columns, excluding margins.
func (l *layouter) gridWidth() float64 { return l.cols * l.cfg.CellWidth }

// gridBottom is the y coordinate below the last occupied row.
func (l *layouter) gridBottom() float64 {
	return l.cfg.Margin + l.header + l.rows*l.cfg.CellHeight
}

// canvas returns the extent needed to show every placed element plus the
// right and bottom margin.
func (l *layouter) canvas(p diagram.PositionedGraph) (width, height float64) {
	width = 2*l.cfg.Margin + l.gridWidth()
	height = l.gridBottom() + l.cfg.Margin
	grow := func(right, bottom float64) {
		width = max(width, right+l.cfg.Margin)
		height = max(height, bottom+l.cfg.Margin)
	}
	for i := range p.Nodes {
		grow(p.Nodes[i].Right(), p.Nodes[i].Bottom())
	}
	for _, g := range p.Groups {
		grow(g.X+g.Width, g.Y+g.Height)
	}
	for _, n := range p.Notes {
		grow(n.X+n.Width, n.Y+n.Height)
	}
	for _, c := range p.Connections {
		for _, pt := range c.Points {
			grow(pt.X, pt.Y)
		}
	}
	return width, height
}
