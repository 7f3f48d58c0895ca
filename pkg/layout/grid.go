package layout

import (
	"math"
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/gridlayout/pkg/dag"
	"github.com/matzehuels/gridlayout/pkg/dag/transform"
	"github.com/matzehuels/gridlayout/pkg/diagram"
)

// cellAssignment is the grid cell of every node, indexed like the sanitized
// node list.
type cellAssignment struct {
	rank, row, col []int

	broken int  // back edges ignored while ranking
	snake  bool // chain wrapping applied
}

// assignCells ranks a cycle-free copy of conn, maps ranks to cells for the
// layout direction, wraps a left-to-right chain when it qualifies and
// finally applies caller hints, which always win.
func assignCells(g diagram.Graph, conn *dag.Graph, cfg Config) cellAssignment {
	work := conn.Clone()
	broken := transform.BreakCycles(work)
	r := transform.AssignRanks(work)

	a := cellAssignment{rank: r.Rank, broken: broken}
	if a.rank == nil {
		a.rank = []int{}
	}
	a.row, a.col = rankCells(r, g.Direction)

	if g.Direction == diagram.DirectionLR {
		if chain, ok := snakeChain(conn, cfg); ok {
			cols := SnakeColumns(len(chain), cfg)
			for i, node := range chain {
				a.row[node], a.col[node] = SnakeCell(i, cols)
			}
			a.snake = true
		}
	}

	for i, n := range g.Nodes {
		if n.Row != nil {
			a.row[i] = *n.Row
		}
		if n.Column != nil {
			a.col[i] = *n.Column
		}
	}
	return a
}

// crossings counts connections crossing between adjacent rows (TB) or
// columns (LR) of the final grid. Snake and radial layouts have no layer
// order and report 0.
func (a cellAssignment) crossings(conn *dag.Graph, dir diagram.Direction) int {
	if a.snake || conn.Len() == 0 {
		return 0
	}
	var layer, pos []int
	switch dir {
	case diagram.DirectionTB:
		layer, pos = a.row, a.col
	case diagram.DirectionLR:
		layer, pos = a.col, a.row
	default:
		return 0
	}
	return dag.CountCrossings(conn, layer, pos)
}

// rankCells maps (rank, position in rank) to (row, column).
//
// Top-to-bottom uses row=rank, column=position; left-to-right swaps the two.
// Radial places each rank on a ring of that radius at angle
// position/size·2π and rounds to the nearest cell, then shifts all cells so
// that the smallest row and column are 0. Radial cells may collide.
func rankCells(r transform.Ranking, dir diagram.Direction) (row, col []int) {
	n := len(r.Rank)
	row = make([]int, n)
	col = make([]int, n)

	for i := range n {
		rank, pos := r.Rank[i], r.Position[i]
		switch dir {
		case diagram.DirectionLR:
			row[i], col[i] = pos, rank
		case diagram.DirectionRadial:
			angle := float64(pos) / float64(len(r.Buckets[rank])) * 2 * math.Pi
			row[i] = int(math.Round(math.Sin(angle) * float64(rank)))
			col[i] = int(math.Round(math.Cos(angle) * float64(rank)))
		default:
			row[i], col[i] = rank, pos
		}
	}

	if dir == diagram.DirectionRadial && n > 0 {
		minRow, minCol := row[0], col[0]
		for i := range n {
			minRow = min(minRow, row[i])
			minCol = min(minCol, col[i])
		}
		for i := range n {
			row[i] -= minRow
			col[i] -= minCol
		}
	}
	return row, col
}

// NodeSize returns the box size of n: the tier's base size, widened to fit
// the estimated label width but never beyond cfg.MaxNodeWidth.
// The estimate counts terminal cells, so wide glyphs and emoji count double.
func NodeSize(n diagram.Node, cfg Config) Size {
	base := cfg.NodeSizes.For(n.Importance)
	text := n.DisplayLabel()
	if n.Emoji != "" {
		text = n.Emoji + " " + text
	}
	estimate := float64(runewidth.StringWidth(text))*cfg.CharWidth + cfg.LabelPadding
	return Size{
		Width:  max(base.Width, min(estimate, cfg.MaxNodeWidth)),
		Height: base.Height,
	}
}

// CellCenter returns the center of grid cell (row, col). header is the space
// reserved above row 0 for the title.
func (c Config) CellCenter(row, col int, header float64) (x, y float64) {
	x = c.Margin + float64(col)*c.CellWidth + c.CellWidth/2
	y = c.Margin + header + float64(row)*c.CellHeight + c.CellHeight/2
	return x, y
}

// extent records the occupied grid. Hints may name negative cells; the grid
// then starts at the smallest of them instead of at cell (0, 0).
func (l *layouter) extent(a cellAssignment) {
	if len(a.row) == 0 {
		return
	}
	minRow, maxRow := min(0, slices.Min(a.row)), slices.Max(a.row)
	minCol, maxCol := min(0, slices.Min(a.col)), slices.Max(a.col)
	l.originRow, l.originCol = minRow, minCol
	// float arithmetic: hint spans may exceed the int range
	l.rows = float64(maxRow) - float64(minRow) + 1
	l.cols = float64(maxCol) - float64(minCol) + 1
}

// cellCenter is [Config.CellCenter] relative to the grid origin.
func (l *layouter) cellCenter(row, col int) (x, y float64) {
	x, y = l.cfg.CellCenter(0, 0, l.header)
	x += (float64(col) - float64(l.originCol)) * l.cfg.CellWidth
	y += (float64(row) - float64(l.originRow)) * l.cfg.CellHeight
	return x, y
}

func (l *layouter) placeNodes(a cellAssignment) {
	l.extent(a)
	l.nodes = make([]diagram.PositionedNode, len(l.graph.Nodes))
	for i, n := range l.graph.Nodes {
		size := NodeSize(n, l.cfg)
		x, y := l.cellCenter(a.row[i], a.col[i])
		l.nodes[i] = diagram.PositionedNode{
			ID:            n.ID,
			Type:          n.Type,
			Label:         n.DisplayLabel(),
			Emoji:         n.Emoji,
			Description:   n.Description,
			SemanticColor: n.SemanticColor,
			Importance:    n.Importance,
			Rank:          a.rank[i],
			Row:           a.row[i],
			Column:        a.col[i],
			X:             x,
			Y:             y,
			Width:         size.Width,
			Height:        size.Height,
		}
		l.index[n.ID] = i
	}
}
