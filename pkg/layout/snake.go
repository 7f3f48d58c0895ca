package layout

import (
	"github.com/matzehuels/gridlayout/pkg/dag"
	"github.com/matzehuels/gridlayout/pkg/dag/transform"
)

// snakeChain reports the node chain to wrap, or false when conn is not a
// single simple chain covering at least cfg.SnakeMinCoverage of the nodes.
// A chain needs two nodes; wrapping one node changes nothing.
func snakeChain(conn *dag.Graph, cfg Config) ([]int, bool) {
	if conn.Len() < 2 {
		return nil, false
	}
	if _, ok := transform.DegreeCheck(conn); !ok {
		return nil, false
	}
	chain := transform.WalkChain(conn)
	if len(chain) < 2 {
		return nil, false
	}
	coverage := float64(len(chain)) / float64(conn.Len())
	if coverage+1e-9 < cfg.SnakeMinCoverage {
		return nil, false
	}
	return chain, true
}

// SnakeColumns returns how many nodes a wrapped row holds for a chain of
// length n.
func SnakeColumns(n int, cfg Config) int {
	if n <= cfg.SnakeShortChain {
		return cfg.SnakeShortCols
	}
	return cfg.SnakeMaxCols
}

// SnakeCell returns the cell of the i-th chain node when each row holds cols
// nodes. Even rows run left to right and odd rows right to left, so
// consecutive nodes stay adjacent across a row break.
func SnakeCell(i, cols int) (row, col int) {
	row = i / cols
	col = i % cols
	if row%2 == 1 {
		col = cols - 1 - col
	}
	return row, col
}
