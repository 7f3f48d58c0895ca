package transform

import "github.com/matzehuels/gridlayout/pkg/dag"

// BreakCycles removes back edges so that g becomes acyclic and returns the
// number of edges removed.
//
// A depth-first search starts from every source in index order, then from
// every node still unvisited (nodes that only sit on cycles). An edge into a
// node on the current DFS stack closes a cycle and is removed. Self-loops are
// always removed. The result depends only on node and edge insertion order.
func BreakCycles(g *dag.Graph) int {
	const (
		white = iota
		gray
		black
	)

	color := make([]int, g.Len())
	var backEdges [][2]int

	var dfs func(node int)
	dfs = func(node int) {
		color[node] = gray
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]int{node, child})
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n] == white {
			dfs(n)
		}
	}
	for n := range g.Len() {
		if color[n] == white {
			dfs(n)
		}
	}

	for _, e := range backEdges {
		g.RemoveEdge(e[0], e[1])
	}
	return len(backEdges)
}
