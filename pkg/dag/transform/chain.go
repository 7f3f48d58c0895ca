package transform

import "github.com/matzehuels/gridlayout/pkg/dag"

// DegreeCheck reports whether every node of g has at most one outgoing and
// at most one incoming edge. On failure it returns the index of the first
// offending node; on success it returns -1.
//
// It is the first of the two chain-detection passes and stops at the first
// node that branches or merges.
func DegreeCheck(g *dag.Graph) (offending int, ok bool) {
	for i := range g.Len() {
		if g.OutDegree(i) > 1 || g.InDegree(i) > 1 {
			return i, false
		}
	}
	return -1, true
}

// WalkChain follows outgoing edges from the head of g and returns the
// visited node indices in chain order.
//
// The head is the first node with no incoming edge and one outgoing edge,
// falling back to the first node with no incoming edge at all. WalkChain
// returns nil when no node qualifies (every node lies on a cycle). It is
// meant to run after [DegreeCheck] succeeded; on branching graphs it follows
// the first child only. A visited guard stops the walk on a cycle.
func WalkChain(g *dag.Graph) []int {
	head := -1
	for i := range g.Len() {
		if g.InDegree(i) != 0 {
			continue
		}
		if g.OutDegree(i) == 1 {
			head = i
			break
		}
		if head < 0 {
			head = i
		}
	}
	if head < 0 {
		return nil
	}

	visited := make([]bool, g.Len())
	var chain []int
	for curr := head; !visited[curr]; {
		visited[curr] = true
		chain = append(chain, curr)
		children := g.Children(curr)
		if len(children) == 0 {
			break
		}
		curr = children[0]
	}
	return chain
}
