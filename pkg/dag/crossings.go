package dag

import (
	"cmp"
	"slices"
)

// CountCrossings returns the number of pairwise crossings among edges that
// join adjacent layers. layer[i] is the layer of node i and pos[i] its
// position inside the layer; positions may be any int, including negative
// ones, since only their order matters. Edges within one layer or spanning
// several layers are ignored, as are self-loops.
//
// Two edges (u1,v1) and (u2,v2) between the same layers cross if and only if
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// Edges sharing an endpoint position never cross.
func CountCrossings(g *Graph, layer, pos []int) int {
	byLayer := make(map[int][]edgePos)
	var lowers []int
	for u := range g.Len() {
		for _, v := range g.Children(u) {
			upper, lower := u, v
			if layer[v] < layer[u] {
				upper, lower = v, u
			}
			if layer[lower]-layer[upper] != 1 {
				continue
			}
			byLayer[layer[upper]] = append(byLayer[layer[upper]], edgePos{pos[upper], pos[lower]})
			lowers = append(lowers, pos[lower])
		}
	}

	// Scratch space is sized by the number of distinct lower positions, not
	// by their magnitude.
	slices.Sort(lowers)
	lowers = slices.Compact(lowers)
	fenwick := make([]int, len(lowers)+1)

	crossings := 0
	for _, edges := range byLayer {
		for i := range edges {
			edges[i].lower, _ = slices.BinarySearch(lowers, edges[i].lower)
		}
		crossings += countLayerCrossings(edges, fenwick)
	}
	return crossings
}

type edgePos struct{ upper, lower int }

// countLayerCrossings counts inversions of lower positions once edges are
// sorted by upper and then lower position, so edges sharing an upper
// endpoint are never counted. Lower positions must be dense ranks and fenwick
// a scratch binary indexed tree at least max(lower)+2 long; it is cleared
// before use.
func countLayerCrossings(edges []edgePos, fenwick []int) int {
	if len(edges) < 2 {
		return 0
	}
	clear(fenwick)

	slices.SortFunc(edges, func(a, b edgePos) int {
		if a.upper != b.upper {
			return cmp.Compare(a.upper, b.upper)
		}
		return cmp.Compare(a.lower, b.lower)
	})

	crossings, total := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
