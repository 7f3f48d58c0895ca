package transform

import "github.com/matzehuels/gridlayout/pkg/dag"

// Ranking is the result of [AssignRanks].
type Ranking struct {
	// Rank holds the layer of every node, indexed by node index.
	Rank []int
	// Buckets lists the nodes of each rank in encounter order.
	Buckets [][]int
	// Position is the index of each node within its bucket.
	Position []int
}

// MaxRank returns the highest rank in use, or -1 for an empty ranking.
func (r Ranking) MaxRank() int { return len(r.Buckets) - 1 }

// AssignRanks layers g by breadth-first traversal from its sources.
//
// Roots are the nodes without incoming edges; when every node has a parent,
// node 0 acts as a synthetic root. Each child is ranked one below the parent
// it was reached from. When a node is reached again over a longer path its
// rank is raised to the larger candidate and it is re-queued, so a node never
// sits at or above any of its ancestors (diamonds lay out correctly).
//
// Nodes the traversal never reaches get fresh ranks one past the current
// maximum, one rank each, in index order.
//
// Buckets are filled in first-encounter order. AssignRanks terminates on
// cyclic input because roots stay at rank 0 and a candidate rank is never
// allowed to reach g.Len(), but the layering is only meaningful after
// [BreakCycles].
func AssignRanks(g *dag.Graph) Ranking {
	n := g.Len()
	if n == 0 {
		return Ranking{}
	}

	rank := make([]int, n)
	seen := make([]bool, n)
	order := make([]int, 0, n)

	roots := g.Sources()
	if len(roots) == 0 {
		roots = []int{0}
	}

	root := make([]bool, n)
	queue := make([]int, 0, n)
	for _, r := range roots {
		seen[r] = true
		root[r] = true
		order = append(order, r)
		queue = append(queue, r)
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			cand := rank[curr] + 1
			if !seen[child] {
				seen[child] = true
				rank[child] = cand
				order = append(order, child)
				queue = append(queue, child)
				continue
			}
			if !root[child] && cand > rank[child] && cand < n {
				rank[child] = cand
				queue = append(queue, child)
			}
		}
	}

	maxRank := 0
	for _, i := range order {
		maxRank = max(maxRank, rank[i])
	}
	for i := range n {
		if !seen[i] {
			maxRank++
			rank[i] = maxRank
			order = append(order, i)
		}
	}

	buckets := make([][]int, maxRank+1)
	position := make([]int, n)
	for _, i := range order {
		position[i] = len(buckets[rank[i]])
		buckets[rank[i]] = append(buckets[rank[i]], i)
	}

	return Ranking{Rank: rank, Buckets: buckets, Position: position}
}
