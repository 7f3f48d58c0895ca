// Package transform provides the graph passes that turn a connection graph
// into grid ranks.
//
// # Cycle Breaking
//
// [BreakCycles] removes back edges found by a depth-first search so that
// ranking always terminates. Diagram connections are not required to be
// acyclic; callers break cycles on a working copy of the graph and still
// route every original connection.
//
// # Ranking
//
// [AssignRanks] layers the graph breadth-first from its sources. A node that
// is reached again over a longer path keeps the larger rank, which places the
// join of a diamond below both of its branches:
//
//	api → auth → db
//	api → db
//
// ranks api=0, auth=1, db=2. Nodes unreachable from any source are appended
// as their own ranks after the main layering.
//
// # Chains
//
// Linear chains are detected in two passes. [DegreeCheck] fails fast on the
// first node with more than one outgoing or incoming edge, then [WalkChain]
// follows the single outgoing edge from the head of the chain. The layout
// package uses the result to wrap long left-to-right sequences into rows.
//
// # Usage
//
//	work := g.Clone()
//	transform.BreakCycles(work)
//	r := transform.AssignRanks(work)
//
//	if _, ok := transform.DegreeCheck(g); ok {
//		chain := transform.WalkChain(g)
//		_ = chain
//	}
//	_ = r
package transform
