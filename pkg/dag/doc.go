// Package dag provides a compact directed graph addressed by integer node
// indices, used as the working structure of the ranking and chain-detection
// passes.
//
// # Overview
//
// Diagram nodes are identified by strings, but every layout pass walks the
// graph many times. [Graph] interns each id once and stores adjacency as
// slices of indices (an arena), so traversals touch no maps:
//
//	g := dag.New(3)
//	api, _ := g.AddNode("api")
//	db, _ := g.AddNode("db")
//	_ = g.AddEdge(api, db)
//
// Node indices are dense and assigned in insertion order, which makes every
// traversal deterministic for a fixed input order.
//
// # Edges
//
// Edges are directed and may repeat; self-loops are allowed and count toward
// both degrees of their node. Unlike a strict DAG, [Graph] accepts cycles:
// the [transform] subpackage removes back edges with [transform.BreakCycles]
// before ranking.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Read-only queries on
// a graph that is no longer modified may run in parallel.
//
// [transform]: github.com/matzehuels/gridlayout/pkg/dag/transform
// [transform.BreakCycles]: github.com/matzehuels/gridlayout/pkg/dag/transform#BreakCycles
package dag
