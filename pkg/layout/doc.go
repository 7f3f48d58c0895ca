// Package layout turns a semantic [diagram.Graph] into a positioned
// [diagram.PositionedGraph].
//
// # Pipeline
//
// [Build] runs one synchronous pass with no shared state:
//
//  1. Sanitize: dangling references, duplicate ids, empty groups and blank
//     notes are repaired or dropped and reported as diagnostics.
//  2. Rank: connections are layered breadth-first from the roots after back
//     edges are removed (see package transform). Caller row and column hints
//     always win over computed cells.
//  3. Wrap: in left-to-right mode a graph that is one simple chain covering
//     most nodes is re-laid into rows of 3 or 4 cells, alternating direction
//     on every row.
//  4. Place: every node is sized from its importance tier and label, and
//     centered in its grid cell.
//  5. Route, group, annotate: connection endpoints and elbows, group
//     rectangles, note boxes and the title anchor are derived from the
//     placed nodes.
//
// # Coordinates
//
// Node X and Y are box centers. Groups and notes report their top-left
// corner. Connections carry both endpoints plus an orthogonal polyline in
// Points. The grid origin sits at (Margin, Margin), pushed down by
// HeaderOffset when the diagram has a title.
//
// # Configuration
//
// All geometry comes from a [Config] value passed with [WithConfig];
// [DefaultConfig] holds the built-in values and [LoadConfig] reads overrides
// from a TOML file:
//
//	cell_width = 240.0
//	fan_spread = 0.5
//
//	[node_sizes.high]
//	width = 200.0
//	height = 90.0
//
// # Determinism
//
// Build depends only on its input order. Element ids come from a
// [diagram.IDSource]; the default derives them from content, so repeated
// calls produce identical output.
//
// [diagram.Graph]: github.com/matzehuels/gridlayout/pkg/diagram#Graph
// [diagram.PositionedGraph]: github.com/matzehuels/gridlayout/pkg/diagram#PositionedGraph
// [diagram.IDSource]: github.com/matzehuels/gridlayout/pkg/diagram#IDSource
package layout
