// Package render holds preview renderers for positioned diagrams.
//
// # Overview
//
// The layout engine stops at geometry: a [diagram.PositionedGraph] says where
// every box, arrow and note goes, not how it looks. Production renderers
// consume the JSON form of that graph. The packages below exist for
// inspection and debugging:
//
//   - [dot]: Graphviz DOT with every node pinned at its computed position,
//     rendered in-process to SVG
//
// # Usage
//
//	res := layout.Build(g)
//	src := dot.ToDOT(res.Graph, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// [diagram.PositionedGraph]: github.com/matzehuels/gridlayout/pkg/diagram#PositionedGraph
// [dot]: github.com/matzehuels/gridlayout/pkg/render/dot
package render
