// Package dot renders positioned diagrams as Graphviz DOT and SVG previews.
//
// # Overview
//
// [ToDOT] emits a graph in which every node, group rectangle and note is
// pinned with pos="x,y!" at the coordinates computed by the layout engine,
// so Graphviz only draws and never places anything itself. Canvas y grows
// downward while Graphviz y grows upward; ToDOT flips the axis using the
// canvas height.
//
//	src := dot.ToDOT(p, dot.Options{Detailed: true})
//	svg, err := dot.RenderSVG(ctx, src)
//
// Groups are drawn as dashed boxes behind their members and notes as note
// shapes. Dashed connections keep their stroke style.
//
// # Dependencies
//
// [RenderSVG] uses [github.com/goccy/go-graphviz] with the neato engine,
// which honors pinned positions. No external Graphviz installation is needed.
package dot
