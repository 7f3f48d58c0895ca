// Package pkg provides the libraries behind gridlayout, a layout engine for
// semantic diagrams.
//
// # Overview
//
// gridlayout turns a coordinate-free diagram description (typed nodes,
// connections, groups, notes and a title) into a positioned graph that a
// renderer can draw without further computation. The pkg directory is
// organized by pipeline stage:
//
//  1. [diagram] - Input and output types, sanitizing and JSON I/O
//  2. [dag] - Integer-indexed working graph used by the layout passes
//  3. [layout] - Ranking, snake wrapping, grid placement and routing
//  4. [render/dot] - Graphviz previews of a positioned graph
//  5. [pipeline] - Orchestration (parse → layout → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	diagram JSON
//	     ↓
//	[diagram] package (decode + sanitize)
//	     ↓
//	[dag/transform] package (break cycles + assign ranks)
//	     ↓
//	[layout] package (cells, sizes, routes, groups, notes, title)
//	     ↓
//	positioned JSON / DOT / SVG
//
// # Quick Start
//
//	g, _ := diagram.ReadGraphFile("checkout.json")
//	res := layout.Build(g)
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d)
//	}
//	_ = diagram.WriteLayoutFile(res.Graph, "checkout.layout.json")
//
// # Supporting Packages
//
// [cache] - Content-addressed caching of layouts and rendered artifacts with
// file, Redis and null backends.
//
// [observability] - Hook interfaces for layout, cache and HTTP events, with a
// structured-logging implementation.
//
// [errors] - Coded errors shared by every entry point; codes decide between
// client and server failures.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/layout/... # Specific package
//	go test -run Example     # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/diagram
// [dag]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/dag/transform
// [layout]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/layout
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gridlayout/pkg/buildinfo
package pkg
