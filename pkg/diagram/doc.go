// Package diagram defines the value types exchanged with gridlayout: the
// coordinate-free [Graph] produced by an upstream generation step and the
// [PositionedGraph] consumed by a renderer.
//
// # Architecture
//
// The package sits at the serialization boundary of the layout engine:
//
//   - [Graph], [Node], [Connection], [Group], [Note]: semantic input (no geometry)
//   - [PositionedGraph] and its element types: geometry-resolved output
//   - [Diagnostic]: recoverable input problems found while sanitizing
//
// All types carry camelCase JSON tags so that files and HTTP payloads match
// the contract used by the editor integration:
//
//	{
//	  "direction": "TB",
//	  "nodes": [{"id": "a", "type": "service", "label": "API"}],
//	  "connections": [{"from": "a", "to": "b", "style": "solid"}]
//	}
//
// # Sanitizing
//
// [Sanitize] returns a cleaned deep copy of a graph together with the
// diagnostics describing everything it removed or normalized. It never
// mutates its argument. Dangling connection endpoints and group members are
// filtered, groups left empty are dropped, blank notes are dropped, and
// unknown enum values fall back to their defaults.
//
// # Element Identifiers
//
// Renderers need stable identifiers for connections, groups and notes.
// [IDSource] abstracts their creation; [NameIDs] derives name-based UUIDs
// (version 5) from element content so that repeated layout runs over the same
// input produce byte-identical output.
package diagram
