package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// ReadGraph decodes a JSON diagram description from r.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	return g, nil
}

// ReadGraphFile reads a JSON diagram description from path.
func ReadGraphFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// MarshalGraph encodes g as indented JSON.
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// WriteLayout writes a positioned graph as indented JSON to w.
func WriteLayout(p PositionedGraph, w io.Writer) error {
	return encode(w, p)
}

// WriteLayoutFile writes a positioned graph to a JSON file.
// The file is created with 0644 permissions.
func WriteLayoutFile(p PositionedGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(p, f)
}

// MarshalLayout encodes a positioned graph as indented JSON.
func MarshalLayout(p PositionedGraph) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout decodes a positioned graph from JSON bytes.
func UnmarshalLayout(data []byte) (PositionedGraph, error) {
	var p PositionedGraph
	if err := json.Unmarshal(data, &p); err != nil {
		return PositionedGraph{}, fmt.Errorf("decode: %w", err)
	}
	return p, nil
}

// ReadLayoutFile reads a positioned graph from a JSON file.
func ReadLayoutFile(path string) (PositionedGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PositionedGraph{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
