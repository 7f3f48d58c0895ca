package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/layout"
)

// GenerateLayout positions g with the options' direction override and
// geometry. It never fails; input problems are reported as diagnostics.
func GenerateLayout(g diagram.Graph, opts Options) layout.Result {
	g = applyDirection(g, opts.Direction)
	return layout.Build(g,
		layout.WithConfig(opts.LayoutConfig()),
		layout.WithIDSource(opts.IDSource))
}

// cachedLayout is the cache representation of a layout.Result.
type cachedLayout struct {
	Graph       diagram.PositionedGraph `json:"graph"`
	Diagnostics []diagram.Diagnostic    `json:"diagnostics,omitempty"`
	BrokenEdges int                     `json:"brokenEdges,omitempty"`
	Snake       bool                    `json:"snake,omitempty"`
	Crossings   int                     `json:"crossings,omitempty"`
}

// MarshalResult encodes a layout result for caching or API responses.
func MarshalResult(r layout.Result) ([]byte, error) {
	data, err := json.Marshal(cachedLayout{
		Graph:       r.Graph,
		Diagnostics: r.Diagnostics,
		BrokenEdges: r.BrokenEdges,
		Snake:       r.Snake,
		Crossings:   r.Crossings,
	})
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

// UnmarshalResult decodes a layout result written by MarshalResult.
func UnmarshalResult(data []byte) (layout.Result, error) {
	var c cachedLayout
	if err := json.Unmarshal(data, &c); err != nil {
		return layout.Result{}, fmt.Errorf("decode layout: %w", err)
	}
	return layout.Result{
		Graph:       c.Graph,
		Diagnostics: c.Diagnostics,
		BrokenEdges: c.BrokenEdges,
		Snake:       c.Snake,
		Crossings:   c.Crossings,
	}, nil
}
