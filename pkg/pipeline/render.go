package pipeline

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/render/dot"
)

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the DOT source is generated once and shared by the
// dot and svg formats.
func Render(ctx context.Context, p diagram.PositionedGraph, opts Options) (map[string][]byte, error) {
	for _, format := range opts.Formats {
		if !ValidFormats[format] {
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
	}

	var source string
	if slices.Contains(opts.Formats, FormatDOT) || slices.Contains(opts.Formats, FormatSVG) {
		source = dot.ToDOT(p, dot.Options{Detailed: opts.Detailed})
	}

	var mu sync.Mutex
	artifacts := make(map[string][]byte, len(opts.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			var data []byte
			var err error

			switch format {
			case FormatJSON:
				data, err = diagram.MarshalLayout(p)
			case FormatDOT:
				data = []byte(source)
			case FormatSVG:
				data, err = dot.RenderSVG(gctx, source)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
