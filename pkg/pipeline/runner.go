package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridlayout/pkg/cache"
	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/layout"
	"github.com/matzehuels/gridlayout/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return r.ExecuteGraph(ctx, g, opts)
}

// ExecuteGraph runs the layout and render stages on an already decoded graph.
func (r *Runner) ExecuteGraph(ctx context.Context, g diagram.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{
		Stats: Stats{NodeCount: len(g.Nodes), ConnectionCount: len(g.Connections)},
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	res, graphHash, layoutHit, err := r.LayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.GraphHash = graphHash
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"nodes", len(res.Graph.Nodes),
		"connections", len(res.Graph.Connections),
		"snake", res.Snake,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)
	for _, d := range res.Diagnostics {
		r.Logger.Warn(d.Message, "code", d.Code, "subject", d.Subject)
	}
	if res.BrokenEdges > 0 {
		r.Logger.Debug("broke cycles for ranking", "edges", res.BrokenEdges)
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res.Graph, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo positions g with caching. It returns the layout, the
// content hash of the input graph and whether the layout came from cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, g diagram.Graph, opts Options) (layout.Result, string, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Result{}, "", false, err
	}

	g = applyDirection(g, opts.Direction)
	graphData, err := diagram.MarshalGraph(g)
	if err != nil {
		return layout.Result{}, "", false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	graphHash := cache.Hash(graphData)
	cfg := opts.LayoutConfig()
	cacheKey := r.Keyer.LayoutKey(graphHash, cache.Hash(cfg.Fingerprint()))

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, string(g.Direction), len(g.Nodes))
	start := time.Now()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := UnmarshalResult(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				hooks.OnLayoutComplete(ctx, string(cached.Graph.Direction), stats(cached, true), time.Since(start), nil)
				return cached, graphHash, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", cacheKey, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	res := GenerateLayout(g, opts)
	hooks.OnLayoutComplete(ctx, string(res.Graph.Direction), stats(res, false), time.Since(start), nil)

	if data, err := MarshalResult(res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return res, graphHash, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and
// discards the hash and cache hit info.
func (r *Runner) Layout(ctx context.Context, g diagram.Graph, opts Options) (layout.Result, error) {
	res, _, _, err := r.LayoutWithCacheInfo(ctx, g, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p diagram.PositionedGraph, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := diagram.MarshalLayout(p)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	hooks := observability.Layout()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	rendered, err := Render(ctx, p, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, p diagram.PositionedGraph, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func stats(r layout.Result, cached bool) observability.LayoutStats {
	return observability.LayoutStats{
		Nodes:       len(r.Graph.Nodes),
		Connections: len(r.Graph.Connections),
		Diagnostics: len(r.Diagnostics),
		BrokenEdges: r.BrokenEdges,
		Crossings:   r.Crossings,
		Snake:       r.Snake,
		Cached:      cached,
	}
}
