package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridlayout/pkg/diagram"
)

// pointsPerInch matches Graphviz's inputscale so pos values are canvas units.
const pointsPerInch = 72.0

// Options configures DOT generation.
type Options struct {
	// Detailed adds the node type and grid cell to node labels.
	// When false, only the display label is shown.
	Detailed bool
}

// ToDOT converts a positioned graph to Graphviz DOT source with every
// element pinned at its computed position.
func ToDOT(p diagram.PositionedGraph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  graph [inputscale=%g, splines=ortho, bgcolor=\"transparent\"", pointsPerInch)
	if p.Title != nil {
		fmt.Fprintf(&buf, ", label=%q, labelloc=t", p.Title.Text)
	}
	buf.WriteString("];\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true, fontsize=12];\n")
	buf.WriteString("\n")

	flip := func(y float64) float64 { return p.Height - y }

	for i, g := range p.Groups {
		fmt.Fprintf(&buf, "  %q [%s];\n", fmt.Sprintf("group:%d", i), strings.Join([]string{
			fmt.Sprintf("label=%q", g.Label),
			"style=dashed",
			"labelloc=t",
			box(g.X+g.Width/2, flip(g.Y+g.Height/2), g.Width, g.Height),
		}, ", "))
	}

	for _, n := range p.Nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
			box(n.X, flip(n.Y), n.Width, n.Height),
		}
		if n.Importance == diagram.ImportanceHigh {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	for i, n := range p.Notes {
		text := n.Text
		if n.Emoji != "" {
			text = n.Emoji + " " + text
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", fmt.Sprintf("note:%d", i), strings.Join([]string{
			fmt.Sprintf("label=%q", text),
			"shape=note",
			"style=filled",
			"fillcolor=lightyellow",
			box(n.X+n.Width/2, flip(n.Y+n.Height/2), n.Width, n.Height),
		}, ", "))
	}

	buf.WriteString("\n")
	for _, c := range p.Connections {
		attrs := []string{fmt.Sprintf("id=%q", c.ID)}
		if c.Style == diagram.StyleDashed {
			attrs = append(attrs, "style=dashed")
		}
		if c.Label != "" {
			attrs = append(attrs, fmt.Sprintf("xlabel=%q", c.Label))
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", c.From, c.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n diagram.PositionedNode, detailed bool) string {
	label := n.Label
	if n.Emoji != "" {
		label = n.Emoji + " " + label
	}
	if !detailed {
		return label
	}
	parts := []string{label}
	if n.Type != "" {
		parts = append(parts, n.Type)
	}
	parts = append(parts, fmt.Sprintf("rank %d · cell %d,%d", n.Rank, n.Row, n.Column))
	return strings.Join(parts, "\n")
}

// box returns the pinned position and fixed size attributes of a shape
// centered at (x, y).
func box(x, y, w, h float64) string {
	return fmt.Sprintf("pos=\"%s,%s!\", width=%s, height=%s",
		num(x), num(y), num(w/pointsPerInch), num(h/pointsPerInch))
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// RenderSVG renders DOT source to SVG using the neato engine, which keeps
// pinned positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's fixed-unit svg header with one that
// scales, keeping the original viewBox extent.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
