package layout

import "github.com/matzehuels/gridlayout/pkg/diagram"

// Rect is an axis-aligned rectangle; X and Y are the top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// BoundingBox returns the rectangle enclosing every member box, inflated by
// cfg.GroupPadding on each side plus cfg.GroupLabelHeight on top.
// It reports false when members is empty; such a group must be dropped.
func BoundingBox(members []diagram.PositionedNode, cfg Config) (Rect, bool) {
	if len(members) == 0 {
		return Rect{}, false
	}
	minX, minY := members[0].Left(), members[0].Top()
	maxX, maxY := members[0].Right(), members[0].Bottom()
	for i := range members[1:] {
		m := &members[i+1]
		minX = min(minX, m.Left())
		minY = min(minY, m.Top())
		maxX = max(maxX, m.Right())
		maxY = max(maxY, m.Bottom())
	}

	pad := cfg.GroupPadding
	return Rect{
		X:      minX - pad,
		Y:      minY - pad - cfg.GroupLabelHeight,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad + cfg.GroupLabelHeight,
	}, true
}

func (l *layouter) placeGroups() []diagram.PositionedGroup {
	var out []diagram.PositionedGroup
	for _, g := range l.graph.Groups {
		members := make([]diagram.PositionedNode, 0, len(g.NodeIDs))
		for _, id := range g.NodeIDs {
			if n, ok := l.node(id); ok {
				members = append(members, *n)
			}
		}
		r, ok := BoundingBox(members, l.cfg)
		if !ok {
			continue
		}
		out = append(out, diagram.PositionedGroup{
			Group:  g,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}
	return out
}
