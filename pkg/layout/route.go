package layout

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/gridlayout/pkg/diagram"
)

// loopReach is how far a self-loop bulges out of its node.
const loopReach = 24.0

// fanKey identifies one side of one node. Every endpoint sharing a key is
// spread along that side.
type fanKey struct {
	node string
	side diagram.Side
}

type fanSlot struct {
	conn  int
	exit  bool    // source end of the connection
	other float64 // perpendicular coordinate of the opposite node
}

// routeConnections resolves the endpoints and elbow of every connection.
//
// Each connection first picks an axis and the facing sides of its two boxes.
// Endpoints that share a side of one node (fan-out, fan-in or both) are then
// sorted by the position of the node at the other end and spread evenly over
// cfg.FanSpread of that side, so parallel arrows never coincide.
func (l *layouter) routeConnections() []diagram.PositionedConnection {
	conns := l.graph.Connections
	out := make([]diagram.PositionedConnection, len(conns))

	fans := make(map[fanKey][]fanSlot)
	var order []fanKey
	addSlot := func(key fanKey, slot fanSlot) {
		if _, ok := fans[key]; !ok {
			order = append(order, key)
		}
		fans[key] = append(fans[key], slot)
	}

	for k, c := range conns {
		from, _ := l.node(c.From)
		to, _ := l.node(c.To)
		out[k] = diagram.PositionedConnection{
			ID:         l.ids.ID("connection", c.From, c.To, strconv.Itoa(k)),
			Connection: c,
		}
		if c.IsSelfLoop() {
			routeSelfLoop(&out[k], from)
			continue
		}

		fromSide, toSide := chooseSides(l.graph.Direction, from, to)
		out[k].FromSide, out[k].ToSide = fromSide, toSide
		addSlot(fanKey{c.From, fromSide}, fanSlot{conn: k, exit: true, other: across(to, fromSide)})
		addSlot(fanKey{c.To, toSide}, fanSlot{conn: k, other: across(from, toSide)})
	}

	for _, key := range order {
		slots := fans[key]
		slices.SortStableFunc(slots, func(a, b fanSlot) int { return cmp.Compare(a.other, b.other) })

		n, _ := l.node(key.node)
		extent := n.Height
		if key.side.Vertical() {
			extent = n.Width
		}
		offsets := FanOffsets(len(slots), extent*l.cfg.FanSpread)
		for i, s := range slots {
			x, y := anchor(n, key.side, offsets[i])
			if s.exit {
				out[s.conn].FromX, out[s.conn].FromY = x, y
			} else {
				out[s.conn].ToX, out[s.conn].ToY = x, y
			}
		}
	}

	for k := range out {
		if out[k].Points == nil {
			out[k].Points = elbow(&out[k], l.graph.Direction, l.cfg)
		}
	}
	return out
}

// chooseSides picks the exit side of from and the entry side of to.
//
// Top-to-bottom layouts route vertically unless both centers share a row;
// left-to-right layouts route horizontally unless both centers share a
// column. Radial layouts follow the larger of the two center distances.
func chooseSides(dir diagram.Direction, from, to *diagram.PositionedNode) (diagram.Side, diagram.Side) {
	dx := to.X - from.X
	dy := to.Y - from.Y

	var vertical bool
	switch dir {
	case diagram.DirectionTB:
		vertical = dy != 0
	case diagram.DirectionLR:
		vertical = dx == 0
	default:
		vertical = math.Abs(dy) > math.Abs(dx)
	}

	switch {
	case vertical && dy >= 0:
		return diagram.SideBottom, diagram.SideTop
	case vertical:
		return diagram.SideTop, diagram.SideBottom
	case dx >= 0:
		return diagram.SideRight, diagram.SideLeft
	default:
		return diagram.SideLeft, diagram.SideRight
	}
}

// across returns the coordinate of n perpendicular to the given side:
// x for top and bottom, y for left and right.
func across(n *diagram.PositionedNode, side diagram.Side) float64 {
	if side.Vertical() {
		return n.X
	}
	return n.Y
}

// anchor returns the point on the given side of n, shifted from the side's
// midpoint by offset along the side.
func anchor(n *diagram.PositionedNode, side diagram.Side, offset float64) (x, y float64) {
	switch side {
	case diagram.SideTop:
		return n.X + offset, n.Top()
	case diagram.SideBottom:
		return n.X + offset, n.Bottom()
	case diagram.SideLeft:
		return n.Left(), n.Y + offset
	default:
		return n.Right(), n.Y + offset
	}
}

// FanOffsets spreads n endpoints evenly over a window centered on a side's
// midpoint. A single endpoint sits at the midpoint; otherwise the first and
// last endpoint sit at -window/2 and +window/2.
func FanOffsets(n int, window float64) []float64 {
	if n <= 0 {
		return nil
	}
	offsets := make([]float64, n)
	if n == 1 {
		return offsets
	}
	step := window / float64(n-1)
	for i := range offsets {
		offsets[i] = -window/2 + float64(i)*step
	}
	return offsets
}

// elbow returns the orthogonal polyline of c. Aligned endpoints give a
// straight segment. Otherwise the path turns twice: halfway along the main
// axis, except for vertical top-to-bottom routes, which turn at
// cfg.ElbowRatio of the distance so the horizontal leg runs just below the
// source instead of through the ranks in between.
func elbow(c *diagram.PositionedConnection, dir diagram.Direction, cfg Config) []diagram.Point {
	p := diagram.Point{X: c.FromX, Y: c.FromY}
	q := diagram.Point{X: c.ToX, Y: c.ToY}

	if c.FromSide.Vertical() {
		if aligned(p.X, q.X) {
			return []diagram.Point{p, q}
		}
		ratio := 0.5
		if dir == diagram.DirectionTB {
			ratio = cfg.ElbowRatio
		}
		turn := p.Y + (q.Y-p.Y)*ratio
		return []diagram.Point{p, {X: p.X, Y: turn}, {X: q.X, Y: turn}, q}
	}

	if aligned(p.Y, q.Y) {
		return []diagram.Point{p, q}
	}
	turn := p.X + (q.X-p.X)/2
	return []diagram.Point{p, {X: turn, Y: p.Y}, {X: turn, Y: q.Y}, q}
}

func aligned(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// routeSelfLoop leaves n on the right, loops over its top-right corner and
// enters from the top.
func routeSelfLoop(c *diagram.PositionedConnection, n *diagram.PositionedNode) {
	p := diagram.Point{X: n.Right(), Y: n.Y - n.Height/4}
	q := diagram.Point{X: n.X + n.Width/4, Y: n.Top()}

	c.FromSide, c.ToSide = diagram.SideRight, diagram.SideTop
	c.FromX, c.FromY = p.X, p.Y
	c.ToX, c.ToY = q.X, q.Y
	c.Points = []diagram.Point{
		p,
		{X: p.X + loopReach, Y: p.Y},
		{X: p.X + loopReach, Y: q.Y - loopReach},
		{X: q.X, Y: q.Y - loopReach},
		q,
	}
}
