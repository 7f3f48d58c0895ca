package layout

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
)

func chainGraph(dir diagram.Direction, ids ...string) diagram.Graph {
	g := diagram.Graph{Direction: dir}
	for i, id := range ids {
		g.Nodes = append(g.Nodes, diagram.Node{ID: id, Label: id})
		if i > 0 {
			g.Connections = append(g.Connections, diagram.Connection{From: ids[i-1], To: id})
		}
	}
	return g
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func mustNode(t *testing.T, p diagram.PositionedGraph, id string) diagram.PositionedNode {
	t.Helper()
	n, ok := p.Node(id)
	if !ok {
		t.Fatalf("node %q missing from layout", id)
	}
	return n
}

func TestBuild_EndToEnd(t *testing.T) {
	g := diagram.Graph{
		Direction: diagram.DirectionTB,
		Nodes: []diagram.Node{
			{ID: "a", Type: "service", Label: "API"},
			{ID: "b", Type: "database", Label: "DB"},
		},
		Connections: []diagram.Connection{{From: "a", To: "b", Style: diagram.StyleSolid}},
	}

	res := Build(g)
	p := res.Graph

	a := mustNode(t, p, "a")
	b := mustNode(t, p, "b")
	if a.Rank != 0 || a.Row != 0 || a.Column != 0 {
		t.Errorf("a = rank %d row %d col %d, want 0/0/0", a.Rank, a.Row, a.Column)
	}
	if b.Rank != 1 || b.Row != 1 || b.Column != 0 {
		t.Errorf("b = rank %d row %d col %d, want 1/1/0", b.Rank, b.Row, b.Column)
	}
	if a.X != 150 || a.Y != 110 || b.Y != 250 {
		t.Errorf("centers = a(%v,%v) b.Y=%v, want a(150,110) b.Y=250", a.X, a.Y, b.Y)
	}

	if len(p.Connections) != 1 {
		t.Fatalf("connections = %d, want 1", len(p.Connections))
	}
	c := p.Connections[0]
	if c.FromY != a.Bottom() {
		t.Errorf("FromY = %v, want bottom of a %v", c.FromY, a.Bottom())
	}
	if c.ToY != b.Top() {
		t.Errorf("ToY = %v, want top of b %v", c.ToY, b.Top())
	}
	if c.FromSide != diagram.SideBottom || c.ToSide != diagram.SideTop {
		t.Errorf("sides = %s→%s, want bottom→top", c.FromSide, c.ToSide)
	}
	want := []diagram.Point{{X: 150, Y: 142}, {X: 150, Y: 218}}
	if diff := gocmp.Diff(want, c.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v, want none", res.Diagnostics)
	}
}

func TestBuild_DropsDanglingConnections(t *testing.T) {
	g := chainGraph(diagram.DirectionTB, "a", "b", "c")
	g.Connections = append(g.Connections,
		diagram.Connection{From: "a", To: "ghost"},
		diagram.Connection{From: "nobody", To: "c"},
	)

	res := Build(g)

	if got, want := len(res.Graph.Nodes), 3; got != want {
		t.Errorf("nodes = %d, want %d", got, want)
	}
	if got, want := len(res.Graph.Connections), len(g.Connections)-2; got != want {
		t.Errorf("connections = %d, want %d", got, want)
	}
	for _, c := range res.Graph.Connections {
		if _, ok := res.Graph.Node(c.From); !ok {
			t.Errorf("connection %s references missing source %q", c.ID, c.From)
		}
		if _, ok := res.Graph.Node(c.To); !ok {
			t.Errorf("connection %s references missing target %q", c.ID, c.To)
		}
	}
	refs := 0
	for _, d := range res.Diagnostics {
		if d.Code == errors.ErrCodeInvalidReference {
			refs++
		}
	}
	if refs != 2 {
		t.Errorf("INVALID_REFERENCE diagnostics = %d, want 2", refs)
	}
}

func TestBuild_RankMonotonic(t *testing.T) {
	g := diagram.Graph{Direction: diagram.DirectionTB}
	for _, id := range []string{"api", "auth", "cache", "db", "queue", "worker"} {
		g.Nodes = append(g.Nodes, diagram.Node{ID: id})
	}
	edges := [][2]string{
		{"api", "auth"}, {"api", "cache"}, {"auth", "db"}, {"cache", "db"},
		{"api", "queue"}, {"queue", "worker"}, {"worker", "db"},
	}
	for _, e := range edges {
		g.Connections = append(g.Connections, diagram.Connection{From: e[0], To: e[1]})
	}

	p := Build(g).Graph
	for _, e := range edges {
		u, v := mustNode(t, p, e[0]), mustNode(t, p, e[1])
		if u.Rank >= v.Rank {
			t.Errorf("rank(%s)=%d not below rank(%s)=%d", e[0], u.Rank, e[1], v.Rank)
		}
		if u.Row >= v.Row {
			t.Errorf("row(%s)=%d not above row(%s)=%d", e[0], u.Row, e[1], v.Row)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	g := chainGraph(diagram.DirectionLR, "a", "b", "c", "d")
	g.Nodes = append(g.Nodes, diagram.Node{ID: "e"})
	g.Connections = append(g.Connections, diagram.Connection{From: "a", To: "e"})
	g.Groups = []diagram.Group{{ID: "g", NodeIDs: []string{"a", "e"}}}
	g.Notes = []diagram.Note{{Text: "hello", AttachedTo: "b"}, {Text: "floating"}}
	g.Title = "T"

	first := Build(g)
	second := Build(g)
	if diff := gocmp.Diff(first, second); diff != "" {
		t.Errorf("Build not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	g := chainGraph(diagram.DirectionLR, "a", "b")
	g.Nodes[0].Row = diagram.IntPtr(3)
	g.Groups = []diagram.Group{{ID: "g", NodeIDs: []string{"a", "missing"}}}
	g.Notes = []diagram.Note{{Text: "x", AttachedTo: "missing", Position: "diagonal"}}

	before, err := diagram.MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	_ = Build(g)
	after, err := diagram.MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	if diff := gocmp.Diff(string(before), string(after)); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestBuild_HintsPreserved(t *testing.T) {
	for _, dir := range []diagram.Direction{diagram.DirectionTB, diagram.DirectionLR, diagram.DirectionRadial} {
		t.Run(string(dir), func(t *testing.T) {
			g := chainGraph(dir, "a", "b", "c", "d")
			g.Nodes[1].Row = diagram.IntPtr(5)
			g.Nodes[1].Column = diagram.IntPtr(7)
			g.Nodes[2].Column = diagram.IntPtr(9)

			p := Build(g).Graph

			b := mustNode(t, p, "b")
			if b.Row != 5 || b.Column != 7 {
				t.Errorf("b = (%d,%d), want hinted (5,7)", b.Row, b.Column)
			}
			x, y := DefaultConfig().CellCenter(5, 7, 0)
			if b.X != x || b.Y != y {
				t.Errorf("b center = (%v,%v), want (%v,%v)", b.X, b.Y, x, y)
			}
			if c := mustNode(t, p, "c"); c.Column != 9 {
				t.Errorf("c column = %d, want hinted 9", c.Column)
			}
		})
	}
}

func TestBuild_NegativeHints(t *testing.T) {
	g := chainGraph(diagram.DirectionTB, "a", "b")
	g.Title = "Checkout"
	g.Nodes[0].Column = diagram.IntPtr(-2)
	g.Notes = []diagram.Note{{Text: "floating"}}

	res := Build(g)
	p := res.Graph
	cfg := DefaultConfig()
	a, b := mustNode(t, p, "a"), mustNode(t, p, "b")

	if a.Column != -2 {
		t.Errorf("a column = %d, want hinted -2", a.Column)
	}
	// Columns -2..0 are occupied, so column -2 is the first on the canvas.
	if want := cfg.Margin + cfg.CellWidth/2; a.X != want {
		t.Errorf("a.X = %v, want %v", a.X, want)
	}
	if want := a.X + 2*cfg.CellWidth; b.X != want {
		t.Errorf("b.X = %v, want %v", b.X, want)
	}
	for _, n := range p.Nodes {
		if n.Left() < 0 || n.Right() > p.Width || n.Top() < 0 || n.Bottom() > p.Height {
			t.Errorf("node %s [%v,%v]x[%v,%v] outside canvas %vx%v", n.ID, n.Left(), n.Right(), n.Top(), n.Bottom(), p.Width, p.Height)
		}
	}
	if want := cfg.Margin + 3*cfg.CellWidth/2; p.Title.X != want {
		t.Errorf("title x = %v, want %v centered over three columns", p.Title.X, want)
	}
	if note := p.Notes[0]; note.X+note.Width/2 != p.Title.X {
		t.Errorf("floating note center = %v, want %v", note.X+note.Width/2, p.Title.X)
	}
}

func TestBuild_ExtremeHints(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"LargePositive", 0, 1 << 61},
		{"LargeNegative", 1, -(1 << 61)},
		{"IntRange", math.MaxInt, math.MinInt},
	}
	for _, tt := range tests {
		for _, dir := range []diagram.Direction{diagram.DirectionTB, diagram.DirectionLR} {
			t.Run(tt.name+"/"+string(dir), func(t *testing.T) {
				g := chainGraph(dir, "a", "b", "c")
				g.Nodes[1].Row = diagram.IntPtr(tt.row)
				g.Nodes[1].Column = diagram.IntPtr(tt.col)

				res := Build(g)

				b := mustNode(t, res.Graph, "b")
				if b.Row != tt.row || b.Column != tt.col {
					t.Errorf("b = (%d,%d), want hinted (%d,%d)", b.Row, b.Column, tt.row, tt.col)
				}
				if b.Left() < 0 || b.Top() < 0 {
					t.Errorf("b top-left = (%v,%v), want non-negative", b.Left(), b.Top())
				}
				if len(res.Graph.Connections) != 2 {
					t.Errorf("connections = %d, want 2", len(res.Graph.Connections))
				}
			})
		}
	}
}

func TestBuild_Crossings(t *testing.T) {
	g := diagram.Graph{
		Nodes: []diagram.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		Connections: []diagram.Connection{
			{From: "a", To: "d"},
			{From: "b", To: "c"},
		},
	}

	// Encounter order puts d under a and c under b.
	if got := Build(g).Crossings; got != 0 {
		t.Errorf("Crossings = %d, want 0", got)
	}

	g.Nodes[2].Column = diagram.IntPtr(0)
	g.Nodes[3].Column = diagram.IntPtr(1)
	if got := Build(g).Crossings; got != 1 {
		t.Errorf("Crossings with swapped hints = %d, want 1", got)
	}

	g.Direction = diagram.DirectionRadial
	if got := Build(g).Crossings; got != 0 {
		t.Errorf("radial Crossings = %d, want 0", got)
	}
}

func TestBuild_SnakeLayout(t *testing.T) {
	ids := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	res := Build(chainGraph(diagram.DirectionLR, ids...))

	if !res.Snake {
		t.Fatal("Snake = false, want true for an 8-node chain")
	}
	var rows, cols []int
	for _, id := range ids {
		n := mustNode(t, res.Graph, id)
		rows = append(rows, n.Row)
		cols = append(cols, n.Column)
	}
	if diff := gocmp.Diff([]int{0, 0, 0, 0, 1, 1, 1, 1}, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff([]int{0, 1, 2, 3, 3, 2, 1, 0}, cols); diff != "" {
		t.Errorf("cols mismatch (-want +got):\n%s", diff)
	}

	// D→E crosses the row break and must leave downward.
	for _, c := range res.Graph.Connections {
		if c.From == "D" && (c.FromSide != diagram.SideBottom || c.ToSide != diagram.SideTop) {
			t.Errorf("D→E sides = %s→%s, want bottom→top", c.FromSide, c.ToSide)
		}
	}
}

func TestBuild_SnakeFallback(t *testing.T) {
	tests := []struct {
		name string
		g    diagram.Graph
	}{
		{
			name: "TopToBottom",
			g:    chainGraph(diagram.DirectionTB, "a", "b", "c", "d", "e"),
		},
		{
			name: "Branching",
			g: func() diagram.Graph {
				g := chainGraph(diagram.DirectionLR, "a", "b", "c", "d", "e")
				g.Connections = append(g.Connections, diagram.Connection{From: "a", To: "c"})
				return g
			}(),
		},
		{
			name: "LowCoverage",
			g: func() diagram.Graph {
				g := chainGraph(diagram.DirectionLR, "a", "b", "c")
				g.Nodes = append(g.Nodes, diagram.Node{ID: "x"}, diagram.Node{ID: "y"})
				return g
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Build(tt.g)
			if res.Snake {
				t.Error("Snake = true, want rank-based placement")
			}
		})
	}
}

func TestBuild_SnakeShortChain(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	p := Build(chainGraph(diagram.DirectionLR, ids...)).Graph

	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {1, 1}}
	for i, id := range ids {
		n := mustNode(t, p, id)
		if got := [2]int{n.Row, n.Column}; got != want[i] {
			t.Errorf("%s cell = %v, want %v", id, got, want[i])
		}
	}
}

func TestBuild_FanOutSpreading(t *testing.T) {
	g := diagram.Graph{
		Direction: diagram.DirectionTB,
		Nodes:     []diagram.Node{{ID: "s"}, {ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
		Connections: []diagram.Connection{
			{From: "s", To: "t3"},
			{From: "s", To: "t1"},
			{From: "s", To: "t2"},
		},
	}
	p := Build(g).Graph
	s := mustNode(t, p, "s")

	type exit struct{ targetX, offset float64 }
	var exits []exit
	for _, c := range p.Connections {
		if c.FromY != s.Bottom() {
			t.Errorf("%s→%s FromY = %v, want bottom %v", c.From, c.To, c.FromY, s.Bottom())
		}
		exits = append(exits, exit{mustNode(t, p, c.To).X, c.FromX - s.X})
	}
	slices.SortFunc(exits, func(a, b exit) int { return cmp.Compare(a.targetX, b.targetX) })

	w := exits[2].offset
	if w <= 0 {
		t.Fatalf("rightmost offset = %v, want > 0", w)
	}
	if !near(exits[1].offset, 0) || !near(exits[0].offset, -w) {
		t.Errorf("offsets = %v, %v, %v, want -w, 0, +w", exits[0].offset, exits[1].offset, w)
	}
	if want := s.Width * DefaultConfig().FanSpread / 2; !near(w, want) {
		t.Errorf("spread = %v, want %v", w, want)
	}
}

func TestBuild_FanInSpreading(t *testing.T) {
	g := diagram.Graph{
		Direction: diagram.DirectionLR,
		Nodes:     []diagram.Node{{ID: "a"}, {ID: "b"}, {ID: "sink"}},
		Connections: []diagram.Connection{
			{From: "a", To: "sink"},
			{From: "b", To: "sink"},
		},
	}
	p := Build(g).Graph
	sink := mustNode(t, p, "sink")

	var entries []float64
	for _, c := range p.Connections {
		if c.ToSide != diagram.SideLeft || c.ToX != sink.Left() {
			t.Errorf("%s→sink enters %s at x=%v, want left edge %v", c.From, c.ToSide, c.ToX, sink.Left())
		}
		entries = append(entries, c.ToY-sink.Y)
	}
	if len(entries) != 2 || entries[0] >= entries[1] || !near(entries[0], -entries[1]) {
		t.Errorf("entry offsets = %v, want symmetric and ordered by source row", entries)
	}
}

func TestBuild_ElbowPaths(t *testing.T) {
	g := diagram.Graph{
		Direction: diagram.DirectionTB,
		Nodes: []diagram.Node{
			{ID: "a"}, {ID: "b", Row: diagram.IntPtr(2), Column: diagram.IntPtr(2)},
		},
		Connections: []diagram.Connection{{From: "a", To: "b"}},
	}
	c := Build(g).Graph.Connections[0]

	if len(c.Points) != 4 {
		t.Fatalf("points = %v, want a 4-point elbow", c.Points)
	}
	turn := c.FromY + (c.ToY-c.FromY)*DefaultConfig().ElbowRatio
	if c.Points[1].Y != turn || c.Points[2].Y != turn {
		t.Errorf("turn y = %v/%v, want %v", c.Points[1].Y, c.Points[2].Y, turn)
	}
	if c.Points[1].X != c.FromX || c.Points[2].X != c.ToX {
		t.Errorf("legs not orthogonal: %v", c.Points)
	}

	g.Direction = diagram.DirectionLR
	c = Build(g).Graph.Connections[0]
	mid := (c.FromX + c.ToX) / 2
	if len(c.Points) != 4 || !near(c.Points[1].X, mid) || !near(c.Points[2].X, mid) {
		t.Errorf("LR elbow = %v, want turn at x=%v", c.Points, mid)
	}
}

func TestBuild_CyclesAreBroken(t *testing.T) {
	g := chainGraph(diagram.DirectionTB, "a", "b", "c")
	g.Connections = append(g.Connections, diagram.Connection{From: "c", To: "a"})

	res := Build(g)

	if res.BrokenEdges != 1 {
		t.Errorf("BrokenEdges = %d, want 1", res.BrokenEdges)
	}
	if len(res.Graph.Connections) != 3 {
		t.Errorf("connections = %d, want all 3 routed", len(res.Graph.Connections))
	}
	for i, id := range []string{"a", "b", "c"} {
		if n := mustNode(t, res.Graph, id); n.Row != i {
			t.Errorf("%s row = %d, want %d", id, n.Row, i)
		}
	}
	back := res.Graph.Connections[2]
	if back.FromSide != diagram.SideTop || back.ToSide != diagram.SideBottom {
		t.Errorf("back edge sides = %s→%s, want top→bottom", back.FromSide, back.ToSide)
	}
}

func TestBuild_SelfLoop(t *testing.T) {
	g := diagram.Graph{
		Nodes:       []diagram.Node{{ID: "a"}},
		Connections: []diagram.Connection{{From: "a", To: "a"}},
	}
	res := Build(g)
	a := mustNode(t, res.Graph, "a")
	c := res.Graph.Connections[0]

	if c.FromSide != diagram.SideRight || c.ToSide != diagram.SideTop {
		t.Errorf("sides = %s→%s, want right→top", c.FromSide, c.ToSide)
	}
	if c.FromX != a.Right() || c.ToY != a.Top() {
		t.Errorf("endpoints = (%v,%v)→(%v,%v)", c.FromX, c.FromY, c.ToX, c.ToY)
	}
	if len(c.Points) != 5 {
		t.Errorf("points = %d, want 5", len(c.Points))
	}
	if res.BrokenEdges != 1 {
		t.Errorf("BrokenEdges = %d, want 1", res.BrokenEdges)
	}
}

func TestBuild_Radial(t *testing.T) {
	g := diagram.Graph{
		Direction: diagram.DirectionRadial,
		Nodes:     []diagram.Node{{ID: "hub"}, {ID: "e"}, {ID: "s"}, {ID: "w"}, {ID: "n"}},
	}
	for _, id := range []string{"e", "s", "w", "n"} {
		g.Connections = append(g.Connections, diagram.Connection{From: "hub", To: id})
	}
	p := Build(g).Graph

	want := map[string][2]int{
		"hub": {1, 1},
		"e":   {1, 2},
		"s":   {2, 1},
		"w":   {1, 0},
		"n":   {0, 1},
	}
	for id, cell := range want {
		n := mustNode(t, p, id)
		if got := [2]int{n.Row, n.Column}; got != cell {
			t.Errorf("%s cell = %v, want %v", id, got, cell)
		}
	}
}

func TestBuild_TitleAndHeader(t *testing.T) {
	g := chainGraph(diagram.DirectionLR, "a", "b")
	g.Title = "  Checkout  "

	p := Build(g).Graph

	if p.Title == nil {
		t.Fatal("Title = nil, want anchor")
	}
	if p.Title.Text != "Checkout" {
		t.Errorf("Title.Text = %q, want Checkout", p.Title.Text)
	}
	cfg := DefaultConfig()
	if want := cfg.Margin + 2*cfg.CellWidth/2; p.Title.X != want {
		t.Errorf("Title.X = %v, want %v", p.Title.X, want)
	}
	if want := cfg.Margin + cfg.TitleOffset; p.Title.Y != want {
		t.Errorf("Title.Y = %v, want %v", p.Title.Y, want)
	}
	if a := mustNode(t, p, "a"); a.Y != cfg.Margin+cfg.HeaderOffset+cfg.CellHeight/2 {
		t.Errorf("a.Y = %v, want header applied", a.Y)
	}

	g.Title = ""
	p = Build(g).Graph
	if p.Title != nil {
		t.Errorf("Title = %+v, want nil", p.Title)
	}
	if a := mustNode(t, p, "a"); a.Y != cfg.Margin+cfg.CellHeight/2 {
		t.Errorf("a.Y = %v, want no header", a.Y)
	}
}

func TestBuild_Canvas(t *testing.T) {
	g := chainGraph(diagram.DirectionTB, "a", "b")
	g.Notes = []diagram.Note{{Text: "side", AttachedTo: "b", Position: diagram.NoteRight}}

	p := Build(g).Graph

	for _, n := range p.Nodes {
		if n.Right() > p.Width || n.Bottom() > p.Height {
			t.Errorf("node %s exceeds canvas %vx%v", n.ID, p.Width, p.Height)
		}
	}
	note := p.Notes[0]
	if note.X+note.Width > p.Width {
		t.Errorf("note right %v exceeds canvas width %v", note.X+note.Width, p.Width)
	}
}

func TestBuild_InvalidConfigFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellWidth = 0

	res := Build(chainGraph(diagram.DirectionTB, "a"), WithConfig(cfg))

	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Code != errors.ErrCodeInvalidConfig {
		t.Fatalf("diagnostics = %v, want one INVALID_CONFIG", res.Diagnostics)
	}
	if a := mustNode(t, res.Graph, "a"); a.X != 150 {
		t.Errorf("a.X = %v, want default geometry 150", a.X)
	}
}

func TestBuild_CustomConfigAndIDs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellWidth = 300
	cfg.Margin = 0

	res := Build(chainGraph(diagram.DirectionLR, "a", "b"),
		WithConfig(cfg),
		WithIDSource(countingIDs{}),
	)

	if b := mustNode(t, res.Graph, "b"); b.X != 450 {
		t.Errorf("b.X = %v, want 450", b.X)
	}
	if id := res.Graph.Connections[0].ID; id != "connection-3" {
		t.Errorf("connection id = %q, want connection-3", id)
	}
}

type countingIDs struct{}

func (countingIDs) ID(kind string, parts ...string) string {
	return fmt.Sprintf("%s-%d", kind, len(parts))
}

func TestBuild_Empty(t *testing.T) {
	res := Build(diagram.Graph{})
	p := res.Graph
	if len(p.Nodes) != 0 || len(p.Connections) != 0 {
		t.Errorf("empty graph produced %d nodes, %d connections", len(p.Nodes), len(p.Connections))
	}
	cfg := DefaultConfig()
	if p.Width != 2*cfg.Margin || p.Height != 2*cfg.Margin {
		t.Errorf("canvas = %vx%v, want margins only", p.Width, p.Height)
	}
}

// chainGraphWithStrays returns a left-to-right chain of n nodes plus k
// unconnected nodes.
func chainGraphWithStrays(n, k int) diagram.Graph {
	var ids []string
	for i := range n {
		ids = append(ids, fmt.Sprintf("c%d", i))
	}
	g := chainGraph(diagram.DirectionLR, ids...)
	for i := range k {
		g.Nodes = append(g.Nodes, diagram.Node{ID: fmt.Sprintf("stray%d", i)})
	}
	return g
}
