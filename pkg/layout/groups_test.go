package layout

import (
	"testing"

	"github.com/matzehuels/gridlayout/pkg/diagram"
)

func TestBoundingBox(t *testing.T) {
	cfg := DefaultConfig()
	members := []diagram.PositionedNode{
		{ID: "a", X: 100, Y: 100, Width: 100, Height: 50}, // [50,150]x[75,125]
		{ID: "b", X: 300, Y: 200, Width: 100, Height: 50}, // [250,350]x[175,225]
	}

	r, ok := BoundingBox(members, cfg)
	if !ok {
		t.Fatal("BoundingBox() ok = false")
	}
	want := Rect{X: 30, Y: 31, Width: 340, Height: 214}
	if r != want {
		t.Errorf("BoundingBox() = %+v, want %+v", r, want)
	}

	if left := 50 - r.X; left < cfg.GroupPadding {
		t.Errorf("left padding = %v, want >= %v", left, cfg.GroupPadding)
	}
	if right := r.X + r.Width - 350; right < cfg.GroupPadding {
		t.Errorf("right padding = %v, want >= %v", right, cfg.GroupPadding)
	}
	if bottom := r.Y + r.Height - 225; bottom < cfg.GroupPadding {
		t.Errorf("bottom padding = %v, want >= %v", bottom, cfg.GroupPadding)
	}
	if top := 75 - r.Y; top <= cfg.GroupPadding {
		t.Errorf("top padding = %v, want > %v", top, cfg.GroupPadding)
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	if _, ok := BoundingBox(nil, DefaultConfig()); ok {
		t.Error("BoundingBox(nil) ok = true, want false")
	}
}

func TestBuild_Groups(t *testing.T) {
	g := chainGraph(diagram.DirectionTB, "a", "b", "c")
	g.Groups = []diagram.Group{
		{ID: "backend", Label: "Backend", NodeIDs: []string{"b", "c", "ghost"}},
		{ID: "empty", NodeIDs: []string{"ghost"}},
	}

	p := Build(g).Graph

	if len(p.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(p.Groups))
	}
	grp := p.Groups[0]
	if grp.ID != "backend" || len(grp.NodeIDs) != 2 {
		t.Errorf("group = %+v", grp.Group)
	}
	for _, id := range grp.NodeIDs {
		n := mustNode(t, p, id)
		if n.Left() < grp.X || n.Right() > grp.X+grp.Width || n.Top() < grp.Y || n.Bottom() > grp.Y+grp.Height {
			t.Errorf("node %s not inside group rectangle %+v", id, grp)
		}
	}
}
