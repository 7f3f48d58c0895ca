package layout

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridlayout/pkg/diagram"
)

func TestNoteHeight(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		note diagram.Note
		want float64
	}{
		{"Short", diagram.Note{Text: "cached"}, 60},
		{"FourLines", diagram.Note{Text: strings.Repeat("x", 94)}, 80},
		{"IconAddsLine", diagram.Note{Text: strings.Repeat("x", 94), Emoji: "💡"}, 96},
		{"SurroundingSpaceIgnored", diagram.Note{Text: "   " + strings.Repeat("y", 72) + "   "}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoteHeight(tt.note, cfg); got != tt.want {
				t.Errorf("NoteHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuild_Notes(t *testing.T) {
	g := diagram.Graph{
		Nodes: []diagram.Node{{ID: "a"}},
		Notes: []diagram.Note{
			{Text: "right of a", AttachedTo: "a", Position: diagram.NoteRight},
			{Text: "first floating"},
			{Text: "   "},
			{Text: "dangling", AttachedTo: "ghost"},
			{Text: "above a", AttachedTo: "a", Position: diagram.NoteAbove},
		},
	}

	p := Build(g).Graph
	a := mustNode(t, p, "a")
	cfg := DefaultConfig()

	if len(p.Notes) != 4 {
		t.Fatalf("notes = %d, want 4 (blank dropped)", len(p.Notes))
	}
	right := p.Notes[0]
	if right.X != a.Right()+cfg.NoteOffset || right.Y != a.Y-right.Height/2 {
		t.Errorf("right note at (%v,%v), want (%v,%v)", right.X, right.Y, a.Right()+cfg.NoteOffset, a.Y-right.Height/2)
	}

	// Both floating notes stack below the single row, centered over it.
	first, second := p.Notes[1], p.Notes[2]
	wantX := cfg.Margin + cfg.CellWidth/2 - cfg.NoteWidth/2
	wantY := cfg.Margin + cfg.CellHeight + cfg.NoteOffset
	if first.X != wantX || first.Y != wantY {
		t.Errorf("first floating note at (%v,%v), want (%v,%v)", first.X, first.Y, wantX, wantY)
	}
	if second.X != wantX || second.Y != wantY+cfg.NoteStackStep {
		t.Errorf("second floating note at (%v,%v), want (%v,%v)", second.X, second.Y, wantX, wantY+cfg.NoteStackStep)
	}
	if second.AttachedTo != "" {
		t.Errorf("dangling note still attached to %q", second.AttachedTo)
	}

	above := p.Notes[3]
	if above.Y+above.Height != a.Top()-cfg.NoteOffset || above.X+above.Width/2 != a.X {
		t.Errorf("above note = %+v, want centered above a", above)
	}

	if first.ID == "" || first.ID == second.ID {
		t.Errorf("note ids = %q, %q, want distinct", first.ID, second.ID)
	}
}

func TestBuild_TallFloatingNotesDoNotOverlap(t *testing.T) {
	g := diagram.Graph{
		Nodes: []diagram.Node{{ID: "a"}},
		Notes: []diagram.Note{
			{Text: strings.Repeat("x", 94)}, // four lines, 80 high
			{Text: "short"},
			{Text: "last"},
		},
	}

	notes := Build(g).Graph.Notes
	cfg := DefaultConfig()
	if len(notes) != 3 {
		t.Fatalf("notes = %d, want 3", len(notes))
	}
	for i := 1; i < len(notes); i++ {
		prev, cur := notes[i-1], notes[i]
		if cur.Y < prev.Y+prev.Height+cfg.NoteOffset {
			t.Errorf("note %d top %v overlaps note %d ending at %v", i, cur.Y, i-1, prev.Y+prev.Height)
		}
	}
	if got, want := notes[1].Y-notes[0].Y, notes[0].Height+cfg.NoteOffset; got != want {
		t.Errorf("gap after tall note = %v, want %v", got, want)
	}
	if got := notes[2].Y - notes[1].Y; got != cfg.NoteStackStep {
		t.Errorf("gap after short note = %v, want %v", got, cfg.NoteStackStep)
	}
}

func TestAttachNote(t *testing.T) {
	n := &diagram.PositionedNode{X: 200, Y: 100, Width: 100, Height: 40} // [150,250]x[80,120]
	tests := []struct {
		pos  diagram.NotePosition
		x, y float64
	}{
		{diagram.NoteBelow, 170, 130},
		{diagram.NoteAbove, 170, 10},
		{diagram.NoteLeft, 80, 70},
		{diagram.NoteRight, 260, 70},
	}
	for _, tt := range tests {
		x, y := attachNote(n, tt.pos, 60, 60, 10)
		if x != tt.x || y != tt.y {
			t.Errorf("attachNote(%s) = (%v,%v), want (%v,%v)", tt.pos, x, y, tt.x, tt.y)
		}
	}
}
