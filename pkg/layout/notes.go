package layout

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/gridlayout/pkg/diagram"
)

// NoteHeight estimates the height of a note box from its text length: the
// text (plus cfg.NoteIconChars for an emoji) is broken into lines of
// cfg.NoteCharsPerLine cells, with half a line of padding above and below.
// The result is never below cfg.NoteHeight.
func NoteHeight(n diagram.Note, cfg Config) float64 {
	chars := runewidth.StringWidth(strings.TrimSpace(n.Text))
	if n.Emoji != "" {
		chars += cfg.NoteIconChars
	}
	lines := max(1, (chars+cfg.NoteCharsPerLine-1)/cfg.NoteCharsPerLine)
	return max(cfg.NoteHeight, float64(lines+1)*cfg.NoteLineHeight)
}

// placeNotes puts attached notes next to their node and stacks floating
// notes below the grid, centered over the occupied columns. Each floating
// note sits cfg.NoteStackStep below the previous one, or further when the
// previous note is taller than the step allows.
func (l *layouter) placeNotes() []diagram.PositionedNote {
	var out []diagram.PositionedNote
	nextY := l.gridBottom() + l.cfg.NoteOffset
	for i, note := range l.graph.Notes {
		w, h := l.cfg.NoteWidth, NoteHeight(note, l.cfg)
		pn := diagram.PositionedNote{
			ID:     l.ids.ID("note", strconv.Itoa(i), note.AttachedTo, note.Text),
			Note:   note,
			Width:  w,
			Height: h,
		}

		if n, ok := l.node(note.AttachedTo); ok {
			pn.X, pn.Y = attachNote(n, note.Position, w, h, l.cfg.NoteOffset)
		} else {
			pn.X = l.cfg.Margin + l.gridWidth()/2 - w/2
			pn.Y = nextY
			nextY += max(l.cfg.NoteStackStep, h+l.cfg.NoteOffset)
		}
		out = append(out, pn)
	}
	return out
}

// attachNote returns the top-left corner of a w×h note placed gap away from
// the given side of n, centered on n along that side.
func attachNote(n *diagram.PositionedNode, pos diagram.NotePosition, w, h, gap float64) (x, y float64) {
	switch pos {
	case diagram.NoteAbove:
		return n.X - w/2, n.Top() - gap - h
	case diagram.NoteLeft:
		return n.Left() - gap - w, n.Y - h/2
	case diagram.NoteRight:
		return n.Right() + gap, n.Y - h/2
	default:
		return n.X - w/2, n.Bottom() + gap
	}
}
