package layout

import "github.com/matzehuels/gridlayout/pkg/diagram"

// placeTitle centers the title over the occupied columns at a fixed offset
// below the top margin. It returns nil for an untitled diagram.
func (l *layouter) placeTitle() *diagram.TitleAnchor {
	if l.graph.Title == "" {
		return nil
	}
	return &diagram.TitleAnchor{
		Text: l.graph.Title,
		X:    l.cfg.Margin + l.gridWidth()/2,
		Y:    l.cfg.Margin + l.cfg.TitleOffset,
	}
}
