package diagram

import "strings"

// =============================================================================
// Enumerations
// =============================================================================

// Direction selects the layout mode.
type Direction string

const (
	DirectionTB     Direction = "TB"     // ranks flow top to bottom
	DirectionLR     Direction = "LR"     // ranks flow left to right; linear chains wrap
	DirectionRadial Direction = "radial" // ranks form concentric rings
)

// ParseDirection maps user input to a Direction. Matching is case-insensitive
// and accepts "TD" as an alias of "TB". The second result is false for
// unknown values.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TB", "TD":
		return DirectionTB, true
	case "LR":
		return DirectionLR, true
	case "RADIAL":
		return DirectionRadial, true
	}
	return DirectionTB, false
}

// Importance is the ordinal size tier of a node.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Style is the stroke style of a connection.
type Style string

const (
	StyleSolid  Style = "solid"
	StyleDashed Style = "dashed"
)

// NotePosition places an attached note relative to its node.
type NotePosition string

const (
	NoteLeft  NotePosition = "left"
	NoteRight NotePosition = "right"
	NoteAbove NotePosition = "above"
	NoteBelow NotePosition = "below"
)

// =============================================================================
// Graph - Semantic Input
// =============================================================================

// Graph is the coordinate-free diagram description produced once per
// generation or refinement round.
type Graph struct {
	Direction   Direction    `json:"direction"`
	Title       string       `json:"title,omitempty"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
	Groups      []Group      `json:"groups,omitempty"`
	Notes       []Note       `json:"notes,omitempty"`
}

// Node is a typed diagram box. Row and Column are optional placement hints;
// when set they are authoritative and override automatic ranking.
type Node struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Label         string     `json:"label"`
	Emoji         string     `json:"emoji,omitempty"`
	Description   string     `json:"description,omitempty"`
	SemanticColor string     `json:"semanticColor,omitempty"`
	Importance    Importance `json:"importance,omitempty"`
	Row           *int       `json:"row,omitempty"`
	Column        *int       `json:"column,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if strings.TrimSpace(n.Label) != "" {
		return n.Label
	}
	return n.ID
}

// Connection is a directed edge between two nodes.
type Connection struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Style         Style  `json:"style"`
	Label         string `json:"label,omitempty"`
	SemanticColor string `json:"semanticColor,omitempty"`
}

// IsSelfLoop reports whether the connection starts and ends on the same node.
func (c *Connection) IsSelfLoop() bool { return c.From == c.To }

// Group is a named subset of nodes drawn inside one enclosing rectangle.
type Group struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	NodeIDs       []string `json:"nodeIds"`
	SemanticColor string   `json:"semanticColor,omitempty"`
}

// Note is a free-text annotation, optionally attached to a node.
type Note struct {
	Text       string       `json:"text"`
	Emoji      string       `json:"emoji,omitempty"`
	AttachedTo string       `json:"attachedTo,omitempty"`
	Position   NotePosition `json:"position,omitempty"`
}

// IntPtr returns a pointer to v. It is a convenience for setting hints.
func IntPtr(v int) *int { return &v }
