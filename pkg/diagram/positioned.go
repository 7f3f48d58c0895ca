package diagram

// Point is an absolute canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Side names one edge of a node box.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Vertical reports whether the side is the top or bottom edge.
func (s Side) Vertical() bool { return s == SideTop || s == SideBottom }

// PositionedGraph is a [Graph] after every coordinate and size has been
// resolved. Width and Height give the canvas extent including margins.
type PositionedGraph struct {
	Direction   Direction              `json:"direction"`
	Title       *TitleAnchor           `json:"title,omitempty"`
	Width       float64                `json:"width"`
	Height      float64                `json:"height"`
	Nodes       []PositionedNode       `json:"nodes"`
	Connections []PositionedConnection `json:"connections"`
	Groups      []PositionedGroup      `json:"groups,omitempty"`
	Notes       []PositionedNote       `json:"notes,omitempty"`
}

// TitleAnchor is the center point of the diagram title.
type TitleAnchor struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// PositionedNode is a node with its resolved grid cell and box geometry.
// X and Y are the center of the box.
type PositionedNode struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Label         string     `json:"label"`
	Emoji         string     `json:"emoji,omitempty"`
	Description   string     `json:"description,omitempty"`
	SemanticColor string     `json:"semanticColor,omitempty"`
	Importance    Importance `json:"importance"`

	Rank   int `json:"rank"`
	Row    int `json:"row"`
	Column int `json:"column"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Left returns the x coordinate of the left edge.
func (n *PositionedNode) Left() float64 { return n.X - n.Width/2 }

// Right returns the x coordinate of the right edge.
func (n *PositionedNode) Right() float64 { return n.X + n.Width/2 }

// Top returns the y coordinate of the top edge.
func (n *PositionedNode) Top() float64 { return n.Y - n.Height/2 }

// Bottom returns the y coordinate of the bottom edge.
func (n *PositionedNode) Bottom() float64 { return n.Y + n.Height/2 }

// PositionedConnection carries the resolved endpoints of a connection and the
// orthogonal polyline between them. Points starts at (FromX, FromY) and ends
// at (ToX, ToY).
type PositionedConnection struct {
	ID string `json:"id"`
	Connection

	FromX    float64 `json:"fromX"`
	FromY    float64 `json:"fromY"`
	ToX      float64 `json:"toX"`
	ToY      float64 `json:"toY"`
	FromSide Side    `json:"fromSide"`
	ToSide   Side    `json:"toSide"`
	Points   []Point `json:"points"`
}

// PositionedGroup is a group with its bounding rectangle; X and Y are the
// top-left corner.
type PositionedGroup struct {
	Group

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PositionedNote is a note box; X and Y are the top-left corner.
type PositionedNote struct {
	ID string `json:"id"`
	Note

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node returns the positioned node with the given id.
func (p *PositionedGraph) Node(id string) (PositionedNode, bool) {
	for _, n := range p.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return PositionedNode{}, false
}
