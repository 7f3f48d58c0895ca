package diagram

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gridlayout/pkg/errors"
)

// Diagnostic describes one recoverable problem found in a layout input.
// Subject identifies the offending element, e.g. "connection[3]" or "group:g1".
type Diagnostic struct {
	Code    errors.Code `json:"code"`
	Subject string      `json:"subject"`
	Message string      `json:"message"`
}

// Err converts the diagnostic into a structured error.
func (d Diagnostic) Err() error {
	return errors.New(d.Code, "%s: %s", d.Subject, d.Message)
}

// String formats the diagnostic for logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Code, d.Subject, d.Message)
}

// diagnostics accumulates findings in input order.
type diagnostics []Diagnostic

func (ds *diagnostics) add(code errors.Code, subject, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Code: code, Subject: subject, Message: fmt.Sprintf(format, args...)})
}

// Sanitize returns a deep copy of g with every structurally invalid element
// removed or normalized, plus one diagnostic per change. The input graph is
// never modified.
//
// Rules, applied in order:
//   - Unknown direction falls back to TB; an empty direction does so silently.
//   - Nodes with an invalid id are dropped; later duplicates of an id are dropped.
//   - Unknown importance becomes medium.
//   - Connections referencing a missing node are dropped; unknown style becomes solid.
//   - Group members are filtered to existing, distinct ids; a group left empty is dropped.
//   - Notes with blank text are dropped; dangling attachments float; unknown
//     positions become below.
func Sanitize(g Graph) (Graph, []Diagnostic) {
	var diags diagnostics
	out := Graph{Title: strings.TrimSpace(g.Title)}

	out.Direction = sanitizeDirection(g.Direction, &diags)

	known := make(map[string]bool, len(g.Nodes))
	out.Nodes = make([]Node, 0, len(g.Nodes))
	for i, n := range g.Nodes {
		subject := fmt.Sprintf("node[%d]", i)
		if err := errors.ValidateNodeID(n.ID); err != nil {
			diags.add(errors.ErrCodeInvalidInput, subject, "%s", errors.UserMessage(err))
			continue
		}
		if known[n.ID] {
			diags.add(errors.ErrCodeDuplicateNode, subject, "duplicate node id %q dropped", n.ID)
			continue
		}
		known[n.ID] = true
		out.Nodes = append(out.Nodes, copyNode(n, subject, &diags))
	}

	out.Connections = make([]Connection, 0, len(g.Connections))
	for i, c := range g.Connections {
		subject := fmt.Sprintf("connection[%d]", i)
		if !known[c.From] {
			diags.add(errors.ErrCodeInvalidReference, subject, "unknown source node %q", c.From)
			continue
		}
		if !known[c.To] {
			diags.add(errors.ErrCodeInvalidReference, subject, "unknown target node %q", c.To)
			continue
		}
		switch c.Style {
		case StyleSolid, StyleDashed:
		case "":
			c.Style = StyleSolid
		default:
			diags.add(errors.ErrCodeInvalidInput, subject, "unknown style %q, using solid", c.Style)
			c.Style = StyleSolid
		}
		out.Connections = append(out.Connections, c)
	}

	for i, grp := range g.Groups {
		subject := fmt.Sprintf("group[%d]", i)
		if grp.ID != "" {
			subject = "group:" + grp.ID
		}
		members := make([]string, 0, len(grp.NodeIDs))
		seen := make(map[string]bool, len(grp.NodeIDs))
		for _, id := range grp.NodeIDs {
			if !known[id] {
				diags.add(errors.ErrCodeInvalidReference, subject, "unknown member node %q", id)
				continue
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			members = append(members, id)
		}
		if len(members) == 0 {
			diags.add(errors.ErrCodeDegenerateGroup, subject, "no valid members, group dropped")
			continue
		}
		grp.NodeIDs = members
		out.Groups = append(out.Groups, grp)
	}

	for i, note := range g.Notes {
		subject := fmt.Sprintf("note[%d]", i)
		if strings.TrimSpace(note.Text) == "" {
			diags.add(errors.ErrCodeEmptyNote, subject, "blank note dropped")
			continue
		}
		if note.AttachedTo != "" && !known[note.AttachedTo] {
			diags.add(errors.ErrCodeInvalidReference, subject, "unknown attachment %q, note floats", note.AttachedTo)
			note.AttachedTo = ""
		}
		switch note.Position {
		case NoteLeft, NoteRight, NoteAbove, NoteBelow:
		case "":
			note.Position = NoteBelow
		default:
			diags.add(errors.ErrCodeInvalidInput, subject, "unknown position %q, using below", note.Position)
			note.Position = NoteBelow
		}
		out.Notes = append(out.Notes, note)
	}

	return out, diags
}

func sanitizeDirection(d Direction, diags *diagnostics) Direction {
	if d == "" {
		return DirectionTB
	}
	dir, ok := ParseDirection(string(d))
	if !ok {
		diags.add(errors.ErrCodeInvalidDirection, "direction", "unknown direction %q, using TB", d)
	}
	return dir
}

// copyNode detaches the hint pointers from the caller's graph.
func copyNode(n Node, subject string, diags *diagnostics) Node {
	if n.Row != nil {
		n.Row = IntPtr(*n.Row)
	}
	if n.Column != nil {
		n.Column = IntPtr(*n.Column)
	}
	switch n.Importance {
	case ImportanceHigh, ImportanceMedium, ImportanceLow:
	case "":
		n.Importance = ImportanceMedium
	default:
		diags.add(errors.ErrCodeInvalidInput, subject, "unknown importance %q, using medium", n.Importance)
		n.Importance = ImportanceMedium
	}
	return n
}
