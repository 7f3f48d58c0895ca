package diagram

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace is the UUID namespace of name-based element identifiers.
var Namespace = uuid.MustParse("6f1b2a3e-5c0d-4e8a-9b7f-2d4c6e8a0b1c")

// IDSource issues identifiers for positioned elements. Implementations must
// be deterministic: the same kind and parts always yield the same id.
type IDSource interface {
	ID(kind string, parts ...string) string
}

// NameIDs derives version 5 UUIDs from the element kind and its parts.
type NameIDs struct {
	Namespace uuid.UUID
}

// ID implements [IDSource].
func (n NameIDs) ID(kind string, parts ...string) string {
	ns := n.Namespace
	if ns == uuid.Nil {
		ns = Namespace
	}
	name := kind + "\x00" + strings.Join(parts, "\x00")
	return uuid.NewSHA1(ns, []byte(name)).String()
}

// DefaultIDs is the IDSource used when none is configured.
var DefaultIDs IDSource = NameIDs{Namespace: Namespace}
