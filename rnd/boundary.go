package rnd

import "strings"

type boundaryKind uint8

const (
	boundNone boundaryKind = iota
	boundParent
	boundElement
)

// Boundary selects what a region must stay inside. The zero value leaves the
// region unconstrained.
type Boundary struct {
	kind boundaryKind
	name string
}

// BoundToParent keeps the region inside its parent container.
func BoundToParent() Boundary {
	return Boundary{kind: boundParent}
}

// BoundToElement keeps the region inside the element the host resolves for
// name.
func BoundToElement(name string) Boundary {
	if name == "" {
		return Boundary{}
	}
	return Boundary{kind: boundElement, name: name}
}

// ParseBoundary reads "parent", an element name (optionally written "#name"),
// or "" for none.
func ParseBoundary(s string) Boundary {
	s = strings.TrimSpace(s)
	switch s {
	case "", "none":
		return Boundary{}
	case "parent":
		return BoundToParent()
	default:
		return BoundToElement(strings.TrimPrefix(s, "#"))
	}
}

// Configured reports whether a boundary was set at all.
func (b Boundary) Configured() bool {
	return b.kind != boundNone
}

// Name is the element name for element boundaries and "" otherwise.
func (b Boundary) Name() string {
	return b.name
}

func (b Boundary) String() string {
	switch b.kind {
	case boundParent:
		return "parent"
	case boundElement:
		return "#" + b.name
	default:
		return "none"
	}
}

// UnmarshalYAML reads a boundary the way ParseBoundary does.
func (b *Boundary) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*b = ParseBoundary(s)
	return nil
}

// resolve returns the boundary element, or nil if there is none to be found.
func (b Boundary) resolve(h Host) Element {
	switch b.kind {
	case boundParent:
		return h.Parent()
	case boundElement:
		return h.Lookup(b.name)
	default:
		return nil
	}
}
