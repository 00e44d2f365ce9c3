package geom

import (
	"fmt"
	"strings"
)

// Direction is the set of edges a resize handle moves.
type Direction uint8

const (
	Top Direction = 1 << iota
	Right
	Bottom
	Left

	TopRight    = Top | Right
	BottomRight = Bottom | Right
	BottomLeft  = Bottom | Left
	TopLeft     = Top | Left
)

// Directions lists the eight resize handles in hit-test order: corners first.
var Directions = []Direction{
	TopLeft, TopRight, BottomLeft, BottomRight,
	Top, Right, Bottom, Left,
}

var directionNames = map[Direction]string{
	Top:         "top",
	Right:       "right",
	Bottom:      "bottom",
	Left:        "left",
	TopRight:    "topRight",
	BottomRight: "bottomRight",
	BottomLeft:  "bottomLeft",
	TopLeft:     "topLeft",
}

// Has reports whether every edge in e is part of d.
func (d Direction) Has(e Direction) bool {
	return e != 0 && d&e == e
}

// Horizontal reports whether the handle moves a vertical edge.
func (d Direction) Horizontal() bool {
	return d.Has(Left) || d.Has(Right)
}

// Vertical reports whether the handle moves a horizontal edge.
func (d Direction) Vertical() bool {
	return d.Has(Top) || d.Has(Bottom)
}

// Valid reports whether d is one of the eight handles.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts the handle names produced by String, case-insensitive,
// with or without a separator ("top-left", "top_left", "topLeft").
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for d, name := range directionNames {
		if strings.ToLower(name) == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown resize direction %q", s)
}

// UnmarshalYAML reads a direction from its handle name.
func (d *Direction) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
