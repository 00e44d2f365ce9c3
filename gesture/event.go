// Package gesture implements the two pointer-driven engines a region is built
// from: Draggable keeps a clamped, snapped position and Resizable keeps a
// size driven from one of eight handles.
//
// Both engines are fed pointer positions in screen pixels by the host; they
// know nothing about the window system that produced them.
package gesture

import (
	"math"

	"github.com/OpticalFlyer/rnd/geom"
)

// Event is one pointer sample handed to an engine.
type Event struct {
	Pointer geom.Point
	stopped bool
}

// NewEvent returns an event for a pointer at p.
func NewEvent(p geom.Point) *Event {
	return &Event{Pointer: p}
}

// StopPropagation keeps the event from reaching any component under the
// one handling it.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

func snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
