package rnd

import "github.com/OpticalFlyer/rnd/geom"

// DragCallback is notified on drag start, move and stop.
type DragCallback func(e Event, d DragData)

// ResizeStartCallback is notified when a resize handle is grabbed.
type ResizeStartCallback func(e Event, dir geom.Direction)

// ResizeCallback is notified on resize move and stop with the size change
// since the gesture started and the region's resulting position.
type ResizeCallback func(e Event, dir geom.Direction, delta geom.Size, pos geom.Point)

// Callbacks are the host's gesture notifications. Nil fields are skipped.
// Return values are never consulted: a gesture cannot be vetoed.
type Callbacks struct {
	OnDragStart DragCallback
	OnDrag      DragCallback
	OnDragStop  DragCallback

	OnResizeStart ResizeStartCallback
	OnResize      ResizeCallback
	OnResizeStop  ResizeCallback
}

// Placement is an initial, uncontrolled position and size.
type Placement struct {
	X, Y          float64
	Width, Height geom.Length
}

// Config configures a Coordinator.
type Config struct {
	// Bounds constrains dragging and resizing. Zero means unconstrained.
	Bounds Boundary
	// MaxWidth and MaxHeight are the global ceilings; zero is unbounded.
	MaxWidth  geom.Length
	MaxHeight geom.Length
	// Default, when set, is interpreted relative to the parent on Mount.
	Default *Placement

	Callbacks Callbacks
}

// MaxSize returns the configured ceiling.
func (c Config) MaxSize() geom.MaxSize {
	return geom.MaxSize{Width: c.MaxWidth, Height: c.MaxHeight}
}
