// Package rnd coordinates a region that can be both dragged and resized
// inside a parent container.
//
// The drag and resize gestures themselves are owned by two engines the
// package only talks to through DragEngine and ResizeEngine. What rnd adds is
// the reconciliation between them: the drag clamp expressed in the region's
// own moving frame, size ceilings tightened by a boundary, and the position
// shift a resize from the top or left edge implies.
package rnd

import "github.com/OpticalFlyer/rnd/geom"

// Element is anything that can measure its on-screen rectangle.
type Element interface {
	ScreenRect() geom.Rect
}

// Host gives the coordinator access to the element tree around the region.
// Implementations return an untyped nil for elements that do not exist or
// are not attached yet.
type Host interface {
	// Self is the region's own element.
	Self() Element
	// Parent is the container the region is positioned in.
	Parent() Element
	// Lookup finds an externally addressable element by name.
	Lookup(name string) Element
}

// DragEngine owns the region's position while it is dragged.
type DragEngine interface {
	Position() geom.Point
	SetPosition(p geom.Point)
	// SetBounds installs a clamp for the region's origin; nil removes it.
	SetBounds(b *geom.Bounds)
}

// ResizeEngine owns the region's size.
type ResizeEngine interface {
	Size() geom.Size
	SetSize(width, height geom.Length)
	SetMaxSize(m geom.MaxSize)
}

// Event is the pointer event that started or continued a gesture.
type Event interface {
	StopPropagation()
}

// DragData is what the drag engine reports with each drag callback.
type DragData struct {
	X, Y           float64
	DeltaX, DeltaY float64
	LastX, LastY   float64
}
