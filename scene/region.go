package scene

import (
	"github.com/OpticalFlyer/rnd/geom"
	"github.com/OpticalFlyer/rnd/gesture"
	"github.com/OpticalFlyer/rnd/log"
	"github.com/OpticalFlyer/rnd/rnd"
)

// TitleBarHeight is the height of the strip drawn at the top of a region.
// With a drag handle configured it is the only part that starts a drag.
const TitleBarHeight = 20.0

// Region is a draggable, resizable rectangle inside a box. Its screen
// rectangle is the box origin plus a fixed margin plus the drag engine's
// position, so the engine's frame is offset from the box by the margin.
type Region struct {
	name  string
	title string
	box   *Box
	scene *Scene

	margin     geom.Point
	dragHandle bool
	cancel     []geom.Rect
	bounds     rnd.Boundary

	drag   *gesture.Draggable
	resize *gesture.Resizable
	coord  *rnd.Coordinator
}

var _ rnd.Host = (*Region)(nil)
var _ rnd.Element = (*Region)(nil)

func (r *Region) Name() string  { return r.name }
func (r *Region) Title() string { return r.title }
func (r *Region) Box() *Box     { return r.box }

// Coordinator exposes the region's drag/resize reconciliation state.
func (r *Region) Coordinator() *rnd.Coordinator { return r.coord }

// ScreenRect returns the region's rectangle in window coordinates.
func (r *Region) ScreenRect() geom.Rect {
	origin := r.margin.Add(r.drag.Position())
	if r.box != nil {
		b := r.box.ScreenRect()
		origin = origin.Add(geom.Point{X: b.X, Y: b.Y})
	}
	size := r.resize.Size()
	return geom.Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Self implements rnd.Host.
func (r *Region) Self() rnd.Element { return r }

// Parent implements rnd.Host. A detached region has no parent.
func (r *Region) Parent() rnd.Element {
	if r.box == nil {
		return nil
	}
	return r.box
}

// Lookup implements rnd.Host.
func (r *Region) Lookup(name string) rnd.Element {
	if r.scene == nil {
		return nil
	}
	return r.scene.Lookup(name)
}

// ParentSize is the box size percentages resolve against.
func (r *Region) ParentSize() geom.Size {
	if r.box == nil {
		return geom.Size{}
	}
	return r.box.ScreenRect().Size()
}

// Position returns the region's origin relative to its box.
func (r *Region) Position() geom.Point {
	s := r.ScreenRect()
	p := geom.Point{X: s.X, Y: s.Y}
	if r.box != nil {
		b := r.box.ScreenRect()
		p = p.Sub(geom.Point{X: b.X, Y: b.Y})
	}
	return p
}

// SetPosition moves the region's origin to p, relative to its box. It
// reports false, leaving the region where it is, while a resize is running.
func (r *Region) SetPosition(p geom.Point) bool {
	return r.coord.UpdatePosition(r.coord.EnginePosition(p))
}

// SetBounds replaces the boundary the region is dragged inside. The zero
// Boundary lets it move freely.
func (r *Region) SetBounds(b rnd.Boundary) {
	cfg := r.coord.Config()
	cfg.Bounds = b
	r.coord.SetConfig(cfg)
}

// Size returns the region's current size.
func (r *Region) Size() geom.Size { return r.resize.Size() }

// SetSize resizes the region. An unbounded length keeps that dimension.
func (r *Region) SetSize(width, height geom.Length) {
	r.coord.UpdateSize(width, height)
}

// Dragging and Resizing report the gesture in progress, if any.
func (r *Region) Dragging() bool { return r.drag.Dragging() }
func (r *Region) Resizing() bool { return r.resize.Resizing() }

// Active reports whether the region holds the pointer.
func (r *Region) Active() bool { return r.Dragging() || r.Resizing() }

// ResizeDirection returns the handle of the resize in progress.
func (r *Region) ResizeDirection() geom.Direction { return r.resize.Direction() }

// HandleAt returns the enabled resize handle under p.
func (r *Region) HandleAt(p geom.Point) (geom.Direction, bool) {
	return gesture.HandleAt(r.ScreenRect(), p, gesture.HandleBand, r.resize.Handles())
}

// DragArea reports whether a press at p would start a drag.
func (r *Region) DragArea(p geom.Point) bool {
	if _, ok := r.HandleAt(p); ok {
		return false
	}
	rect := r.ScreenRect()
	if !rect.Contains(p) {
		return false
	}
	for _, c := range r.cancel {
		c.X, c.Y = rect.X+c.X, rect.Y+c.Y
		if c.Contains(p) {
			return false
		}
	}
	if r.dragHandle {
		return p.Y <= rect.Y+TitleBarHeight
	}
	return true
}

// Hit reports whether p is over the region or one of its handles.
func (r *Region) Hit(p geom.Point) bool {
	if _, ok := r.HandleAt(p); ok {
		return true
	}
	return r.ScreenRect().Contains(p)
}

// Press starts a gesture for a pointer pressed at e.Pointer. Handles win over
// the body. It reports whether the region took the pointer; a press inside
// the region is taken even when no gesture starts.
func (r *Region) Press(e *gesture.Event) bool {
	if dir, ok := r.HandleAt(e.Pointer); ok && r.resize.Start(e, dir) {
		return true
	}
	if !r.ScreenRect().Contains(e.Pointer) {
		return false
	}
	if r.DragArea(e.Pointer) {
		r.drag.Start(e)
	}
	return true
}

// Move feeds a pointer move to the gesture in progress.
func (r *Region) Move(e *gesture.Event) {
	switch {
	case r.resize.Resizing():
		r.resize.Move(e)
	case r.drag.Dragging():
		r.drag.Move(e)
	}
}

// Release ends the gesture in progress.
func (r *Region) Release(e *gesture.Event) {
	switch {
	case r.resize.Resizing():
		r.resize.Stop(e)
	case r.drag.Dragging():
		r.drag.Stop(e)
	}
}

// wire connects the engines' notifications to the coordinator.
func (r *Region) wire(dragOpts gesture.DraggableOptions, resizeOpts gesture.ResizableOptions) {
	dragOpts.OnStart = func(e *gesture.Event, d gesture.DragData) { r.coord.DragStart(e, rnd.DragData(d)) }
	dragOpts.OnDrag = func(e *gesture.Event, d gesture.DragData) { r.coord.Drag(e, rnd.DragData(d)) }
	dragOpts.OnStop = func(e *gesture.Event, d gesture.DragData) { r.coord.DragStop(e, rnd.DragData(d)) }
	r.drag.SetOptions(dragOpts)

	resizeOpts.ParentSize = r.ParentSize
	resizeOpts.OnStart = func(e *gesture.Event, dir geom.Direction) { r.coord.ResizeStart(e, dir) }
	resizeOpts.OnResize = func(e *gesture.Event, dir geom.Direction, delta geom.Size) { r.coord.Resize(e, dir, delta) }
	resizeOpts.OnStop = func(e *gesture.Event, dir geom.Direction, delta geom.Size) { r.coord.ResizeStop(e, dir, delta) }
	r.resize.SetOptions(resizeOpts)
}

// callbacks are the host notifications the scene installs on every region.
func (r *Region) callbacks() rnd.Callbacks {
	return rnd.Callbacks{
		OnDragStart: func(_ rnd.Event, d rnd.DragData) {
			log.Debug("scene: %s drag start at %.0f,%.0f", r.name, d.X, d.Y)
		},
		OnDragStop: func(_ rnd.Event, d rnd.DragData) {
			log.Debug("scene: %s dropped at %.0f,%.0f", r.name, d.X, d.Y)
			r.scene.settled(r)
		},
		OnResizeStart: func(_ rnd.Event, dir geom.Direction) {
			log.Debug("scene: %s resize %s start", r.name, dir)
		},
		OnResizeStop: func(_ rnd.Event, dir geom.Direction, delta geom.Size, pos geom.Point) {
			log.Debug("scene: %s resized %s by %+v, origin %+v", r.name, dir, delta, pos)
			r.scene.settled(r)
		},
	}
}
