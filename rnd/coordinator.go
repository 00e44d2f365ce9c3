package rnd

import (
	"github.com/OpticalFlyer/rnd/geom"
	"github.com/OpticalFlyer/rnd/log"
)

// Owner identifies who may write the region's position.
type Owner uint8

const (
	// OwnerDragEngine is the normal owner; it moves the region while dragging.
	OwnerDragEngine Owner = iota
	// OwnerCoordinator borrows the position while a resize is in progress.
	OwnerCoordinator
)

func (o Owner) String() string {
	if o == OwnerCoordinator {
		return "coordinator"
	}
	return "drag-engine"
}

// Coordinator reconciles the drag and resize engines of one region.
//
// Dragging and resizing are independent tracks that never run at the same
// time: the engines own mutually exclusive pointer areas. All methods are
// meant to be called from the UI goroutine, in the order the engines report
// gestures.
type Coordinator struct {
	cfg    Config
	host   Host
	drag   DragEngine
	resize ResizeEngine

	owner    Owner
	dragging bool
	resizing bool

	// original is the position when the current resize started.
	original geom.Point

	bounds    geom.Bounds
	hasBounds bool

	maxSize geom.MaxSize
}

// New returns a coordinator for a region whose engines are drag and resize.
// The resize engine receives the configured ceiling right away.
func New(cfg Config, host Host, drag DragEngine, resize ResizeEngine) *Coordinator {
	c := &Coordinator{
		cfg:     cfg,
		host:    host,
		drag:    drag,
		resize:  resize,
		maxSize: cfg.MaxSize(),
	}
	resize.SetMaxSize(c.maxSize)
	return c
}

// Config returns the current configuration.
func (c *Coordinator) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration. Outside a resize the ceiling is
// reset to the new configured value; during one it is left alone until the
// gesture ends.
func (c *Coordinator) SetConfig(cfg Config) {
	c.cfg = cfg
	if !c.cfg.Bounds.Configured() && c.hasBounds {
		c.hasBounds = false
		c.drag.SetBounds(nil)
	}
	if !c.resizing {
		c.maxSize = cfg.MaxSize()
		c.resize.SetMaxSize(c.maxSize)
	}
}

// Mount shifts a default placement from the parent's frame into the drag
// engine's frame. Call it once the region is attached and measurable.
func (c *Coordinator) Mount() {
	if c.cfg.Default == nil {
		return
	}
	off := c.Offset()
	c.writePosition(OwnerDragEngine, c.drag.Position().Sub(off.Point()))
	log.Debug("rnd: mounted with offset %+v, position %+v", off, c.drag.Position())
}

// Offset resolves the current frame offset. It is recomputed on every call.
func (c *Coordinator) Offset() geom.Offset {
	return ResolveOffset(c.host.Self(), c.host.Parent(), c.drag.Position())
}

// EnginePosition converts a position relative to the parent into the drag
// engine's frame, for hosts that control the position directly.
func (c *Coordinator) EnginePosition(p geom.Point) geom.Point {
	return p.Sub(c.Offset().Point())
}

// DragStart handles the drag engine's start notification. The host is
// notified first; then, if a boundary is configured, a fresh clamp is handed
// to the drag engine.
func (c *Coordinator) DragStart(e Event, d DragData) {
	c.dragging = true
	if cb := c.cfg.Callbacks.OnDragStart; cb != nil {
		cb(e, d)
	}
	if !c.cfg.Bounds.Configured() {
		return
	}

	boundary := c.cfg.Bounds.resolve(c.host)
	b, ok := ComputeDragBounds(boundary, c.host.Parent(), c.resize.Size(), c.Offset())
	if !ok {
		log.Debug("rnd: boundary %s not measurable, dragging unconstrained", c.cfg.Bounds)
		c.hasBounds = false
		c.drag.SetBounds(nil)
		return
	}
	c.bounds, c.hasBounds = b, true
	c.drag.SetBounds(&b)
	log.Debug("rnd: drag start at %+v, bounds %+v", c.drag.Position(), b)
}

// Drag forwards a drag move to the host.
func (c *Coordinator) Drag(e Event, d DragData) {
	if cb := c.cfg.Callbacks.OnDrag; cb != nil {
		cb(e, d)
	}
}

// DragStop forwards the end of a drag to the host.
func (c *Coordinator) DragStop(e Event, d DragData) {
	c.dragging = false
	if cb := c.cfg.Callbacks.OnDragStop; cb != nil {
		cb(e, d)
	}
}

// ResizeStart handles a grabbed resize handle. It stops e from reaching
// ancestors, snapshots the position, takes over position ownership and
// installs the ceiling for dir before notifying the host.
func (c *Coordinator) ResizeStart(e Event, dir geom.Direction) {
	if e != nil {
		e.StopPropagation()
	}
	c.original = c.drag.Position()
	c.resizing = true
	c.owner = OwnerCoordinator

	configured := c.cfg.MaxSize()
	c.maxSize = configured
	if c.cfg.Bounds.Configured() {
		boundary := c.cfg.Bounds.resolve(c.host)
		self := c.host.Self()
		if boundary != nil && self != nil && c.host.Parent() != nil {
			c.maxSize = ComputeMaxSize(dir, boundary, self, c.resize.Size(), configured, c.ParentSize())
		}
	}
	c.resize.SetMaxSize(c.maxSize)
	log.Debug("rnd: resize %s start at %+v, max %s x %s", dir, c.original, c.maxSize.Width, c.maxSize.Height)

	if cb := c.cfg.Callbacks.OnResizeStart; cb != nil {
		cb(e, dir)
	}
}

// Resize handles a resize move. delta is the size change since the gesture
// started. The resize engine grows the region away from the opposite corner,
// so growing from the left or top edge must move the origin by -delta on
// that axis to keep the far edge in place.
func (c *Coordinator) Resize(e Event, dir geom.Direction, delta geom.Size) {
	pos := c.drag.Position()
	next := pos
	if dir.Has(geom.Left) {
		next.X = c.original.X - delta.Width
	}
	if dir.Has(geom.Top) {
		next.Y = c.original.Y - delta.Height
	}
	if next != pos && !c.writePosition(OwnerCoordinator, next) {
		next = pos
	}
	if cb := c.cfg.Callbacks.OnResize; cb != nil {
		cb(e, dir, delta, next)
	}
}

// ResizeStop restores the configured ceiling, hands the position back to the
// drag engine and notifies the host. Calling it twice changes nothing.
func (c *Coordinator) ResizeStop(e Event, dir geom.Direction, delta geom.Size) {
	c.maxSize = c.cfg.MaxSize()
	c.resize.SetMaxSize(c.maxSize)
	c.resizing = false
	c.owner = OwnerDragEngine
	if cb := c.cfg.Callbacks.OnResizeStop; cb != nil {
		cb(e, dir, delta, c.drag.Position())
	}
}

// writePosition writes p into the drag engine on behalf of by, provided by
// currently owns the position.
func (c *Coordinator) writePosition(by Owner, p geom.Point) bool {
	if by != c.owner {
		log.Debug("rnd: %s may not move the region while %s owns it", by, c.owner)
		return false
	}
	c.drag.SetPosition(p)
	return true
}

// UpdateSize sets the region's size directly.
func (c *Coordinator) UpdateSize(width, height geom.Length) {
	c.resize.SetSize(width, height)
}

// UpdatePosition sets the region's position directly, in the drag engine's
// frame. The write goes through on the drag engine's behalf, so it is
// refused while a resize owns the position; it reports whether p was
// applied.
func (c *Coordinator) UpdatePosition(p geom.Point) bool {
	return c.writePosition(OwnerDragEngine, p)
}

// ParentSize returns the parent's measured size, or zero when detached.
func (c *Coordinator) ParentSize() geom.Size {
	parent := c.host.Parent()
	if parent == nil {
		return geom.Size{}
	}
	return parent.ScreenRect().Size()
}

// DragBounds returns the clamp installed at the last drag start.
func (c *Coordinator) DragBounds() (geom.Bounds, bool) {
	return c.bounds, c.hasBounds
}

// MaxSize returns the ceiling currently handed to the resize engine.
func (c *Coordinator) MaxSize() geom.MaxSize {
	return c.maxSize
}

// Original returns the position snapshot of the current or last resize.
func (c *Coordinator) Original() geom.Point {
	return c.original
}

func (c *Coordinator) Owner() Owner   { return c.owner }
func (c *Coordinator) Dragging() bool { return c.dragging }
func (c *Coordinator) Resizing() bool { return c.resizing }
