package gesture

import (
	"fmt"
	"strings"

	"github.com/OpticalFlyer/rnd/geom"
)

// Axis limits which coordinates a drag may change.
type Axis uint8

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
	AxisNone
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisNone:
		return "none"
	default:
		return "both"
	}
}

// ParseAxis reads "x", "y", "both" or "none". Empty means both.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return AxisBoth, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "none":
		return AxisNone, nil
	}
	return AxisBoth, fmt.Errorf("unknown drag axis %q", s)
}

// UnmarshalYAML reads an axis name.
func (a *Axis) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseAxis(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Axis) canX() bool { return a == AxisBoth || a == AxisX }
func (a Axis) canY() bool { return a == AxisBoth || a == AxisY }

// DragData describes the drag engine's position after a pointer sample.
type DragData struct {
	X, Y           float64
	DeltaX, DeltaY float64
	LastX, LastY   float64
}

// DragHandler receives drag notifications.
type DragHandler func(e *Event, d DragData)

// DraggableOptions configures a Draggable.
type DraggableOptions struct {
	Axis     Axis
	Grid     geom.Grid
	Disabled bool

	OnStart DragHandler
	OnDrag  DragHandler
	OnStop  DragHandler
}

// Draggable tracks a position moved by pointer deltas.
type Draggable struct {
	opts DraggableOptions

	pos    geom.Point
	bounds *geom.Bounds
	// slack is how far the pointer has travelled past the bounds, so the
	// region only comes back once the pointer does.
	slack geom.Point

	dragging bool
	last     geom.Point
}

// NewDraggable returns an engine positioned at start.
func NewDraggable(start geom.Point, opts DraggableOptions) *Draggable {
	return &Draggable{opts: opts, pos: start}
}

func (d *Draggable) Position() geom.Point     { return d.pos }
func (d *Draggable) SetPosition(p geom.Point) { d.pos = p }
func (d *Draggable) Dragging() bool           { return d.dragging }

// SetBounds installs a clamp for the position; nil removes it.
func (d *Draggable) SetBounds(b *geom.Bounds) {
	if b == nil {
		d.bounds = nil
		return
	}
	copied := *b
	d.bounds = &copied
}

// Bounds returns the installed clamp, if any.
func (d *Draggable) Bounds() (geom.Bounds, bool) {
	if d.bounds == nil {
		return geom.Bounds{}, false
	}
	return *d.bounds, true
}

// SetOptions replaces the options, keeping the position.
func (d *Draggable) SetOptions(opts DraggableOptions) {
	d.opts = opts
}

// Start begins a drag at the event's pointer. It reports false when dragging
// is disabled.
func (d *Draggable) Start(e *Event) bool {
	if d.opts.Disabled {
		return false
	}
	d.dragging = true
	d.last = e.Pointer
	d.slack = geom.Point{}
	if d.opts.OnStart != nil {
		d.opts.OnStart(e, d.data(d.pos))
	}
	return true
}

// Move follows the pointer.
func (d *Draggable) Move(e *Event) {
	if !d.dragging {
		return
	}
	dx := snap(e.Pointer.X-d.last.X, d.opts.Grid.X)
	dy := snap(e.Pointer.Y-d.last.Y, d.opts.Grid.Y)
	if dx == 0 && dy == 0 {
		return
	}
	d.last = d.last.Add(geom.Point{X: dx, Y: dy})

	if !d.opts.Axis.canX() {
		dx = 0
	}
	if !d.opts.Axis.canY() {
		dy = 0
	}

	prev := d.pos
	next := prev.Add(geom.Point{X: dx, Y: dy})
	if d.bounds != nil {
		raw := next.Add(d.slack)
		next = d.bounds.Clamp(raw)
		d.slack = raw.Sub(next)
	}
	d.pos = next

	if d.opts.OnDrag != nil {
		d.opts.OnDrag(e, d.data(prev))
	}
}

// Stop ends the drag.
func (d *Draggable) Stop(e *Event) {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.slack = geom.Point{}
	if d.opts.OnStop != nil {
		d.opts.OnStop(e, d.data(d.pos))
	}
}

func (d *Draggable) data(prev geom.Point) DragData {
	return DragData{
		X:      d.pos.X,
		Y:      d.pos.Y,
		DeltaX: d.pos.X - prev.X,
		DeltaY: d.pos.Y - prev.Y,
		LastX:  prev.X,
		LastY:  prev.Y,
	}
}
