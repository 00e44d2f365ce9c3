package gesture

import (
	"math"

	"github.com/OpticalFlyer/rnd/geom"
)

// AspectRatio locks width and height together while resizing.
type AspectRatio struct {
	Locked bool
	// Ratio is width/height. Zero keeps the ratio the region had when the
	// gesture started.
	Ratio float64
	// ExtraWidth and ExtraHeight are fixed pixels outside the locked area,
	// such as a title bar.
	ExtraWidth, ExtraHeight float64
}

// ResizeStartHandler is notified when a handle is grabbed.
type ResizeStartHandler func(e *Event, dir geom.Direction)

// ResizeHandler receives the size change since the gesture started.
type ResizeHandler func(e *Event, dir geom.Direction, delta geom.Size)

// ResizableOptions configures a Resizable.
type ResizableOptions struct {
	Enable    Handles
	MinWidth  geom.Length
	MinHeight geom.Length
	Grid      geom.Grid
	Aspect    AspectRatio
	// ParentSize resolves percentages. Nil resolves them against zero.
	ParentSize func() geom.Size

	OnStart  ResizeStartHandler
	OnResize ResizeHandler
	OnStop   ResizeHandler
}

// Resizable tracks a size changed from one of eight handles. Sizes are
// measured from the corner opposite the grabbed handle; moving the origin
// for left and top handles is left to the caller.
type Resizable struct {
	opts ResizableOptions

	size geom.Size
	max  geom.MaxSize

	resizing     bool
	dir          geom.Direction
	startPointer geom.Point
	startSize    geom.Size
	ratio        float64
	delta        geom.Size
}

// NewResizable returns an engine with the given initial size.
func NewResizable(width, height geom.Length, opts ResizableOptions) *Resizable {
	r := &Resizable{opts: opts}
	r.SetSize(width, height)
	return r
}

func (r *Resizable) Size() geom.Size          { return r.size }
func (r *Resizable) MaxSize() geom.MaxSize     { return r.max }
func (r *Resizable) SetMaxSize(m geom.MaxSize) { r.max = m }
func (r *Resizable) Resizing() bool            { return r.resizing }
func (r *Resizable) Direction() geom.Direction { return r.dir }

// Handles returns the enabled handles.
func (r *Resizable) Handles() Handles { return r.opts.Enable }

// SetOptions replaces the options, keeping the size.
func (r *Resizable) SetOptions(opts ResizableOptions) {
	r.opts = opts
}

// SetSize sets the size directly. Percentages resolve against the parent;
// an unbounded length leaves that dimension unchanged.
func (r *Resizable) SetSize(width, height geom.Length) {
	parent := r.parentSize()
	if width.Bounded() {
		r.size.Width = width.Resolve(parent.Width)
	}
	if height.Bounded() {
		r.size.Height = height.Resolve(parent.Height)
	}
}

// Start grabs handle dir at the event's pointer. It reports false if the
// handle is not enabled.
func (r *Resizable) Start(e *Event, dir geom.Direction) bool {
	if !dir.Valid() || !r.opts.Enable.Enabled(dir) {
		return false
	}
	r.resizing = true
	r.dir = dir
	r.startPointer = e.Pointer
	r.startSize = r.size
	r.delta = geom.Size{}
	r.ratio = r.opts.Aspect.Ratio
	if inner := r.startSize.Height - r.opts.Aspect.ExtraHeight; r.ratio == 0 && inner > 0 {
		r.ratio = (r.startSize.Width - r.opts.Aspect.ExtraWidth) / inner
	}
	if r.opts.OnStart != nil {
		r.opts.OnStart(e, dir)
	}
	return true
}

// Move resizes to follow the pointer.
func (r *Resizable) Move(e *Event) {
	if !r.resizing {
		return
	}
	dx := e.Pointer.X - r.startPointer.X
	dy := e.Pointer.Y - r.startPointer.Y

	w, h := r.startSize.Width, r.startSize.Height
	switch {
	case r.dir.Has(geom.Right):
		w += dx
	case r.dir.Has(geom.Left):
		w -= dx
	}
	switch {
	case r.dir.Has(geom.Bottom):
		h += dy
	case r.dir.Has(geom.Top):
		h -= dy
	}

	w = snap(w, r.opts.Grid.X)
	h = snap(h, r.opts.Grid.Y)
	w, h = r.constrain(w, h)

	r.size = geom.Size{Width: w, Height: h}
	r.delta = geom.Size{Width: w - r.startSize.Width, Height: h - r.startSize.Height}
	if r.opts.OnResize != nil {
		r.opts.OnResize(e, r.dir, r.delta)
	}
}

// Stop releases the handle.
func (r *Resizable) Stop(e *Event) {
	if !r.resizing {
		return
	}
	r.resizing = false
	if r.opts.OnStop != nil {
		r.opts.OnStop(e, r.dir, r.delta)
	}
}

func (r *Resizable) constrain(w, h float64) (float64, float64) {
	parent := r.parentSize()
	minW, maxW := limits(r.opts.MinWidth, r.max.Width, parent.Width)
	minH, maxH := limits(r.opts.MinHeight, r.max.Height, parent.Height)

	aspect := r.opts.Aspect
	if !aspect.Locked || r.ratio <= 0 {
		return clamp(w, minW, maxW), clamp(h, minH, maxH)
	}

	// The dimension the handle drives leads; the other follows the ratio
	// and is clamped last.
	if r.dir.Horizontal() {
		w = clamp(w, minW, maxW)
		h = (w-aspect.ExtraWidth)/r.ratio + aspect.ExtraHeight
		h = clamp(h, minH, maxH)
		w = (h-aspect.ExtraHeight)*r.ratio + aspect.ExtraWidth
		return clamp(w, minW, maxW), h
	}
	h = clamp(h, minH, maxH)
	w = (h-aspect.ExtraHeight)*r.ratio + aspect.ExtraWidth
	w = clamp(w, minW, maxW)
	h = (w-aspect.ExtraWidth)/r.ratio + aspect.ExtraHeight
	return w, clamp(h, minH, maxH)
}

func (r *Resizable) parentSize() geom.Size {
	if r.opts.ParentSize == nil {
		return geom.Size{}
	}
	return r.opts.ParentSize()
}

// limits resolves a min/max pair. An unbounded minimum is zero.
func limits(lower, upper geom.Length, ref float64) (float64, float64) {
	lo := 0.0
	if lower.Bounded() {
		lo = lower.Resolve(ref)
	}
	return lo, upper.Resolve(ref)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
