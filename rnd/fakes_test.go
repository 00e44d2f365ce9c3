package rnd

import "github.com/OpticalFlyer/rnd/geom"

type fakeElement struct {
	rect geom.Rect
}

func (e *fakeElement) ScreenRect() geom.Rect { return e.rect }

// fakeHost places the region in screen space the way a layout would: parent
// origin + margin + drag position.
type fakeHost struct {
	parent *fakeElement
	named  map[string]*fakeElement
	margin geom.Point
	drag   *fakeDrag
	resize *fakeResize
}

func (h *fakeHost) Self() Element {
	if h.parent == nil {
		return nil
	}
	pos := h.drag.Position()
	size := h.resize.Size()
	return &fakeElement{rect: geom.Rect{
		X:      h.parent.rect.X + h.margin.X + pos.X,
		Y:      h.parent.rect.Y + h.margin.Y + pos.Y,
		Width:  size.Width,
		Height: size.Height,
	}}
}

func (h *fakeHost) Parent() Element {
	if h.parent == nil {
		return nil
	}
	return h.parent
}

func (h *fakeHost) Lookup(name string) Element {
	if e, ok := h.named[name]; ok {
		return e
	}
	return nil
}

type fakeDrag struct {
	pos    geom.Point
	bounds *geom.Bounds
	writes int
}

func (d *fakeDrag) Position() geom.Point { return d.pos }
func (d *fakeDrag) SetPosition(p geom.Point) {
	d.pos = p
	d.writes++
}
func (d *fakeDrag) SetBounds(b *geom.Bounds) { d.bounds = b }

// move applies a pointer delta the way a clamping drag engine would.
func (d *fakeDrag) move(dx, dy float64) {
	next := d.pos.Add(geom.Point{X: dx, Y: dy})
	if d.bounds != nil {
		next = d.bounds.Clamp(next)
	}
	d.pos = next
}

type fakeResize struct {
	size geom.Size
	max  geom.MaxSize
}

func (r *fakeResize) Size() geom.Size { return r.size }
func (r *fakeResize) SetSize(w, h geom.Length) {
	r.size = geom.Size{Width: w.Resolve(0), Height: h.Resolve(0)}
}
func (r *fakeResize) SetMaxSize(m geom.MaxSize) { r.max = m }

type fakeEvent struct {
	stopped int
}

func (e *fakeEvent) StopPropagation() { e.stopped++ }

// newFixture puts a 100x80 region at position (10, 10) inside a 400x300
// parent at screen (100, 50), with a 5px margin.
func newFixture(cfg Config) (*Coordinator, *fakeHost) {
	h := &fakeHost{
		parent: &fakeElement{rect: geom.Rect{X: 100, Y: 50, Width: 400, Height: 300}},
		named:  map[string]*fakeElement{},
		margin: geom.Point{X: 5, Y: 5},
		drag:   &fakeDrag{pos: geom.Point{X: 10, Y: 10}},
		resize: &fakeResize{size: geom.Size{Width: 100, Height: 80}},
	}
	return New(cfg, h, h.drag, h.resize), h
}
