package scene

import "github.com/OpticalFlyer/rnd/geom"

// Box is a static container. Its frame is relative to its parent box; the
// root box has no parent and spans the window.
type Box struct {
	name   string
	frame  geom.Rect
	parent *Box
}

// NewBox returns a box placed at frame inside parent. A nil parent makes it a
// root.
func NewBox(name string, frame geom.Rect, parent *Box) *Box {
	return &Box{name: name, frame: frame, parent: parent}
}

func (b *Box) Name() string     { return b.name }
func (b *Box) Frame() geom.Rect { return b.frame }
func (b *Box) Parent() *Box     { return b.parent }

// SetFrame moves and resizes the box inside its parent.
func (b *Box) SetFrame(r geom.Rect) {
	b.frame = r
}

// ScreenRect returns the box's rectangle in window coordinates.
func (b *Box) ScreenRect() geom.Rect {
	if b.parent == nil {
		return b.frame
	}
	p := b.parent.ScreenRect()
	return b.frame.Translate(geom.Point{X: p.X, Y: p.Y})
}
