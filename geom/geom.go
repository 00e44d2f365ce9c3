// Package geom holds the value types shared by the region coordinator, the
// gesture engines and the ebiten host.
package geom

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an on-screen rectangle, the way an element measures itself.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Size returns the extent of r.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether r has no measurable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Bounds is the legal range of a region's origin while dragging, in the drag
// engine's own frame.
type Bounds struct {
	Top, Right, Bottom, Left float64
}

// Clamp pulls p into b on both axes.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, b.Left, b.Right),
		Y: clamp(p.Y, b.Top, b.Bottom),
	}
}

// Offset is the constant translation between a region's movement frame and
// its parent's frame.
type Offset struct {
	Top, Left float64
}

// Point returns the offset as a vector.
func (o Offset) Point() Point {
	return Point{X: o.Left, Y: o.Top}
}

// Grid is a snapping step per axis. A zero step disables snapping on that axis.
type Grid struct {
	X, Y float64
}

// Zero reports whether the grid snaps on neither axis.
func (g Grid) Zero() bool {
	return g.X == 0 && g.Y == 0
}

// clamp follows the engine convention that the lower bound wins when the
// range is inverted, i.e. when the region is wider than its boundary.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
