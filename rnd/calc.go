package rnd

import (
	"math"

	"github.com/OpticalFlyer/rnd/geom"
)

// ResolveOffset returns the translation between the drag engine's frame and
// the parent's frame: where the region actually sits inside its parent minus
// where the drag engine thinks it is. Screen geometry can change between
// calls (scrolling, reflow), so callers must not keep the result.
func ResolveOffset(self, parent Element, pos geom.Point) geom.Offset {
	if self == nil || parent == nil {
		return geom.Offset{}
	}
	sr := self.ScreenRect()
	pr := parent.ScreenRect()
	return geom.Offset{
		Left: sr.X - pr.X - pos.X,
		Top:  sr.Y - pr.Y - pos.Y,
	}
}

// ComputeDragBounds returns the clamp for the region's origin, in the drag
// engine's frame, that keeps the whole region (not just its origin) inside
// boundary. It reports false when the boundary cannot be measured; the drag
// is then left unconstrained.
func ComputeDragBounds(boundary, parent Element, regionSize geom.Size, off geom.Offset) (geom.Bounds, bool) {
	if boundary == nil || parent == nil {
		return geom.Bounds{}, false
	}
	br := boundary.ScreenRect()
	if br.Empty() {
		return geom.Bounds{}, false
	}
	pr := parent.ScreenRect()

	left := br.X - pr.X - off.Left
	top := br.Y - pr.Y - off.Top
	return geom.Bounds{
		Top:    top,
		Right:  left + (br.Width - regionSize.Width),
		Bottom: top + (br.Height - regionSize.Height),
		Left:   left,
	}, true
}

// ResolveMaxSize converts a configured ceiling to pixels. Unbounded
// dimensions resolve to +Inf.
//
// Percentages resolve against the parent's width for both dimensions,
// including the height. Existing layouts depend on this, so it is kept.
func ResolveMaxSize(m geom.MaxSize, parent geom.Size) (width, height float64) {
	return m.Width.Resolve(parent.Width), m.Height.Resolve(parent.Width)
}

// ComputeMaxSize tightens the configured ceiling so that the edges moved by
// dir cannot cross boundary. Dimensions dir does not touch keep the
// configured value, and without a measurable boundary the configured value is
// returned as is.
func ComputeMaxSize(dir geom.Direction, boundary, self Element, selfSize geom.Size, configured geom.MaxSize, parentSize geom.Size) geom.MaxSize {
	if boundary == nil || self == nil {
		return configured
	}
	br := boundary.ScreenRect()
	if br.Empty() {
		return configured
	}
	sr := self.ScreenRect()
	maxWidth, maxHeight := ResolveMaxSize(configured, parentSize)

	out := configured
	if dir.Has(geom.Left) {
		out.Width = geom.Px(math.Min(sr.X-br.X+selfSize.Width, maxWidth))
	}
	if dir.Has(geom.Right) {
		out.Width = geom.Px(math.Min(br.Width+(br.X-sr.X), maxWidth))
	}
	if dir.Has(geom.Top) {
		out.Height = geom.Px(math.Min(sr.Y-br.Y+selfSize.Height, maxHeight))
	}
	if dir.Has(geom.Bottom) {
		out.Height = geom.Px(math.Min(br.Height+(br.Y-sr.Y), maxHeight))
	}
	return out
}
