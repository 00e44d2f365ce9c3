package gesture

import (
	"math"

	"github.com/OpticalFlyer/rnd/geom"
)

// HandleBand is the default thickness, in pixels, of the grab area on each
// side of an edge.
const HandleBand = 5.0

// Handles is the set of enabled resize handles. A nil set enables all eight.
type Handles []geom.Direction

// NoHandles disables resizing.
var NoHandles = Handles{}

// Enabled reports whether dir can be grabbed.
func (h Handles) Enabled(dir geom.Direction) bool {
	if h == nil {
		return true
	}
	for _, d := range h {
		if d == dir {
			return true
		}
	}
	return false
}

// HandleAt returns the resize handle under p for a region occupying r.
// Corners win over edges so a pointer near a corner grabs both edges.
func HandleAt(r geom.Rect, p geom.Point, band float64, enabled Handles) (geom.Direction, bool) {
	outer := geom.Rect{X: r.X - band, Y: r.Y - band, Width: r.Width + 2*band, Height: r.Height + 2*band}
	if !outer.Contains(p) {
		return 0, false
	}

	var dir geom.Direction
	if math.Abs(p.X-r.Left()) <= band {
		dir |= geom.Left
	} else if math.Abs(p.X-r.Right()) <= band {
		dir |= geom.Right
	}
	if math.Abs(p.Y-r.Top()) <= band {
		dir |= geom.Top
	} else if math.Abs(p.Y-r.Bottom()) <= band {
		dir |= geom.Bottom
	}
	if dir == 0 {
		return 0, false
	}

	if enabled.Enabled(dir) {
		return dir, true
	}
	// A disabled corner falls back to whichever of its edges is enabled.
	for _, edge := range []geom.Direction{geom.Left, geom.Right, geom.Top, geom.Bottom} {
		if dir.Has(edge) && enabled.Enabled(edge) {
			return edge, true
		}
	}
	return 0, false
}
