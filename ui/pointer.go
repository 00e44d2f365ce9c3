package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer is one sample of the primary pointer in window coordinates.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// PointerReader samples the mouse, or the first touch while the screen is
// being touched.
type PointerReader struct {
	touches  []ebiten.TouchID
	touch    ebiten.TouchID
	touching bool
	last     Pointer
}

// Read returns the current pointer sample. When a touch ends the release is
// reported where the finger was last seen.
func (r *PointerReader) Read() Pointer {
	r.touches = ebiten.AppendTouchIDs(r.touches[:0])

	if r.touching && !containsTouchID(r.touches, r.touch) {
		r.touching = false
		r.last.Pressed = false
		return r.last
	}
	if !r.touching && len(r.touches) > 0 {
		r.touching = true
		r.touch = r.touches[0]
	}
	if r.touching {
		x, y := ebiten.TouchPosition(r.touch)
		r.last = Pointer{X: float64(x), Y: float64(y), Pressed: true}
		return r.last
	}

	x, y := ebiten.CursorPosition()
	r.last = Pointer{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	return r.last
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
