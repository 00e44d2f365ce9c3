package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/rnd/geom"
	"github.com/OpticalFlyer/rnd/scene"
)

// Controller feeds pointer samples to a scene and draws it.
type Controller struct {
	scene *scene.Scene
	theme Theme

	pointerPreviouslyDown bool
	consumed              bool
}

// NewController creates a controller for s.
func NewController(s *scene.Scene) *Controller {
	return &Controller{scene: s, theme: DefaultTheme}
}

// Update routes one pointer sample. It reports whether the scene consumed
// the press the sample belongs to.
func (c *Controller) Update(p Pointer) bool {
	pt := geom.Point{X: p.X, Y: p.Y}
	switch {
	case p.Pressed && !c.pointerPreviouslyDown:
		c.pointerPreviouslyDown = true
		c.consumed = c.scene.Press(pt)
	case p.Pressed:
		c.scene.Move(pt)
	case c.pointerPreviouslyDown:
		c.pointerPreviouslyDown = false
		c.scene.Release(pt)
	default:
		c.consumed = false
	}
	c.updateCursor(pt)
	return c.consumed
}

// IsInteractingWithUI returns true while a region is being dragged or
// resized.
func (c *Controller) IsInteractingWithUI() bool {
	return c.scene.Active() != nil
}

// UpdateWindowSize follows a change of the window size.
func (c *Controller) UpdateWindowSize(width, height int) {
	c.scene.Resize(float64(width), float64(height))
}

// Draw draws every box, then every region bottom to top.
func (c *Controller) Draw(screen *ebiten.Image) {
	screen.Fill(c.theme.Background)
	for _, b := range c.scene.Boxes() {
		if b.Parent() == nil {
			continue
		}
		r := b.ScreenRect()
		fillRect(screen, r, c.theme.Box)
		strokeRect(screen, r, c.theme.BoxBorder)
		ebitenutil.DebugPrintAt(screen, b.Name(), int(r.X)+4, int(r.Bottom())-18)
	}
	for _, r := range c.scene.Regions() {
		c.drawRegion(screen, r)
	}
}

func (c *Controller) drawRegion(screen *ebiten.Image, r *scene.Region) {
	rect := r.ScreenRect()
	body := c.theme.Region
	if r.Active() {
		body = c.theme.Active
	}
	fillRect(screen, rect, body)
	title := rect
	title.Height = math.Min(scene.TitleBarHeight, rect.Height)
	fillRect(screen, title, c.theme.TitleBar)
	ebitenutil.DebugPrintAt(screen, r.Title(), int(rect.X)+4, int(rect.Y)+2)
}

// ShowDebugInfo draws frame rates, each region's drag bounds and the
// ceiling of a resize in progress.
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f", fps, tps))

	for _, r := range c.scene.Regions() {
		coord := r.Coordinator()
		rect := r.ScreenRect()
		pos := r.Position()
		size := r.Size()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%.0f,%.0f %.0fx%.0f", pos.X, pos.Y, size.Width, size.Height),
			int(rect.X)+4, int(rect.Y)+int(scene.TitleBarHeight)+2)

		if b, ok := coord.DragBounds(); ok {
			strokeRect(screen, boundsRect(r, b), c.theme.Bounds)
		}
		if r.Resizing() {
			c.drawCeiling(screen, r)
		}
	}
}

// boundsRect is the area the region's rectangle may cover under b.
func boundsRect(r *scene.Region, b geom.Bounds) geom.Rect {
	origin := r.Box().ScreenRect()
	off := r.Coordinator().Offset()
	size := r.Size()
	return geom.Rect{
		X:      origin.X + off.Left + b.Left,
		Y:      origin.Y + off.Top + b.Top,
		Width:  b.Right - b.Left + size.Width,
		Height: b.Bottom - b.Top + size.Height,
	}
}

func (c *Controller) drawCeiling(screen *ebiten.Image, r *scene.Region) {
	rect := r.ScreenRect()
	dir := r.ResizeDirection()
	ceiling := r.Coordinator().MaxSize()
	parent := r.ParentSize()
	maxW, maxH := ceiling.Width.Resolve(parent.Width), ceiling.Height.Resolve(parent.Height)

	if dir.Horizontal() && !math.IsInf(maxW, 1) {
		x := rect.X + maxW
		if dir.Has(geom.Left) {
			x = rect.Right() - maxW
		}
		vector.StrokeLine(screen, float32(x), float32(rect.Y), float32(x), float32(rect.Bottom()),
			borderWidth, c.theme.Ceiling, false)
	}
	if dir.Vertical() && !math.IsInf(maxH, 1) {
		y := rect.Y + maxH
		if dir.Has(geom.Top) {
			y = rect.Bottom() - maxH
		}
		vector.StrokeLine(screen, float32(rect.X), float32(y), float32(rect.Right()), float32(y),
			borderWidth, c.theme.Ceiling, false)
	}
}

func (c *Controller) updateCursor(p geom.Point) {
	if r := c.scene.Active(); r != nil {
		if r.Resizing() {
			ebiten.SetCursorShape(resizeCursor(r.ResizeDirection()))
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeMove)
		}
		return
	}

	r := c.scene.RegionAt(p)
	if r == nil {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		return
	}
	if dir, ok := r.HandleAt(p); ok {
		ebiten.SetCursorShape(resizeCursor(dir))
	} else if r.DragArea(p) {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func resizeCursor(dir geom.Direction) ebiten.CursorShapeType {
	switch dir {
	case geom.Left, geom.Right:
		return ebiten.CursorShapeEWResize
	case geom.Top, geom.Bottom:
		return ebiten.CursorShapeNSResize
	case geom.TopLeft, geom.BottomRight:
		return ebiten.CursorShapeNWSEResize
	case geom.TopRight, geom.BottomLeft:
		return ebiten.CursorShapeNESWResize
	}
	return ebiten.CursorShapeDefault
}

func fillRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, true)
}

func strokeRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), borderWidth, clr, true)
}
