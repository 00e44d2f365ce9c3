// Package scene holds the boxes and regions described by a scene file and
// routes pointer input to them. It is independent of the window system; the
// ui package reads the pointer and draws what is here.
package scene

import (
	"fmt"

	"github.com/OpticalFlyer/rnd/config"
	"github.com/OpticalFlyer/rnd/geom"
	"github.com/OpticalFlyer/rnd/gesture"
	"github.com/OpticalFlyer/rnd/log"
	"github.com/OpticalFlyer/rnd/rnd"
)

// Scene is the set of boxes and regions in a window. Regions are kept in
// paint order; the last one is on top.
type Scene struct {
	root    *Box
	boxes   []*Box
	regions []*Region
	byName  map[string]rnd.Element

	active *Region

	// OnSettle, when set, is called after a region is dropped or resized.
	OnSettle func(r *Region)
}

// New returns an empty scene whose root box spans a window of the given size.
func New(width, height float64) *Scene {
	root := NewBox(config.WindowName, geom.Rect{Width: width, Height: height}, nil)
	return &Scene{
		root:   root,
		boxes:  []*Box{root},
		byName: map[string]rnd.Element{config.WindowName: root},
	}
}

// Build creates the scene described by cfg. A non-empty boundsOverride
// replaces every region's boundary.
func Build(cfg *config.Scene, boundsOverride string) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := New(float64(cfg.Window.Width), float64(cfg.Window.Height))

	boxes := map[string]*Box{config.WindowName: s.root}
	for _, c := range cfg.Containers {
		parent := s.root
		if c.Parent != "" {
			parent = boxes[c.Parent]
		}
		b := NewBox(c.Name, geom.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}, parent)
		boxes[c.Name] = b
		s.AddBox(b)
	}

	for _, rc := range cfg.Regions {
		box, ok := boxes[rc.Container]
		if !ok {
			return nil, fmt.Errorf("region %q: unknown container %q", rc.Name, rc.Container)
		}
		s.AddRegion(newRegion(s, box, rc, rc.Boundary(boundsOverride)))
	}
	for _, r := range s.regions {
		b := r.bounds
		if name := b.Name(); name != "" && s.Lookup(name) == nil {
			log.WarningLog.Printf("region %q: boundary %s not found, dragging is unconstrained", r.name, b)
			continue
		}
		if el := s.boundary(r); el != nil && !el.ScreenRect().ContainsRect(r.ScreenRect()) {
			log.WarningLog.Printf("region %q: starts outside its boundary %s", r.name, b)
		}
	}
	log.InfoLog.Printf("scene: %d containers, %d regions", len(cfg.Containers), len(cfg.Regions))
	return s, nil
}

func newRegion(s *Scene, box *Box, rc config.Region, bounds rnd.Boundary) *Region {
	r := &Region{
		name:       rc.Name,
		title:      rc.Title,
		box:        box,
		scene:      s,
		margin:     rc.Margin,
		dragHandle: rc.DragHandle,
		cancel:     rc.Cancel,
		bounds:     bounds,
	}

	dragOpts := gesture.DraggableOptions{
		Axis:     rc.DragAxis,
		Grid:     geom.Grid(rc.DragGrid),
		Disabled: rc.DisableDragging,
	}
	resizeOpts := gesture.ResizableOptions{
		Enable:    rc.EnableResizing,
		MinWidth:  rc.MinWidth,
		MinHeight: rc.MinHeight,
		Grid:      geom.Grid(rc.ResizeGrid),
		Aspect: gesture.AspectRatio{
			Locked:      rc.LockAspectRatio.Locked,
			Ratio:       rc.LockAspectRatio.Ratio,
			ExtraWidth:  rc.LockAspectRatioExtraWidth,
			ExtraHeight: rc.LockAspectRatioExtraHeight,
		},
		ParentSize: r.ParentSize,
	}
	r.drag = gesture.NewDraggable(geom.Point{X: rc.Default.X, Y: rc.Default.Y}, dragOpts)
	r.resize = gesture.NewResizable(rc.Default.Width, rc.Default.Height, resizeOpts)
	r.wire(dragOpts, resizeOpts)

	r.coord = rnd.New(rnd.Config{
		Bounds:    bounds,
		MaxWidth:  rc.MaxWidth,
		MaxHeight: rc.MaxHeight,
		Default: &rnd.Placement{
			X:      rc.Default.X,
			Y:      rc.Default.Y,
			Width:  rc.Default.Width,
			Height: rc.Default.Height,
		},
		Callbacks: r.callbacks(),
	}, r, r.drag, r.resize)
	r.coord.Mount()
	return r
}

// AddBox adds a box to the scene. Boxes are painted in the order added.
func (s *Scene) AddBox(b *Box) {
	s.boxes = append(s.boxes, b)
	s.byName[b.Name()] = b
}

// AddRegion adds a region on top of the others.
func (s *Scene) AddRegion(r *Region) {
	r.scene = s
	s.regions = append(s.regions, r)
	s.byName[r.Name()] = r
}

// Root returns the box spanning the window.
func (s *Scene) Root() *Box { return s.root }

// Boxes returns every box in paint order, root first.
func (s *Scene) Boxes() []*Box { return s.boxes }

// Regions returns every region in paint order, top-most last.
func (s *Scene) Regions() []*Region { return s.regions }

// Region returns the region called name.
func (s *Scene) Region(name string) (*Region, bool) {
	r, ok := s.byName[name].(*Region)
	return r, ok
}

// Lookup finds a box or region by name. It returns nil when nothing is
// called name.
func (s *Scene) Lookup(name string) rnd.Element {
	el, ok := s.byName[name]
	if !ok {
		return nil
	}
	return el
}

// SetFree lifts every region's boundary while free is set, and restores the
// configured ones otherwise.
func (s *Scene) SetFree(free bool) {
	for _, r := range s.regions {
		if free {
			r.SetBounds(rnd.Boundary{})
		} else {
			r.SetBounds(r.bounds)
		}
	}
	log.Debug("scene: free dragging %t", free)
}

// boundary returns the element r's configured boundary names, or nil.
func (s *Scene) boundary(r *Region) rnd.Element {
	switch {
	case !r.bounds.Configured():
		return nil
	case r.bounds.Name() != "":
		return s.Lookup(r.bounds.Name())
	case r.box != nil:
		return r.box
	}
	return nil
}

// Resize follows a change of the window size.
func (s *Scene) Resize(width, height float64) {
	s.root.SetFrame(geom.Rect{Width: width, Height: height})
}

// Active returns the region holding the pointer, if any.
func (s *Scene) Active() *Region { return s.active }

// RegionAt returns the top-most region under p.
func (s *Scene) RegionAt(p geom.Point) *Region {
	for i := len(s.regions) - 1; i >= 0; i-- {
		if s.regions[i].Hit(p) {
			return s.regions[i]
		}
	}
	return nil
}

// Press delivers a pointer press to the top-most region that takes it and
// raises that region. It reports whether the press was consumed.
func (s *Scene) Press(p geom.Point) bool {
	e := gesture.NewEvent(p)
	for i := len(s.regions) - 1; i >= 0; i-- {
		r := s.regions[i]
		if !r.Press(e) {
			continue
		}
		if r.Active() {
			s.active = r
		}
		s.raise(i)
		return true
	}
	return e.Stopped()
}

// Move delivers a pointer move to the active region.
func (s *Scene) Move(p geom.Point) {
	if s.active != nil {
		s.active.Move(gesture.NewEvent(p))
	}
}

// Release ends the active region's gesture.
func (s *Scene) Release(p geom.Point) {
	if s.active == nil {
		return
	}
	r := s.active
	s.active = nil
	r.Release(gesture.NewEvent(p))
}

func (s *Scene) raise(i int) {
	r := s.regions[i]
	copy(s.regions[i:], s.regions[i+1:])
	s.regions[len(s.regions)-1] = r
}

func (s *Scene) settled(r *Region) {
	if s.OnSettle != nil {
		s.OnSettle(r)
	}
}
