// Package config reads the scene description: window, containers and the
// draggable, resizable regions placed in them.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/rnd/geom"
	"github.com/OpticalFlyer/rnd/gesture"
	"github.com/OpticalFlyer/rnd/rnd"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
	defaultRegionWidth  = 200
	defaultRegionHeight = 150
)

// Scene is the root of a scene file.
type Scene struct {
	Window     Window      `yaml:"window"`
	Containers []Container `yaml:"containers"`
	Regions    []Region    `yaml:"regions"`
}

// Window sizes the ebiten window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// WindowName names the implicit root container that spans the window.
// Containers without a parent are placed in it.
const WindowName = "window"

// Container is a static box. X and Y are relative to Parent, or to the
// window when Parent is empty.
type Container struct {
	Name   string  `yaml:"name"`
	Parent string  `yaml:"parent,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Placement is a region's initial position, relative to its container, and
// size.
type Placement struct {
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Width  geom.Length `yaml:"width"`
	Height geom.Length `yaml:"height"`
}

// Region is one draggable, resizable rectangle.
type Region struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title,omitempty"`
	Container string `yaml:"container"`
	// Margin is a fixed placement inside the container that the drag
	// engine does not know about.
	Margin geom.Point `yaml:"margin"`

	Default Placement    `yaml:"default"`
	Bounds  rnd.Boundary `yaml:"bounds"`

	MinWidth  geom.Length `yaml:"minWidth"`
	MinHeight geom.Length `yaml:"minHeight"`
	MaxWidth  geom.Length `yaml:"maxWidth"`
	MaxHeight geom.Length `yaml:"maxHeight"`

	DragAxis        gesture.Axis `yaml:"dragAxis"`
	DragGrid        Grid         `yaml:"dragGrid"`
	ResizeGrid      Grid         `yaml:"resizeGrid"`
	DisableDragging bool         `yaml:"disableDragging"`
	// DragHandle limits dragging to the title bar.
	DragHandle bool `yaml:"dragHandle"`
	// Cancel lists areas, relative to the region's origin, where a press
	// does not start a drag.
	Cancel []geom.Rect `yaml:"cancel"`

	LockAspectRatio            AspectLock `yaml:"lockAspectRatio"`
	LockAspectRatioExtraWidth  float64    `yaml:"lockAspectRatioExtraWidth"`
	LockAspectRatioExtraHeight float64    `yaml:"lockAspectRatioExtraHeight"`

	// EnableResizing lists the enabled handles; absent enables all of them.
	EnableResizing gesture.Handles `yaml:"enableResizing"`
}

// Grid is written as a two element list, [x, y].
type Grid geom.Grid

// UnmarshalYAML reads [x, y] or a single number used for both axes.
func (g *Grid) UnmarshalYAML(unmarshal func(any) error) error {
	var step float64
	if err := unmarshal(&step); err == nil {
		*g = Grid{X: step, Y: step}
		return g.check()
	}
	var pair []float64
	if err := unmarshal(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("grid needs two steps, got %d", len(pair))
	}
	*g = Grid{X: pair[0], Y: pair[1]}
	return g.check()
}

func (g Grid) check() error {
	for _, step := range []float64{g.X, g.Y} {
		if step < 0 || !finite(step) {
			return fmt.Errorf("grid step must be a finite, non-negative number, got %s", formatFloat(step))
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AspectLock is either a boolean (keep the starting ratio) or a fixed
// width/height ratio.
type AspectLock struct {
	Locked bool
	Ratio  float64
}

// UnmarshalYAML reads true, false, or a positive number.
func (a *AspectLock) UnmarshalYAML(unmarshal func(any) error) error {
	var locked bool
	if err := unmarshal(&locked); err == nil {
		*a = AspectLock{Locked: locked}
		return nil
	}
	var ratio float64
	if err := unmarshal(&ratio); err != nil {
		return err
	}
	if ratio <= 0 || !finite(ratio) {
		return fmt.Errorf("aspect ratio must be a finite, positive number, got %s", formatFloat(ratio))
	}
	*a = AspectLock{Locked: true, Ratio: ratio}
	return nil
}

// Default returns the built-in demo scene.
func Default() *Scene {
	return &Scene{
		Window: Window{Width: defaultWindowWidth, Height: defaultWindowHeight, Title: "rnd"},
		Containers: []Container{
			{Name: "desk", X: 40, Y: 40, Width: 720, Height: 520},
			{Name: "tray", Parent: "desk", X: 360, Y: 260, Width: 320, Height: 220},
		},
		Regions: []Region{
			{
				Name:      "panel",
				Title:     "bounded to desk",
				Container: "desk",
				Margin:    geom.Point{X: 10, Y: 10},
				Default:   Placement{X: 20, Y: 20, Width: geom.Px(200), Height: geom.Px(150)},
				Bounds:    rnd.BoundToParent(),
				MinWidth:  geom.Px(80),
				MinHeight: geom.Px(60),
				MaxWidth:  geom.Pct(60),
			},
			{
				Name:            "tile",
				Title:           "bounded to tray",
				Container:       "desk",
				Default:         Placement{X: 380, Y: 280, Width: geom.Px(120), Height: geom.Px(90)},
				Bounds:          rnd.BoundToElement("tray"),
				MinWidth:        geom.Px(40),
				MinHeight:       geom.Px(40),
				DragGrid:        Grid{X: 10, Y: 10},
				ResizeGrid:      Grid{X: 10, Y: 10},
				LockAspectRatio: AspectLock{Locked: true},
			},
		},
	}
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault reads path, or returns the built-in scene when path is empty.
func LoadOrDefault(path string) (*Scene, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (s *Scene) applyDefaults() {
	if s.Window.Width <= 0 {
		s.Window.Width = defaultWindowWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = defaultWindowHeight
	}
	if s.Window.Title == "" {
		s.Window.Title = "rnd"
	}
	for i := range s.Regions {
		r := &s.Regions[i]
		if !r.Default.Width.Bounded() {
			r.Default.Width = geom.Px(defaultRegionWidth)
		}
		if !r.Default.Height.Bounded() {
			r.Default.Height = geom.Px(defaultRegionHeight)
		}
		if r.Title == "" {
			r.Title = r.Name
		}
	}
}

// ErrInvalidScene wraps every validation failure.
var ErrInvalidScene = errors.New("invalid scene")

// Validate checks names and references. Containers must be declared after
// their parent. Element boundaries are not checked: a boundary that cannot
// be found leaves the region unconstrained.
func (s *Scene) Validate() error {
	var errs []error
	containers := map[string]bool{WindowName: true}
	for _, c := range s.Containers {
		switch {
		case c.Name == "":
			errs = append(errs, fmt.Errorf("container without a name"))
		case containers[c.Name]:
			errs = append(errs, fmt.Errorf("duplicate container %q", c.Name))
		case c.Parent != "" && !containers[c.Parent]:
			errs = append(errs, fmt.Errorf("container %q: parent %q is not declared before it", c.Name, c.Parent))
		case c.Width <= 0 || c.Height <= 0:
			errs = append(errs, fmt.Errorf("container %q: size must be positive", c.Name))
		}
		containers[c.Name] = true
	}

	regions := make(map[string]bool, len(s.Regions))
	for _, r := range s.Regions {
		switch {
		case r.Name == "":
			errs = append(errs, fmt.Errorf("region without a name"))
		case regions[r.Name] || containers[r.Name]:
			errs = append(errs, fmt.Errorf("duplicate name %q", r.Name))
		case !containers[r.Container]:
			errs = append(errs, fmt.Errorf("region %q: unknown container %q", r.Name, r.Container))
		}
		for _, d := range r.EnableResizing {
			if !d.Valid() {
				errs = append(errs, fmt.Errorf("region %q: invalid resize handle %s", r.Name, d))
			}
		}
		for _, c := range r.Cancel {
			if c.Width <= 0 || c.Height <= 0 || !finite(c.X+c.Y+c.Width+c.Height) {
				errs = append(errs, fmt.Errorf("region %q: cancel area %+v must have a finite, positive size", r.Name, c))
			}
		}
		regions[r.Name] = true
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScene, errors.Join(errs...))
}

// Boundary returns the region's boundary with override applied when it is
// non-empty.
func (r Region) Boundary(override string) rnd.Boundary {
	if override != "" {
		return rnd.ParseBoundary(override)
	}
	return r.Bounds
}
