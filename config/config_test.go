package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/rnd/geom"
	"github.com/OpticalFlyer/rnd/gesture"
)

const sceneYAML = `
window: {width: 1024, height: 768, title: demo}
containers:
  - {name: desk, x: 40, y: 40, width: 600, height: 400}
  - {name: tray, parent: desk, x: 20, y: 200, width: 300, height: 180}
regions:
  - name: panel
    container: desk
    margin: {x: 10, y: 5}
    default: {x: 20, y: 30, width: 160, height: "50%"}
    bounds: parent
    maxWidth: "50%"
    maxHeight: 300px
    minWidth: 60
    dragAxis: x
    dragGrid: [5, 10]
    resizeGrid: 20
    lockAspectRatio: 1.5
    lockAspectRatioExtraHeight: 20
    enableResizing: [right, bottom, bottomRight]
    cancel: [{x: 0, y: 20, width: 160, height: 40}]
  - name: tile
    container: desk
    bounds: "#tray"
    lockAspectRatio: true
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, Window{Width: 1024, Height: 768, Title: "demo"}, s.Window)
	require.Len(t, s.Containers, 2)
	assert.Equal(t, "desk", s.Containers[1].Parent)

	require.Len(t, s.Regions, 2)
	p := s.Regions[0]
	assert.Equal(t, geom.Point{X: 10, Y: 5}, p.Margin)
	assert.Equal(t, Placement{X: 20, Y: 30, Width: geom.Px(160), Height: geom.Pct(50)}, p.Default)
	assert.Equal(t, "parent", p.Bounds.String())
	assert.Equal(t, geom.Pct(50), p.MaxWidth)
	assert.Equal(t, geom.Px(300), p.MaxHeight)
	assert.Equal(t, geom.Px(60), p.MinWidth)
	assert.Equal(t, geom.None, p.MinHeight)
	assert.Equal(t, gesture.AxisX, p.DragAxis)
	assert.Equal(t, Grid{X: 5, Y: 10}, p.DragGrid)
	assert.Equal(t, Grid{X: 20, Y: 20}, p.ResizeGrid)
	assert.Equal(t, AspectLock{Locked: true, Ratio: 1.5}, p.LockAspectRatio)
	assert.Equal(t, 20.0, p.LockAspectRatioExtraHeight)
	assert.Equal(t, gesture.Handles{geom.Right, geom.Bottom, geom.BottomRight}, p.EnableResizing)
	assert.Equal(t, []geom.Rect{{Y: 20, Width: 160, Height: 40}}, p.Cancel)

	tile := s.Regions[1]
	assert.Equal(t, "tray", tile.Bounds.Name())
	assert.Equal(t, AspectLock{Locked: true}, tile.LockAspectRatio)
	assert.Nil(t, tile.EnableResizing)
	assert.Equal(t, "tile", tile.Title)
	assert.Equal(t, geom.Px(defaultRegionWidth), tile.Default.Width)
}

func TestParseAppliesWindowDefaults(t *testing.T) {
	s, err := Parse([]byte("containers: [{name: a, width: 10, height: 10}]\n"))
	require.NoError(t, err)
	assert.Equal(t, Window{Width: defaultWindowWidth, Height: defaultWindowHeight, Title: "rnd"}, s.Window)
}

func TestParseRejectsMalformedUnits(t *testing.T) {
	src := `
containers: [{name: desk, width: 100, height: 100}]
regions:
  - {name: r, container: desk, maxWidth: 12em}
`
	var unitErr *geom.UnitError
	_, err := Parse([]byte(src))
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "12em", unitErr.Value)
}

func TestParseRejectsBadValues(t *testing.T) {
	for name, src := range map[string]string{
		"axis":          "{name: r, container: desk, dragAxis: diagonal}",
		"handle":        "{name: r, container: desk, enableResizing: [middle]}",
		"grid":          "{name: r, container: desk, dragGrid: [1, 2, 3]}",
		"ratio":         "{name: r, container: desk, lockAspectRatio: -2}",
		"nan ratio":     "{name: r, container: desk, lockAspectRatio: .nan}",
		"inf ratio":     "{name: r, container: desk, lockAspectRatio: .inf}",
		"nan grid":      "{name: r, container: desk, dragGrid: .nan}",
		"inf grid step": "{name: r, container: desk, resizeGrid: [10, .inf]}",
		"nan max width": "{name: r, container: desk, maxWidth: .nan}",
		"inf maxHeight": "{name: r, container: desk, maxHeight: .inf}",
		"empty cancel":  "{name: r, container: desk, cancel: [{x: 0, y: 0, width: 0, height: 5}]}",
	} {
		t.Run(name, func(t *testing.T) {
			doc := "containers: [{name: desk, width: 10, height: 10}]\nregions: [" + src + "]\n"
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
	}{
		{
			name:  "unnamed container",
			scene: Scene{Containers: []Container{{Width: 1, Height: 1}}},
		},
		{
			name: "duplicate container",
			scene: Scene{Containers: []Container{
				{Name: "a", Width: 1, Height: 1},
				{Name: "a", Width: 1, Height: 1},
			}},
		},
		{
			name: "parent declared later",
			scene: Scene{Containers: []Container{
				{Name: "child", Parent: "root", Width: 1, Height: 1},
				{Name: "root", Width: 1, Height: 1},
			}},
		},
		{
			name:  "empty container",
			scene: Scene{Containers: []Container{{Name: "a"}}},
		},
		{
			name: "unknown container",
			scene: Scene{
				Containers: []Container{{Name: "a", Width: 1, Height: 1}},
				Regions:    []Region{{Name: "r", Container: "b"}},
			},
		},
		{
			name:  "container named after the window",
			scene: Scene{Containers: []Container{{Name: WindowName, Width: 1, Height: 1}}},
		},
		{
			name: "region shares a container name",
			scene: Scene{
				Containers: []Container{{Name: "a", Width: 1, Height: 1}},
				Regions:    []Region{{Name: "a", Container: "a"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.scene.Validate(), ErrInvalidScene)
		})
	}
}

func TestValidateIgnoresMissingBoundary(t *testing.T) {
	s, err := Parse([]byte(`
containers: [{name: desk, width: 100, height: 100}]
regions: [{name: r, container: desk, bounds: "#nowhere"}]
`))
	require.NoError(t, err)
	assert.Equal(t, "nowhere", s.Regions[0].Bounds.Name())
}

func TestRegionsMayLiveInTheWindow(t *testing.T) {
	s, err := Parse([]byte("regions: [{name: r, container: window, bounds: parent}]\n"))
	require.NoError(t, err)
	assert.Equal(t, WindowName, s.Regions[0].Container)
}

func TestDefaultSceneIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Regions, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	s, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestRegionBoundaryOverride(t *testing.T) {
	r := Default().Regions[0]
	assert.Equal(t, "parent", r.Boundary("").String())
	assert.Equal(t, "#tray", r.Boundary("#tray").String())
	assert.False(t, r.Boundary("none").Configured())
}
