package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Length
	}{
		{name: "bare number", in: "120", want: Px(120)},
		{name: "pixels", in: "300px", want: Px(300)},
		{name: "fractional pixels", in: " 12.5px ", want: Px(12.5)},
		{name: "percent", in: "50%", want: Pct(50)},
		{name: "none", in: "none", want: None},
		{name: "auto", in: "auto", want: None},
		{name: "empty", in: "", want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLengthRejectsMalformedUnits(t *testing.T) {
	for _, in := range []string{"12em", "px", "%", "abc", "-5px", "10 %%", "NaN", "Infpx", "inf%"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseLength(in)
			var unitErr *UnitError
			require.ErrorAs(t, err, &unitErr)
			assert.Equal(t, in, unitErr.Value)
		})
	}
}

func TestLengthResolve(t *testing.T) {
	assert.Equal(t, 200.0, Pct(50).Resolve(400))
	assert.Equal(t, 80.0, Px(80).Resolve(400))
	assert.True(t, math.IsInf(None.Resolve(400), 1))
	assert.False(t, None.Bounded())
	assert.True(t, Pct(0).Bounded())
}

func TestLengthString(t *testing.T) {
	assert.Equal(t, "50%", Pct(50).String())
	assert.Equal(t, "12.5px", Px(12.5).String())
	assert.Equal(t, "none", None.String())
}

func TestLengthUnmarshalYAML(t *testing.T) {
	var doc struct {
		A Length `yaml:"a"`
		B Length `yaml:"b"`
		C Length `yaml:"c"`
		D Length `yaml:"d"`
	}
	src := "a: 120\nb: \"50%\"\nc: 300px\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, Px(120), doc.A)
	assert.Equal(t, Pct(50), doc.B)
	assert.Equal(t, Px(300), doc.C)
	assert.Equal(t, None, doc.D)

	for _, bad := range []string{"3em", ".nan", ".inf", "-.inf", "-4"} {
		t.Run(bad, func(t *testing.T) {
			err := yaml.Unmarshal([]byte("a: "+bad+"\n"), &doc)
			var unitErr *UnitError
			assert.ErrorAs(t, err, &unitErr)
		})
	}
}

func TestDirection(t *testing.T) {
	assert.True(t, TopLeft.Has(Left))
	assert.True(t, TopLeft.Has(Top))
	assert.False(t, TopLeft.Has(Right))
	assert.False(t, Top.Has(TopLeft))
	assert.False(t, Top.Has(0))
	assert.True(t, BottomRight.Horizontal())
	assert.True(t, BottomRight.Vertical())
	assert.False(t, Bottom.Horizontal())
	assert.Equal(t, "bottomLeft", BottomLeft.String())
	assert.False(t, Direction(Left|Right).Valid())
	assert.Len(t, Directions, 8)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"topLeft":      TopLeft,
		"top-left":     TopLeft,
		"BOTTOM_RIGHT": BottomRight,
		"left":         Left,
	} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDirection("middle")
	assert.Error(t, err)
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Top: 0, Right: 100, Bottom: 50, Left: -10}
	assert.Equal(t, Point{X: 100, Y: 0}, b.Clamp(Point{X: 140, Y: -3}))
	assert.Equal(t, Point{X: -10, Y: 50}, b.Clamp(Point{X: -40, Y: 90}))
	assert.Equal(t, Point{X: 5, Y: 5}, b.Clamp(Point{X: 5, Y: 5}))

	// An inverted range pins to the lower bound.
	inverted := Bounds{Left: 10, Right: 0}
	assert.Equal(t, 10.0, inverted.Clamp(Point{X: 5}).X)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.True(t, r.Contains(Point{X: 10, Y: 60}))
	assert.False(t, r.Contains(Point{X: 9, Y: 30}))
	assert.True(t, r.ContainsRect(Rect{X: 15, Y: 25, Width: 5, Height: 5}))
	assert.False(t, r.ContainsRect(Rect{X: 15, Y: 25, Width: 50, Height: 5}))
	assert.True(t, Rect{Width: 0, Height: 10}.Empty())
	assert.Equal(t, Rect{X: 11, Y: 18, Width: 30, Height: 40}, r.Translate(Point{X: 1, Y: -2}))
}
