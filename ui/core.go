package ui

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	panelAlpha   = 200
	previewAlpha = 84
	borderWidth  = 1
)

// Theme holds the colors the controller draws with.
type Theme struct {
	Background color.Color
	Box        color.Color
	BoxBorder  color.Color
	Region     color.Color
	Active     color.Color
	TitleBar   color.Color
	Bounds     color.Color
	Ceiling    color.Color
}

// DefaultTheme is used when a controller is created without one.
var DefaultTheme = Theme{
	Background: colornames.Whitesmoke,
	Box:        withAlpha(colornames.Lightsteelblue, previewAlpha),
	BoxBorder:  colornames.Slategray,
	Region:     withAlpha(colornames.Dimgray, panelAlpha),
	Active:     withAlpha(colornames.Steelblue, panelAlpha),
	TitleBar:   withAlpha(colornames.Darkslategray, panelAlpha),
	Bounds:     colornames.Tomato,
	Ceiling:    colornames.Gold,
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
