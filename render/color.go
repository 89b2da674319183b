package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ball-game/parameter"
)

// RGB is the renderer's color type
type RGB = parameter.RGB

var (
	RgbBackground = RGB{R: 16, G: 16, B: 24}
	RgbDefaultFg  = RGB{R: 200, G: 200, B: 200}
	RgbDim        = RGB{R: 120, G: 120, B: 130}
)

// toTcell converts to a 24-bit tcell color
func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds a tcell style from foreground and background
func Style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
}

// Blend mixes a toward b by t in [0,1], interpolated in CIE-Lab for even perceived steps
func Blend(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}
