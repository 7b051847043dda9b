package system

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	neutralColor  = colorful.Color{R: 0.45, G: 0.47, B: 0.5}
	gainColor     = colorful.Color{R: 0.09, G: 0.78, B: 0.35}
	lossColor     = colorful.Color{R: 0.88, G: 0.16, B: 0.2}
	highlightTint = colorful.Color{R: 1, G: 1, B: 1}
)

// changeSaturation is the percent move at which a bubble reaches its full
// gain or loss color.
const changeSaturation = 25.0

// ChangeColor maps a percent change to the bubble's rim color.
func ChangeColor(change float64) color.RGBA {
	if change == 0 || math.IsNaN(change) {
		return toRGBA(neutralColor, 255)
	}
	target := gainColor
	if change < 0 {
		target = lossColor
	}
	t := math.Min(math.Abs(change)/changeSaturation, 1)
	return toRGBA(neutralColor.BlendLab(target, 0.35+0.65*t).Clamped(), 255)
}

// gradientStop blends the rim color toward a translucent white center; t
// runs from 0 at the rim to 1 at the center.
func gradientStop(rim color.RGBA, t float64) color.RGBA {
	base, _ := colorful.MakeColor(rim)
	alpha := uint8(255 - t*(255-178))
	return toRGBA(base.BlendRgb(highlightTint, t*0.7).Clamped(), alpha)
}

func toRGBA(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.RGB255()
	// color.RGBA is alpha-premultiplied.
	a := float64(alpha) / 255
	return color.RGBA{R: uint8(float64(r) * a), G: uint8(float64(g) * a), B: uint8(float64(b) * a), A: alpha}
}
