package fractal

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are float32 to match
// the GPU shader's f32 arithmetic exactly.
type RGBA struct {
	R, G, B, A float32
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return uint32(clampUnit(c.R) * 65535),
		uint32(clampUnit(c.G) * 65535),
		uint32(clampUnit(c.B) * 65535),
		uint32(clampUnit(c.A) * 65535)
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Common colors.
var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
)

// HSV converts a hue/saturation/value triple to an opaque RGBA color using
// the standard sextant formula. Hue wraps at 1.0: the [0, 1) range covers
// the full circle in six 60-degree segments, each blending two of the three
// channels. Saturation and value are clamped to [0, 1].
func HSV(h, s, v float32) RGBA {
	h -= math32.Floor(h) // wrap to [0, 1)
	s = clampUnit(s)
	v = clampUnit(v)

	i := int(h * 6)
	f := h*6 - float32(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch i % 6 {
	case 0:
		return RGBA{v, t, p, 1}
	case 1:
		return RGBA{q, v, p, 1}
	case 2:
		return RGBA{p, v, t, 1}
	case 3:
		return RGBA{p, q, v, 1}
	case 4:
		return RGBA{t, p, v, 1}
	default:
		return RGBA{v, p, q, 1}
	}
}

// clampUnit clamps v to [0, 1].
func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp255 clamps v to [0, 255] for 8-bit conversion.
func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
