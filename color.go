package colorgrad

import (
	"fmt"
	"image/color"

	"github.com/gogpu/colorgrad/internal/colorspace"
)

// Color represents a color with red, green, blue, and alpha components.
// Components are sRGB-encoded and normalized to [0, 1]; alpha is linear.
// Color is an immutable value type and may be copied and shared freely.
type Color struct {
	R, G, B, A float64
}

// NewColor creates a color from sRGB components in [0, 1].
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Rgb creates an opaque color from sRGB components in [0, 1].
func Rgb(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Rgb8 creates a color from 8-bit RGBA components.
func Rgb8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromLinearRGB creates a color from linear-light RGB components.
func FromLinearRGB(r, g, b, a float64) Color {
	return Color{
		R: colorspace.LinearToSRGB(r),
		G: colorspace.LinearToSRGB(g),
		B: colorspace.LinearToSRGB(b),
		A: a,
	}
}

// FromHSV creates a color from hue [0, 360), saturation and value in [0, 1].
func FromHSV(h, s, v, a float64) Color {
	r, g, b := colorspace.HSVToRGB(h, s, v)
	return Color{R: r, G: g, B: b, A: a}
}

// FromHSL creates a color from hue [0, 360), saturation and lightness in [0, 1].
func FromHSL(h, s, l, a float64) Color {
	r, g, b := colorspace.HSLToRGB(h, s, l)
	return Color{R: r, G: g, B: b, A: a}
}

// FromHWB creates a color from hue [0, 360), whiteness and blackness in [0, 1].
func FromHWB(h, w, b, a float64) Color {
	hh, s, v := colorspace.HWBToHSV(h, w, b)
	return FromHSV(hh, s, v, a)
}

// FromLab creates a color from CIE L*a*b* components (D65 white point).
// Out-of-gamut results are clamped to [0, 1].
func FromLab(l, a, b, alpha float64) Color {
	x, y, z := colorspace.LabToXYZ(l, a, b)
	lr, lg, lb := colorspace.XYZToLinearRGB(x, y, z)
	return Color{
		R: colorspace.Clamp(colorspace.LinearToSRGB(lr)),
		G: colorspace.Clamp(colorspace.LinearToSRGB(lg)),
		B: colorspace.Clamp(colorspace.LinearToSRGB(lb)),
		A: alpha,
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// RGBA returns premultiplied components.
	af := float64(a) / 65535
	return Color{
		R: float64(r) / 65535 / af,
		G: float64(g) / 65535 / af,
		B: float64(b) / 65535 / af,
		A: af,
	}
}

// RGBA implements the standard color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: uint16(clamp01(c.R)*65535 + 0.5),
		G: uint16(clamp01(c.G)*65535 + 0.5),
		B: uint16(clamp01(c.B)*65535 + 0.5),
		A: uint16(clamp01(c.A)*65535 + 0.5),
	}.RGBA()
}

// RGBA8 returns the color as 8-bit RGBA components, rounded and clamped.
func (c Color) RGBA8() [4]uint8 {
	return [4]uint8{
		uint8(clamp01(c.R)*255 + 0.5),
		uint8(clamp01(c.G)*255 + 0.5),
		uint8(clamp01(c.B)*255 + 0.5),
		uint8(clamp01(c.A)*255 + 0.5),
	}
}

// LinearRGB returns the color's linear-light RGB components.
func (c Color) LinearRGB() (r, g, b, a float64) {
	return colorspace.SRGBToLinear(c.R),
		colorspace.SRGBToLinear(c.G),
		colorspace.SRGBToLinear(c.B),
		c.A
}

// HSV returns the color as hue [0, 360), saturation and value in [0, 1].
func (c Color) HSV() (h, s, v, a float64) {
	h, s, v = colorspace.RGBToHSV(c.R, c.G, c.B)
	return h, s, v, c.A
}

// HSL returns the color as hue [0, 360), saturation and lightness in [0, 1].
func (c Color) HSL() (h, s, l, a float64) {
	h, s, l = colorspace.RGBToHSL(c.R, c.G, c.B)
	return h, s, l, c.A
}

// HWB returns the color as hue [0, 360), whiteness and blackness in [0, 1].
func (c Color) HWB() (h, w, b, a float64) {
	hh, s, v := colorspace.RGBToHSV(c.R, c.G, c.B)
	h, w, b = colorspace.HSVToHWB(hh, s, v)
	return h, w, b, c.A
}

// Lab returns the color as CIE L*a*b* components (D65 white point).
func (c Color) Lab() (l, a, b, alpha float64) {
	lr, lg, lb, _ := c.LinearRGB()
	x, y, z := colorspace.LinearRGBToXYZ(lr, lg, lb)
	l, a, b = colorspace.XYZToLab(x, y, z)
	return l, a, b, c.A
}

// Clamp returns the color with all components restricted to [0, 1].
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// HexString formats the color as "#rrggbb", or "#rrggbbaa" when the color
// is not fully opaque.
func (c Color) HexString() string {
	v := c.RGBA8()
	if v[3] < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", v[0], v[1], v[2], v[3])
	}
	return fmt.Sprintf("#%02x%02x%02x", v[0], v[1], v[2])
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = Rgb(0, 0, 0)
	White       = Rgb(1, 1, 1)
	Red         = Rgb(1, 0, 0)
	Green       = Rgb(0, 1, 0)
	Blue        = Rgb(0, 0, 1)
	Yellow      = Rgb(1, 1, 0)
	Cyan        = Rgb(0, 1, 1)
	Magenta     = Rgb(1, 0, 1)
	Transparent = NewColor(0, 0, 0, 0)
)
