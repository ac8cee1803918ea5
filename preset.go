package colorgrad

import "math"

// Preset gradients. All presets have domain [0, 1] and are immutable
// values; they combine freely with Sharp, Inverse, and the spread modes.

// sinebowEvaluator is d3's sinebow: three phase-shifted squared sines.
type sinebowEvaluator struct{}

func (sinebowEvaluator) at(t float64) Color {
	t = (0.5 - t) * math.Pi
	r := math.Sin(t)
	g := math.Sin(t + math.Pi/3)
	b := math.Sin(t + math.Pi*2/3)
	return Rgb(clamp01(r*r), clamp01(g*g), clamp01(b*b))
}

// Sinebow returns the sinebow gradient.
func Sinebow() Gradient {
	return newGradient(sinebowEvaluator{}, 0, 1)
}

// turboEvaluator is Google's Turbo colormap, as a polynomial fit.
type turboEvaluator struct{}

func (turboEvaluator) at(t float64) Color {
	r := math.Round(34.61 + t*(1172.33-t*(10793.56-t*(33300.12-t*(38394.49-t*14825.05)))))
	g := math.Round(23.31 + t*(557.33+t*(1225.33-t*(3574.96-t*(1073.77+t*707.56)))))
	b := math.Round(27.2 + t*(3211.1-t*(15327.97-t*(27814.0-t*(22569.18-t*6838.66)))))
	return Rgb(clamp01(r/255), clamp01(g/255), clamp01(b/255))
}

// Turbo returns the Turbo colormap gradient.
func Turbo() Gradient {
	return newGradient(turboEvaluator{}, 0, 1)
}

// cividisEvaluator is the Cividis colormap, as a polynomial fit.
type cividisEvaluator struct{}

func (cividisEvaluator) at(t float64) Color {
	r := math.Round(-4.54 - t*(35.34-t*(2381.73-t*(6402.7-t*(7024.72-t*2710.57)))))
	g := math.Round(32.49 + t*(170.73+t*(52.82-t*(131.46-t*(176.58-t*67.37)))))
	b := math.Round(81.24 + t*(442.36-t*(2482.43-t*(6167.24-t*(6614.94-t*2475.67)))))
	return Rgb(clamp01(r/255), clamp01(g/255), clamp01(b/255))
}

// Cividis returns the Cividis colormap gradient.
func Cividis() Gradient {
	return newGradient(cividisEvaluator{}, 0, 1)
}

// cubehelix is a point in Green's cubehelix color system.
type cubehelix struct {
	h, s, l float64
}

func (c cubehelix) toColor() Color {
	h := (c.h + 120) * (math.Pi / 180)
	l := c.l
	a := c.s * l * (1 - l)

	cosh := math.Cos(h)
	sinh := math.Sin(h)

	return Rgb(
		clamp01(l-a*(0.14861*cosh-1.78277*sinh)),
		clamp01(l-a*(0.29227*cosh+0.90649*sinh)),
		clamp01(l+a*(1.97294*cosh)),
	)
}

func (c cubehelix) interpolate(other cubehelix, t float64) cubehelix {
	return cubehelix{
		h: c.h + t*(other.h-c.h),
		s: c.s + t*(other.s-c.s),
		l: c.l + t*(other.l-c.l),
	}
}

// cubehelixEvaluator interpolates between two cubehelix endpoints.
type cubehelixEvaluator struct {
	start, end cubehelix
}

func (e cubehelixEvaluator) at(t float64) Color {
	return e.start.interpolate(e.end, t).toColor()
}

// CubehelixDefault returns Green's default cubehelix gradient.
func CubehelixDefault() Gradient {
	return newGradient(cubehelixEvaluator{
		start: cubehelix{h: 300, s: 0.5, l: 0},
		end:   cubehelix{h: -240, s: 0.5, l: 1},
	}, 0, 1)
}

// Warm returns a short warm-hued cubehelix gradient.
func Warm() Gradient {
	return newGradient(cubehelixEvaluator{
		start: cubehelix{h: -100, s: 0.75, l: 0.35},
		end:   cubehelix{h: 80, s: 1.5, l: 0.8},
	}, 0, 1)
}

// Cool returns a short cool-hued cubehelix gradient.
func Cool() Gradient {
	return newGradient(cubehelixEvaluator{
		start: cubehelix{h: 260, s: 0.75, l: 0.35},
		end:   cubehelix{h: 80, s: 1.5, l: 0.8},
	}, 0, 1)
}

// rainbowEvaluator is the d3 cubehelix rainbow.
type rainbowEvaluator struct{}

func (rainbowEvaluator) at(t float64) Color {
	ts := math.Abs(t - 0.5)
	return cubehelix{
		h: 360*t - 100,
		s: 1.5 - 1.5*ts,
		l: 0.8 - 0.9*ts,
	}.toColor()
}

// Rainbow returns the cubehelix rainbow gradient.
func Rainbow() Gradient {
	return newGradient(rainbowEvaluator{}, 0, 1)
}

// buildPreset makes a basis-spline gradient through packed 0xRRGGBB colors
// at evenly spaced positions.
func buildPreset(hexes []uint32) Gradient {
	colors := make([]Color, len(hexes))
	for i, h := range hexes {
		colors[i] = Rgb8(uint8(h>>16), uint8(h>>8), uint8(h), 255)
	}
	positions := linspace(0, 1, len(colors))
	return newGradient(newBasisEvaluator(colors, positions, BlendRGB), 0, 1)
}

// Viridis returns the Viridis colormap gradient.
func Viridis() Gradient {
	return buildPreset([]uint32{0x440154, 0x482777, 0x3f4a8a, 0x31678e, 0x26838f,
		0x1f9d8a, 0x6cce5a, 0xb6de2b, 0xfee825})
}

// Inferno returns the Inferno colormap gradient.
func Inferno() Gradient {
	return buildPreset([]uint32{0x000004, 0x170b3a, 0x420a68, 0x6b176e, 0x932667,
		0xbb3654, 0xdd513a, 0xf3771a, 0xfca50a, 0xf6d644, 0xfcffa4})
}

// Magma returns the Magma colormap gradient.
func Magma() Gradient {
	return buildPreset([]uint32{0x000004, 0x140e37, 0x3b0f70, 0x641a80, 0x8c2981,
		0xb63679, 0xde4968, 0xf66f5c, 0xfe9f6d, 0xfece91, 0xfcfdbf})
}

// Plasma returns the Plasma colormap gradient.
func Plasma() Gradient {
	return buildPreset([]uint32{0x0d0887, 0x42039d, 0x6a00a8, 0x900da3, 0xb12a90,
		0xcb4678, 0xe16462, 0xf1834b, 0xfca636, 0xfccd25, 0xf0f921})
}

// Spectral returns the diverging Spectral colormap gradient.
func Spectral() Gradient {
	return buildPreset([]uint32{0x9e0142, 0xd53e4f, 0xf46d43, 0xfdae61, 0xfee08b,
		0xffffbf, 0xe6f598, 0xabdda4, 0x66c2a5, 0x3288bd, 0x5e4fa2})
}

// Blues returns the sequential Blues colormap gradient.
func Blues() Gradient {
	return buildPreset([]uint32{0xf7fbff, 0xdeebf7, 0xc6dbef, 0x9ecae1, 0x6baed6,
		0x4292c6, 0x2171b5, 0x08519c, 0x08306b})
}

// Greys returns the sequential Greys colormap gradient.
func Greys() Gradient {
	return buildPreset([]uint32{0xffffff, 0xf0f0f0, 0xd9d9d9, 0xbdbdbd, 0x969696,
		0x737373, 0x525252, 0x252525, 0x000000})
}

// RdYlGn returns the diverging red-yellow-green colormap gradient.
func RdYlGn() Gradient {
	return buildPreset([]uint32{0xa50026, 0xd73027, 0xf46d43, 0xfdae61, 0xfee08b,
		0xffffbf, 0xd9ef8b, 0xa6d96a, 0x66bd63, 0x1a9850, 0x006837})
}
