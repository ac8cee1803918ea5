package colorgrad

import "math"

// evaluator computes the color at a position inside the gradient's domain.
// Implementations are immutable after construction and safe for concurrent
// use. The position passed to at is already mapped into [dmin, dmax].
type evaluator interface {
	at(t float64) Color
}

// Gradient is an immutable color gradient over a scalar domain.
//
// A Gradient is created by GradientBuilder.Build, ParseGGR, or one of the
// preset constructors, and is never mutated afterwards. It holds no external
// resources; evaluation is a pure computation, so a single Gradient may be
// shared and evaluated by any number of goroutines without synchronization.
type Gradient struct {
	eval       evaluator
	dmin, dmax float64
}

// newGradient wraps an evaluator with its domain.
func newGradient(eval evaluator, dmin, dmax float64) Gradient {
	return Gradient{eval: eval, dmin: dmin, dmax: dmax}
}

// Domain returns the gradient's domain minimum and maximum.
func (g Gradient) Domain() (dmin, dmax float64) {
	return g.dmin, g.dmax
}

// At returns the color at position t. Out-of-domain inputs are clamped to
// the nearest endpoint (pad spread). At never fails: any finite or
// non-finite input yields a defined color.
func (g Gradient) At(t float64) Color {
	if g.eval == nil {
		return Color{A: 1}
	}
	if math.IsNaN(t) {
		return Color{A: 1}
	}
	return g.eval.at(clampDomain(t, g.dmin, g.dmax))
}

// RepeatAt returns the color at position t with the gradient tiled over the
// whole axis. The mapped position is always in [dmin, dmax).
func (g Gradient) RepeatAt(t float64) Color {
	if math.IsNaN(t) {
		return Color{A: 1}
	}
	return g.At(g.dmin + modulo(t-g.dmin, g.dmax-g.dmin))
}

// ReflectAt returns the color at position t with the gradient mirrored
// back and forth over the whole axis (triangle fold).
func (g Gradient) ReflectAt(t float64) Color {
	if math.IsNaN(t) {
		return Color{A: 1}
	}
	span := g.dmax - g.dmin
	u := modulo(t-g.dmin, 2*span)
	if u <= span {
		return g.At(g.dmin + u)
	}
	return g.At(g.dmax - (u - span))
}

// Colors returns n colors evenly spaced across the gradient's domain,
// inclusive of both endpoints.
func (g Gradient) Colors(n int) []Color {
	if n <= 0 {
		return nil
	}
	colors := make([]Color, n)
	for i, t := range linspace(g.dmin, g.dmax, n) {
		colors[i] = g.At(t)
	}
	return colors
}

// Sharp returns a new gradient with n equal-width color bands over the same
// domain. Each band takes the source color at the band's center position.
// smoothness in [0, 1] controls a linear crossfade at band boundaries:
// 0 yields a pure step function, 1 degenerates to a full ramp per band.
func (g Gradient) Sharp(n int, smoothness float64) Gradient {
	if n < 1 {
		n = 1
	}
	dmin, dmax := g.Domain()
	bandwidth := (dmax - dmin) / float64(n)

	colors := make([]Color, n)
	for i := range colors {
		colors[i] = g.At(dmin + (float64(i)+0.5)*bandwidth)
	}

	eval := &sharpEvaluator{
		colors:    colors,
		dmin:      dmin,
		dmax:      dmax,
		bandwidth: bandwidth,
		crossfade: clamp01(smoothness) * bandwidth / 2,
	}
	return newGradient(eval, dmin, dmax)
}

// Inverse returns a new gradient that evaluates this gradient reversed
// inside its own domain: the color at dmin becomes the color at dmax and
// vice versa. The wrapper is O(1); no resampling occurs.
func (g Gradient) Inverse() Gradient {
	return newGradient(&inverseEvaluator{inner: g}, g.dmin, g.dmax)
}

// clampDomain clamps t to [dmin, dmax].
func clampDomain(t, dmin, dmax float64) float64 {
	if t < dmin {
		return dmin
	}
	if t > dmax {
		return dmax
	}
	return t
}

// modulo is a floor-based modulo that stays non-negative for negative x.
func modulo(x, y float64) float64 {
	m := math.Mod(x, y)
	if m < 0 {
		m += y
	}
	return m
}

// linspace returns n evenly spaced values from min to max inclusive.
func linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{min}
	}
	out := make([]float64, n)
	d := max - min
	l := float64(n - 1)
	for i := range out {
		out[i] = min + float64(i)*d/l
	}
	return out
}
