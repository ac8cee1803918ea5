// Package colorgrad provides color gradient evaluation for Go.
//
// # Overview
//
// colorgrad builds immutable color gradients from ordered color stops (or
// from GIMP .ggr segment files) and evaluates them at arbitrary scalar
// positions. It is designed for visualization, charts, maps, and generative
// art, where a gradient is typically sampled once per pixel.
//
// # Quick Start
//
//	import "github.com/gogpu/colorgrad"
//
//	grad, err := colorgrad.NewGradientBuilder().
//	    HTMLColors("deeppink", "gold", "seagreen").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for x := 0; x < width; x++ {
//	    c := grad.At(float64(x) / float64(width-1))
//	    // use c.RGBA8() ...
//	}
//
// # Interpolation and Blending
//
// Three interpolation variants are available: piecewise linear (default),
// uniform cubic B-spline (Basis), and Catmull-Rom. Colors can be blended in
// gamma-encoded RGB, linear RGB, or CIE Lab space.
//
// # Spread Modes
//
// At clamps out-of-domain inputs to the nearest endpoint (pad). RepeatAt
// tiles the gradient, and ReflectAt mirrors it. For inputs inside the
// domain all three agree.
//
// # Derived Gradients
//
// Sharp produces a band-quantized version of a gradient with an optional
// crossfade between bands. Inverse reverses a gradient inside its own
// domain. Linearize resamples any gradient into a piecewise-linear one.
//
// # Concurrency
//
// Gradients are immutable values. Any number of goroutines may evaluate
// the same gradient concurrently without synchronization.
package colorgrad

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
