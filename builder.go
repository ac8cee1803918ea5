package colorgrad

import (
	"errors"
	"fmt"
	"strings"
)

// Interpolation selects the spline variant a built gradient evaluates with.
type Interpolation int

const (
	// InterpolationLinear interpolates piecewise-linearly between stops.
	// Exact at every stop.
	InterpolationLinear Interpolation = iota
	// InterpolationBasis evaluates a uniform cubic B-spline. Smooth (C2)
	// but passes exactly only through the first and last stop.
	InterpolationBasis
	// InterpolationCatmullRom evaluates a Catmull-Rom spline. Exact at
	// every stop with a continuous first derivative.
	InterpolationCatmullRom
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	case InterpolationBasis:
		return "basis"
	case InterpolationCatmullRom:
		return "catmull-rom"
	}
	return "unknown"
}

// Build errors returned by GradientBuilder.Build. Match with errors.Is.
var (
	// ErrTooFewStops is returned when fewer than two color stops remain
	// after validation.
	ErrTooFewStops = errors.New("colorgrad: at least two color stops are required")
	// ErrLengthMismatch is returned when the colors and positions counts differ.
	ErrLengthMismatch = errors.New("colorgrad: colors and positions have different lengths")
	// ErrNonMonotonicPositions is returned when positions are not strictly increasing.
	ErrNonMonotonicPositions = errors.New("colorgrad: positions are not strictly increasing")
	// ErrInvalidDomain is returned when an explicit domain has lo >= hi.
	ErrInvalidDomain = errors.New("colorgrad: invalid domain")
	// ErrInvalidColor is returned when an HTML color string did not parse.
	ErrInvalidColor = errors.New("colorgrad: invalid color")
	// ErrInvalidCSSGradient is returned when a CSS gradient string did not parse.
	ErrInvalidCSSGradient = errors.New("colorgrad: invalid css gradient")
)

// GradientBuilder accumulates colors, positions, and evaluation options,
// then freezes them into an immutable Gradient.
//
// The builder itself is a single-owner mutable value and is not safe for
// concurrent use; the Gradient produced by Build is. A builder may be
// reused: Build does not consume it, and Reset restores the initial state.
//
// Example:
//
//	grad, err := colorgrad.NewGradientBuilder().
//	    Colors(colorgrad.White, colorgrad.Blue).
//	    Mode(colorgrad.BlendLinearRGB).
//	    Interpolation(colorgrad.InterpolationCatmullRom).
//	    Build()
type GradientBuilder struct {
	colors        []Color
	positions     []float64
	domain        []float64
	mode          BlendMode
	interpolation Interpolation
	invalidColors []string
	invalidCSS    bool
	// cssPositions marks positions produced by CSS, which may contain
	// coincident values encoding hard transitions.
	cssPositions bool
}

// NewGradientBuilder creates an empty builder with RGB blending and linear
// interpolation.
func NewGradientBuilder() *GradientBuilder {
	return &GradientBuilder{}
}

// Colors appends colors to the gradient.
// Returns the builder for method chaining.
func (b *GradientBuilder) Colors(colors ...Color) *GradientBuilder {
	b.colors = append(b.colors, colors...)
	return b
}

// HTMLColors appends colors given in web color formats (named colors, hex,
// rgb(), hsl(), hwb(), hsv()). Invalid strings are collected and reported
// by Build as ErrInvalidColor.
// Returns the builder for method chaining.
func (b *GradientBuilder) HTMLColors(colors ...string) *GradientBuilder {
	for _, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			b.invalidColors = append(b.invalidColors, s)
			continue
		}
		b.colors = append(b.colors, c)
	}
	return b
}

// Positions sets an explicit position for every color. The count must match
// the color count and positions must be strictly increasing.
// Returns the builder for method chaining.
func (b *GradientBuilder) Positions(positions ...float64) *GradientBuilder {
	b.positions = positions
	b.cssPositions = false
	return b
}

// Domain sets an explicit domain [dmin, dmax] for the gradient. Positions
// (explicit or defaulted) are rescaled affinely onto it, preserving their
// relative spacing.
// Returns the builder for method chaining.
func (b *GradientBuilder) Domain(dmin, dmax float64) *GradientBuilder {
	b.domain = []float64{dmin, dmax}
	return b
}

// Mode sets the color blending mode.
// Returns the builder for method chaining.
func (b *GradientBuilder) Mode(mode BlendMode) *GradientBuilder {
	b.mode = mode
	return b
}

// Interpolation sets the spline variant used for evaluation.
// Returns the builder for method chaining.
func (b *GradientBuilder) Interpolation(interp Interpolation) *GradientBuilder {
	b.interpolation = interp
	return b
}

// CSS replaces the builder's colors and positions with stops parsed from a
// CSS gradient shorthand, e.g. "gold, 35%, #f00" or
// "red 0%, rgb(0, 0, 150) 50% 75%, blue". Set Mode and Domain before CSS:
// positionless color hints are interpolated in the current blend mode and
// percentage positions are resolved against the current domain.
// Returns the builder for method chaining.
func (b *GradientBuilder) CSS(s string) *GradientBuilder {
	dmin, dmax := 0.0, 1.0
	if len(b.domain) == 2 && b.domain[0] < b.domain[1] {
		dmin, dmax = b.domain[0], b.domain[1]
	}
	colors, positions, ok := parseCSSGradient(s, b.mode, dmin, dmax)
	if !ok {
		b.invalidCSS = true
		return b
	}
	b.invalidCSS = false
	b.colors = colors
	b.positions = positions
	b.cssPositions = true
	return b
}

// Reset restores the builder to its initial empty state for reuse.
func (b *GradientBuilder) Reset() *GradientBuilder {
	*b = GradientBuilder{}
	return b
}

// Build validates the accumulated state and freezes it into a Gradient.
// On failure it returns one of the Err* build errors; the builder is left
// unchanged and may be corrected and built again.
func (b *GradientBuilder) Build() (Gradient, error) {
	if len(b.invalidColors) > 0 {
		return Gradient{}, fmt.Errorf("%w: %s", ErrInvalidColor,
			strings.Join(b.invalidColors, ", "))
	}
	if b.invalidCSS {
		return Gradient{}, ErrInvalidCSSGradient
	}
	if len(b.colors) < 2 {
		return Gradient{}, fmt.Errorf("%w: got %d", ErrTooFewStops, len(b.colors))
	}

	if len(b.domain) == 2 && b.domain[0] >= b.domain[1] {
		return Gradient{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidDomain,
			b.domain[0], b.domain[1])
	}

	positions, err := b.resolvePositions()
	if err != nil {
		return Gradient{}, err
	}

	colors := make([]Color, len(b.colors))
	copy(colors, b.colors)

	var eval evaluator
	switch b.interpolation {
	case InterpolationBasis:
		eval = newBasisEvaluator(colors, positions, b.mode)
	case InterpolationCatmullRom:
		eval = newCatmullRomEvaluator(colors, positions, b.mode)
	default:
		eval = newLinearEvaluator(colors, positions, b.mode)
	}

	Logger().Debug("gradient built",
		"stops", len(colors),
		"mode", b.mode.String(),
		"interpolation", b.interpolation.String())

	return newGradient(eval, positions[0], positions[len(positions)-1]), nil
}

// resolvePositions produces the final strictly increasing stop positions,
// applying defaults and the optional domain override.
func (b *GradientBuilder) resolvePositions() ([]float64, error) {
	n := len(b.colors)

	if len(b.positions) == 0 {
		dmin, dmax := 0.0, 1.0
		if len(b.domain) == 2 {
			dmin, dmax = b.domain[0], b.domain[1]
		}
		return linspace(dmin, dmax, n), nil
	}

	if len(b.positions) != n {
		return nil, fmt.Errorf("%w: %d colors, %d positions",
			ErrLengthMismatch, n, len(b.positions))
	}

	positions := make([]float64, n)
	copy(positions, b.positions)

	// Explicit positions must be strictly increasing. Positions coming from
	// a CSS stop list are only required to be non-decreasing: coincident
	// positions there encode a hard transition, and the evaluators resolve
	// them by always interpolating over the nearest positive-length interval.
	for i := 1; i < n; i++ {
		if positions[i] < positions[i-1] ||
			(!b.cssPositions && positions[i] == positions[i-1]) {
			return nil, fmt.Errorf("%w: position %v follows %v",
				ErrNonMonotonicPositions, positions[i], positions[i-1])
		}
	}

	if len(b.domain) == 2 {
		// Affine rescale onto [dmin, dmax] preserving relative spacing.
		dmin, dmax := b.domain[0], b.domain[1]
		pmin := positions[0]
		scale := (dmax - dmin) / (positions[n-1] - pmin)
		for i := range positions {
			positions[i] = dmin + (positions[i]-pmin)*scale
		}
		positions[n-1] = dmax
	}

	return positions, nil
}
