package colorgrad

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBuilderDefaults(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().Colors(Red, Green, Blue))

	if dmin, dmax := g.Domain(); dmin != 0 || dmax != 1 {
		t.Errorf("default domain = (%v, %v), want (0, 1)", dmin, dmax)
	}
	if got := g.At(0); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("At(0) = %+v, want red", got)
	}
	if got := g.At(0.5); !colorsEqual(got, Green, colorEpsilon) {
		t.Errorf("At(0.5) = %+v, want green", got)
	}
	if got := g.At(1); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("At(1) = %+v, want blue", got)
	}
}

func TestBuilderLinearRGBMode(t *testing.T) {
	// White to blue at the midpoint in linear light: R and G are
	// srgb(0.5 linear) ~= 0.7354, B stays 1.
	g := mustBuild(t, NewGradientBuilder().
		Colors(White, Blue).
		Mode(BlendLinearRGB))

	got := g.At(0.5)
	want := Color{R: 0.73536, G: 0.73536, B: 1, A: 1}
	if !colorsEqual(got, want, 1e-3) {
		t.Errorf("At(0.5) = %+v, want %+v", got, want)
	}
}

func TestBuilderDomainRescale(t *testing.T) {
	// Positions rescale onto the domain preserving relative spacing:
	// [0, 0.7, 1] over [15, 80] lands the middle stop at 15 + 0.7*65.
	g := mustBuild(t, NewGradientBuilder().
		Colors(Red, Green, Blue).
		Positions(0, 0.7, 1).
		Domain(15, 80))

	if got := g.At(15 + 0.7*65); !colorsEqual(got, Green, colorEpsilon) {
		t.Errorf("At(middle stop) = %+v, want green", got)
	}
	if got := g.At(15); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("At(15) = %+v, want red", got)
	}
	if got := g.At(80); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("At(80) = %+v, want blue", got)
	}
}

func TestBuilderExplicitPositions(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		HTMLColors("#f00", "#0f0", "#00f").
		Positions(0, 0.25, 1))

	if got := g.At(0.25); !colorsEqual(got, Green, colorEpsilon) {
		t.Errorf("At(0.25) = %+v, want green", got)
	}
	// Midway through the second, wider segment.
	if got := g.At(0.625); !colorsEqual(got, Rgb8(0, 128, 128, 255), 1.0/255) {
		t.Errorf("At(0.625) = %+v", got)
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *GradientBuilder
		want    error
	}{
		{
			"no colors",
			NewGradientBuilder(),
			ErrTooFewStops,
		},
		{
			"one color",
			NewGradientBuilder().Colors(Red),
			ErrTooFewStops,
		},
		{
			"length mismatch",
			NewGradientBuilder().Colors(Red, Blue).Positions(0, 0.5, 1),
			ErrLengthMismatch,
		},
		{
			"non-monotonic positions",
			NewGradientBuilder().Colors(Red, Green, Blue).Positions(0, 0, 1),
			ErrNonMonotonicPositions,
		},
		{
			"decreasing positions",
			NewGradientBuilder().Colors(Red, Green, Blue).Positions(0, 0.8, 0.5),
			ErrNonMonotonicPositions,
		},
		{
			"inverted domain",
			NewGradientBuilder().Colors(Red, Blue).Domain(1, 0),
			ErrInvalidDomain,
		},
		{
			"empty domain",
			NewGradientBuilder().Colors(Red, Blue).Domain(3, 3),
			ErrInvalidDomain,
		},
		{
			"invalid html color",
			NewGradientBuilder().HTMLColors("#f00", "bloodywood"),
			ErrInvalidColor,
		},
		{
			"invalid css gradient",
			NewGradientBuilder().CSS(""),
			ErrInvalidCSSGradient,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuilderReuse(t *testing.T) {
	b := NewGradientBuilder().Colors(Red, Blue)

	g1 := mustBuild(t, b)
	g2 := mustBuild(t, b)
	if !colorsEqual(g1.At(0.5), g2.At(0.5), colorEpsilon) {
		t.Error("rebuilding the same builder changed the result")
	}

	// Reset clears everything, including the sticky error state.
	b.HTMLColors("nonsense")
	if _, err := b.Build(); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	b.Reset().Colors(Black, White)
	g3 := mustBuild(t, b)
	if dmin, dmax := g3.Domain(); dmin != 0 || dmax != 1 {
		t.Errorf("domain after Reset = (%v, %v)", dmin, dmax)
	}
	if !colorsEqual(g3.At(1), White, colorEpsilon) {
		t.Errorf("At(1) after Reset = %+v, want white", g3.At(1))
	}
}

func TestBuilderResolvePositions(t *testing.T) {
	tests := []struct {
		name    string
		builder *GradientBuilder
		want    []float64
	}{
		{
			"defaults over unit domain",
			NewGradientBuilder().Colors(Red, Green, Blue),
			[]float64{0, 0.5, 1},
		},
		{
			"defaults over custom domain",
			NewGradientBuilder().Colors(Red, Green, Blue, White, Black).Domain(-1, 1),
			[]float64{-1, -0.5, 0, 0.5, 1},
		},
		{
			"explicit rescaled",
			NewGradientBuilder().Colors(Red, Green, Blue).Positions(0, 0.7, 1).Domain(15, 80),
			[]float64{15, 60.5, 80},
		},
		{
			"explicit with nonzero origin",
			NewGradientBuilder().Colors(Red, Blue).Positions(1, 3).Domain(0, 100),
			[]float64{0, 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.builder.resolvePositions()
			if err != nil {
				t.Fatalf("resolvePositions() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuilderInterpolationVariants(t *testing.T) {
	for _, interp := range []Interpolation{
		InterpolationLinear, InterpolationBasis, InterpolationCatmullRom,
	} {
		g := mustBuild(t, NewGradientBuilder().
			Colors(Red, Green, Blue).
			Interpolation(interp))

		// All variants hit the outer stops exactly.
		if got := g.At(0); !colorsEqual(got, Red, colorEpsilon) {
			t.Errorf("%v: At(0) = %+v, want red", interp, got)
		}
		if got := g.At(1); !colorsEqual(got, Blue, colorEpsilon) {
			t.Errorf("%v: At(1) = %+v, want blue", interp, got)
		}
	}
}
