package colorgrad

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func parseCSS(t *testing.T, s string, mode BlendMode, dmin, dmax float64) ([]Color, []float64) {
	t.Helper()
	colors, positions, ok := parseCSSGradient(s, mode, dmin, dmax)
	if !ok {
		t.Fatalf("parseCSSGradient(%q) failed", s)
	}
	return colors, positions
}

func TestCSSBasic(t *testing.T) {
	colors, positions := parseCSS(t, "#f00, #0f0", BlendRGB, 0, 1)

	if diff := cmp.Diff([]float64{0, 1}, positions); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if !colorsEqual(colors[0], Red, colorEpsilon) || !colorsEqual(colors[1], Green, colorEpsilon) {
		t.Errorf("colors = %+v", colors)
	}
}

func TestCSSExplicitPositions(t *testing.T) {
	colors, positions := parseCSS(t, "#f00, #00f 75%, #0f0", BlendRGB, 0, 1)

	if diff := cmp.Diff([]float64{0, 0.75, 1}, positions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if !colorsEqual(colors[1], Blue, colorEpsilon) {
		t.Errorf("colors[1] = %+v, want blue", colors[1])
	}
}

func TestCSSMissingPositionsDistributed(t *testing.T) {
	_, positions := parseCSS(t, "red, lime, blue, gold, black", BlendRGB, 0, 1)

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if diff := cmp.Diff(want, positions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestCSSPositionHint(t *testing.T) {
	// A bare position is an interpolation hint: it takes the midpoint blend
	// of its neighbors.
	colors, positions := parseCSS(t, "black, 35%, white", BlendRGB, 0, 1)

	if diff := cmp.Diff([]float64{0, 0.35, 1}, positions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if !colorsEqual(colors[1], grayAt(0.5), colorEpsilon) {
		t.Errorf("hint color = %+v, want mid gray", colors[1])
	}
}

func TestCSSDoublePosition(t *testing.T) {
	// "color pos1 pos2" expands into two stops, giving a hard band.
	colors, positions := parseCSS(t, "red 0% 50%, blue", BlendRGB, 0, 1)

	if diff := cmp.Diff([]float64{0, 0.5, 1}, positions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if !colorsEqual(colors[0], Red, colorEpsilon) || !colorsEqual(colors[1], Red, colorEpsilon) {
		t.Errorf("colors = %+v, want two red stops", colors)
	}
}

func TestCSSEndpointPadding(t *testing.T) {
	// Stops that leave the domain ends uncovered get padding stops with the
	// nearest color.
	colors, positions := parseCSS(t, "gold 25%, red 75%", BlendRGB, 0, 1)

	if diff := cmp.Diff([]float64{0, 0.25, 0.75, 1}, positions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if !colorsEqual(colors[0], colors[1], colorEpsilon) {
		t.Errorf("left padding color = %+v, want %+v", colors[0], colors[1])
	}
	if !colorsEqual(colors[3], colors[2], colorEpsilon) {
		t.Errorf("right padding color = %+v, want %+v", colors[3], colors[2])
	}
}

func TestCSSDomainMapping(t *testing.T) {
	// Percentages resolve against the target domain.
	_, positions := parseCSS(t, "red, blue 75%", BlendRGB, -100, 100)

	want := []float64{-100, 50, 100}
	if diff := cmp.Diff(want, positions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestCSSMonotonicClamping(t *testing.T) {
	// Out-of-order positions clamp forward instead of failing, per CSS.
	_, positions := parseCSS(t, "red 50%, blue 25%", BlendRGB, 0, 1)

	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			t.Fatalf("positions not monotonic: %v", positions)
		}
	}
}

func TestCSSFunctionalColors(t *testing.T) {
	colors, positions := parseCSS(t, "rgb(0, 0, 150) 30%, hsl(120, 100%, 50%)", BlendRGB, 0, 1)

	if diff := cmp.Diff([]float64{0, 0.3, 1}, positions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if !colorsEqual(colors[1], Rgb8(0, 0, 150, 255), colorEpsilon) {
		t.Errorf("colors[1] = %+v", colors[1])
	}
	if !colorsEqual(colors[2], Green, colorEpsilon) {
		t.Errorf("colors[2] = %+v, want green", colors[2])
	}
}

func TestCSSInvalid(t *testing.T) {
	inputs := []string{
		"",
		"35%, red", // first stop must have a color
		"red, 35%", // trailing hint has no right neighbor color
		"nonsense, red",
		"red,, blue",
	}
	for _, input := range inputs {
		if _, _, ok := parseCSSGradient(input, BlendRGB, 0, 1); ok {
			t.Errorf("parseCSSGradient(%q) succeeded, want failure", input)
		}
	}
}

func TestCSSHardStopBuilds(t *testing.T) {
	// Coincident positions from a CSS list encode a hard transition and
	// must survive Build.
	g := mustBuild(t, NewGradientBuilder().CSS("red 50%, blue 50%"))

	if got := g.At(0.25); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("At(0.25) = %+v, want red", got)
	}
	if got := g.At(0.49); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("At(0.49) = %+v, want red", got)
	}
	if got := g.At(0.51); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("At(0.51) = %+v, want blue", got)
	}
	if got := g.At(0.75); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("At(0.75) = %+v, want blue", got)
	}
}

func TestCSSClampedBuilds(t *testing.T) {
	// Out-of-order positions clamp forward during parsing; the resulting
	// coincident stops must still build.
	g := mustBuild(t, NewGradientBuilder().CSS("red 70%, blue 30%"))

	if got := g.At(0.5); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("At(0.5) = %+v, want red", got)
	}
	if got := g.At(0.9); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("At(0.9) = %+v, want blue", got)
	}
	if got := g.At(1); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("At(1) = %+v, want blue", got)
	}
}

func TestExplicitPositionsStillStrict(t *testing.T) {
	// The CSS relaxation does not leak into Positions: coincident explicit
	// positions remain an error, also after a CSS call on the same builder.
	b := NewGradientBuilder().
		CSS("red 50%, blue 50%").
		Positions(0, 0.5, 0.5, 1)
	if _, err := b.Build(); err == nil {
		t.Error("Build() succeeded with coincident explicit positions")
	}
}

func TestCSSViaBuilder(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().CSS("#f00, #00f 75%, #0f0"))

	if got := g.At(0); !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("At(0) = %+v, want red", got)
	}
	if got := g.At(0.75); !colorsEqual(got, Blue, colorEpsilon) {
		t.Errorf("At(0.75) = %+v, want blue", got)
	}
	if got := g.At(1); !colorsEqual(got, Green, colorEpsilon) {
		t.Errorf("At(1) = %+v, want green", got)
	}
}
