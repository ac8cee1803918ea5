package colorgrad

import "sort"

// Basis spline algorithm adapted from:
// https://github.com/d3/d3-interpolate/blob/master/src/basis.js

// basis evaluates the uniform cubic B-spline basis over four control values
// at local parameter t1 in [0, 1].
func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}

// basisEvaluator evaluates a uniform cubic B-spline through the stop colors.
// Boundary intervals use virtual control points reflected across the end
// stops (2*v0 - v1), which makes the curve pass exactly through the first
// and last stop. Interior stops are approximated, not interpolated; the
// curve is C2-continuous.
type basisEvaluator struct {
	positions []float64
	values    [][4]float64
	mode      BlendMode
	first     Color
	last      Color
}

func newBasisEvaluator(colors []Color, positions []float64, mode BlendMode) *basisEvaluator {
	return &basisEvaluator{
		positions: positions,
		values:    convertColors(colors, mode),
		mode:      mode,
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

func (e *basisEvaluator) at(t float64) Color {
	if t <= e.positions[0] {
		return e.first
	}
	if t >= e.positions[len(e.positions)-1] {
		return e.last
	}

	idx := sort.SearchFloat64s(e.positions, t)
	if idx == 0 {
		idx = 1
	}

	i := idx - 1
	n := len(e.positions) - 1
	pos0 := e.positions[i]
	pos1 := e.positions[idx]
	f := (t - pos0) / (pos1 - pos0)

	val1 := e.values[i]
	val2 := e.values[idx]

	var out [4]float64
	for j := range out {
		v1 := val1[j]
		v2 := val2[j]

		v0 := 2*v1 - v2
		if i > 0 {
			v0 = e.values[i-1][j]
		}

		v3 := 2*v2 - v1
		if i < n-1 {
			v3 = e.values[i+2][j]
		}

		out[j] = basis(f, v0, v1, v2, v3)
	}
	return fromBlendSpace(out, e.mode)
}
