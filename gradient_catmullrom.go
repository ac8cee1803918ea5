package colorgrad

import "sort"

// catmullRomEvaluator interpolates the stop colors with a Catmull-Rom
// spline: per-channel cubic Hermite segments with the standard
// half-difference tangents m1 = (p2-p0)/2, m2 = (p3-p1)/2. End stops are
// duplicated as padding control points so boundary intervals need no
// special casing. The curve passes exactly through every stop and has a
// continuous first derivative.
type catmullRomEvaluator struct {
	positions []float64
	segments  [][4][4]float64 // per interval: cubic coefficients per channel
	first     Color
	last      Color
	mode      BlendMode
}

func newCatmullRomEvaluator(colors []Color, positions []float64, mode BlendMode) *catmullRomEvaluator {
	values := convertColors(colors, mode)
	n := len(values)

	segments := make([][4][4]float64, n-1)
	for i := 0; i < n-1; i++ {
		p0 := values[max(i-1, 0)]
		p1 := values[i]
		p2 := values[i+1]
		p3 := values[min(i+2, n-1)]

		for j := 0; j < 4; j++ {
			m1 := (p2[j] - p0[j]) / 2
			m2 := (p3[j] - p1[j]) / 2
			segments[i][j] = [4]float64{
				2*p1[j] - 2*p2[j] + m1 + m2,
				-3*p1[j] + 3*p2[j] - 2*m1 - m2,
				m1,
				p1[j],
			}
		}
	}

	return &catmullRomEvaluator{
		positions: positions,
		segments:  segments,
		first:     colors[0],
		last:      colors[len(colors)-1],
		mode:      mode,
	}
}

func (e *catmullRomEvaluator) at(t float64) Color {
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

	pos0 := e.positions[idx-1]
	pos1 := e.positions[idx]
	t1 := (t - pos0) / (pos1 - pos0)
	t2 := t1 * t1
	t3 := t2 * t1

	seg := e.segments[idx-1]
	var out [4]float64
	for j := range out {
		c := seg[j]
		out[j] = c[0]*t3 + c[1]*t2 + c[2]*t1 + c[3]
	}
	return fromBlendSpace(out, e.mode)
}
