package colorgrad

import "sort"

// linearEvaluator interpolates piecewise-linearly between adjacent stops.
// Stop colors are pre-converted into the blend space at construction so the
// per-sample work is one binary search and one component lerp.
type linearEvaluator struct {
	positions []float64
	values    [][4]float64
	mode      BlendMode
	first     Color
	last      Color
}

func newLinearEvaluator(colors []Color, positions []float64, mode BlendMode) *linearEvaluator {
	return &linearEvaluator{
		positions: positions,
		values:    convertColors(colors, mode),
		mode:      mode,
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

func (e *linearEvaluator) at(t float64) Color {
	if t <= e.positions[0] {
		return e.first
	}
	if t >= e.positions[len(e.positions)-1] {
		return e.last
	}

	// First stop at or above t; t is strictly inside the domain here,
	// so idx is in [1, len-1].
	idx := sort.SearchFloat64s(e.positions, t)
	if idx == 0 {
		idx = 1
	}

	pos0 := e.positions[idx-1]
	pos1 := e.positions[idx]
	f := (t - pos0) / (pos1 - pos0)
	return fromBlendSpace(lerpComponents(e.values[idx-1], e.values[idx], f), e.mode)
}
