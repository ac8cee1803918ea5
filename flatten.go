package colorgrad

import "sort"

const linearizeMaxDepth = 7

// Linearize resamples an arbitrary gradient into a piecewise-linear RGB
// gradient over the same domain. It seeds evenly spaced samples, then
// recursively subdivides intervals where the source deviates from its
// linear prediction by more than threshold (Euclidean RGBA distance,
// clamped to [0.005, 0.1]), and finally prunes stops that linear
// interpolation of their neighbors already predicts.
//
// The result trades exactness for cheap evaluation and a representation
// that can be exported as plain color stops.
func Linearize(g Gradient, threshold float64) Gradient {
	dmin, dmax := g.Domain()

	if threshold < 0.005 {
		threshold = 0.005
	}
	if threshold > 0.1 {
		threshold = 0.1
	}
	thresholdSq := threshold * threshold

	seeds := linspace(dmin, dmax, 17)
	var positions []float64
	for i := 0; i < len(seeds)-1; i++ {
		positions = append(positions, seeds[i])
		subdivide(g, seeds[i], seeds[i+1], thresholdSq, 0, &positions)
	}
	positions = append(positions, dmax)

	sort.Float64s(positions)
	positions = dedupPositions(positions)
	positions = prunePredictable(g, positions, thresholdSq)

	colors := make([]Color, len(positions))
	for i, t := range positions {
		colors[i] = g.At(t)
	}

	return newGradient(newLinearEvaluator(colors, positions, BlendRGB), dmin, dmax)
}

func subdivide(g Gradient, t0, t1, thresholdSq float64, depth int, positions *[]float64) {
	if depth >= linearizeMaxDepth {
		return
	}
	mid := (t0 + t1) / 2
	predicted := Blend(g.At(t0), g.At(t1), 0.5, BlendRGB)

	if colorDiffSq(g.At(mid), predicted) > thresholdSq {
		subdivide(g, t0, mid, thresholdSq, depth+1, positions)
		*positions = append(*positions, mid)
		subdivide(g, mid, t1, thresholdSq, depth+1, positions)
	}
}

func dedupPositions(positions []float64) []float64 {
	out := positions[:1]
	for _, p := range positions[1:] {
		if p-out[len(out)-1] >= 1e-6 {
			out = append(out, p)
		}
	}
	return out
}

// prunePredictable drops interior stops whose color linear interpolation of
// the surviving neighbors already reproduces within the threshold.
func prunePredictable(g Gradient, positions []float64, thresholdSq float64) []float64 {
	if len(positions) <= 2 {
		return positions
	}
	out := []float64{positions[0]}
	lastIdx := 0

	for i := 1; i < len(positions)-1; i++ {
		tPrev := positions[lastIdx]
		tNext := positions[i+1]
		tCurr := positions[i]

		f := (tCurr - tPrev) / (tNext - tPrev)
		predicted := Blend(g.At(tPrev), g.At(tNext), f, BlendRGB)

		if colorDiffSq(g.At(tCurr), predicted) > thresholdSq {
			out = append(out, tCurr)
			lastIdx = i
		}
	}
	return append(out, positions[len(positions)-1])
}

// colorDiffSq is the squared Euclidean distance between two colors' RGBA
// components.
func colorDiffSq(c1, c2 Color) float64 {
	dr := c1.R - c2.R
	dg := c1.G - c2.G
	db := c1.B - c2.B
	da := c1.A - c2.A
	return dr*dr + dg*dg + db*db + da*da
}
