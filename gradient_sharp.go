package colorgrad

import "math"

// sharpEvaluator quantizes a source gradient into equal-width color bands.
// Band colors are fixed at construction (the source sampled at each band
// center). When crossfade > 0, positions within that distance of an
// internal band boundary blend the two adjacent band colors linearly
// instead of snapping.
type sharpEvaluator struct {
	colors    []Color
	dmin      float64
	dmax      float64
	bandwidth float64
	crossfade float64 // half-width of the blend zone at each boundary
}

func (e *sharpEvaluator) at(t float64) Color {
	n := len(e.colors)
	if n == 1 {
		return e.colors[0]
	}

	k := int(math.Floor((t - e.dmin) / e.bandwidth))
	if k < 0 {
		k = 0
	}
	if k > n-1 {
		k = n - 1
	}

	if e.crossfade > 0 {
		// Internal boundary to the left of band k.
		if k > 0 {
			left := e.dmin + float64(k)*e.bandwidth
			if t < left+e.crossfade {
				f := (t - (left - e.crossfade)) / (2 * e.crossfade)
				return Blend(e.colors[k-1], e.colors[k], f, BlendRGB)
			}
		}
		// Internal boundary to the right of band k.
		if k < n-1 {
			right := e.dmin + float64(k+1)*e.bandwidth
			if t > right-e.crossfade {
				f := (t - (right - e.crossfade)) / (2 * e.crossfade)
				return Blend(e.colors[k], e.colors[k+1], f, BlendRGB)
			}
		}
	}

	return e.colors[k]
}
