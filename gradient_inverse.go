package colorgrad

// inverseEvaluator reflects positions across the source gradient's domain:
// at(t) delegates to source.At(dmax - (t - dmin)). The domain itself is
// unchanged, so spread mapping composes transparently with the reflection.
type inverseEvaluator struct {
	inner Gradient
}

func (e *inverseEvaluator) at(t float64) Color {
	dmin, dmax := e.inner.Domain()
	return e.inner.At(dmax - (t - dmin))
}
