package colorgrad

// BlendMode selects the color space in which two colors are interpolated.
type BlendMode int

const (
	// BlendRGB interpolates directly on gamma-encoded sRGB channels.
	BlendRGB BlendMode = iota
	// BlendLinearRGB interpolates in linear-light RGB. This produces
	// perceptually smoother mid-tones than BlendRGB, especially between
	// complementary hues.
	BlendLinearRGB
	// BlendLab interpolates in CIE L*a*b* space.
	BlendLab
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendRGB:
		return "rgb"
	case BlendLinearRGB:
		return "linear-rgb"
	case BlendLab:
		return "lab"
	}
	return "unknown"
}

// Blend interpolates between two colors at position t in the given blend
// mode. Alpha is always interpolated linearly regardless of mode. t is not
// clamped; callers guarantee t is in [0, 1].
func Blend(a, b Color, t float64, mode BlendMode) Color {
	ca := toBlendSpace(a, mode)
	cb := toBlendSpace(b, mode)
	return fromBlendSpace(lerpComponents(ca, cb, t), mode)
}

// toBlendSpace converts a color to 4 components in the blend space.
func toBlendSpace(c Color, mode BlendMode) [4]float64 {
	switch mode {
	case BlendLinearRGB:
		r, g, b, a := c.LinearRGB()
		return [4]float64{r, g, b, a}
	case BlendLab:
		l, aa, bb, a := c.Lab()
		return [4]float64{l, aa, bb, a}
	default:
		return [4]float64{c.R, c.G, c.B, c.A}
	}
}

// fromBlendSpace converts blend space components back to an sRGB color.
func fromBlendSpace(v [4]float64, mode BlendMode) Color {
	switch mode {
	case BlendLinearRGB:
		return FromLinearRGB(v[0], v[1], v[2], v[3])
	case BlendLab:
		return FromLab(v[0], v[1], v[2], v[3])
	default:
		return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	}
}

func lerpComponents(a, b [4]float64, t float64) [4]float64 {
	return [4]float64{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
		a[3] + t*(b[3]-a[3]),
	}
}

// convertColors maps colors into blend space components.
func convertColors(colors []Color, mode BlendMode) [][4]float64 {
	out := make([][4]float64, len(colors))
	for i, c := range colors {
		out[i] = toBlendSpace(c, mode)
	}
	return out
}
