package colorspace

import "math"

// NormalizeHue wraps a hue angle into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// RGBToHSV converts sRGB components in [0,1] to hue [0,360), saturation and
// value in [0,1]. The hue of achromatic colors is 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	v = math.Max(r, math.Max(g, b))
	d := v - math.Min(r, math.Min(g, b))

	if d == 0 {
		return 0, 0, v
	}

	switch v {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	case b:
		h = 4 + (r-g)/d
	}

	h = NormalizeHue(h * 60)
	s = d / v
	return h, s, v
}

// HSVToRGB converts hue [0,360), saturation and value in [0,1] to sRGB.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = NormalizeHue(h) / 60

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// RGBToHSL converts sRGB components in [0,1] to hue [0,360), saturation and
// lightness in [0,1].
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	case b:
		h = 4 + (r-g)/d
	}

	h = NormalizeHue(h * 60)
	return h, s, l
}

// HSLToRGB converts hue [0,360), saturation and lightness in [0,1] to sRGB.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	h = NormalizeHue(h) / 360
	r = hueToComponent(p, q, h+1.0/3)
	g = hueToComponent(p, q, h)
	b = hueToComponent(p, q, h-1.0/3)
	return r, g, b
}

func hueToComponent(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HWBToHSV converts hue [0,360), whiteness and blackness in [0,1] to HSV.
// If whiteness and blackness sum past 1 they are scaled down proportionally,
// yielding a gray.
func HWBToHSV(h, w, b float64) (hh, s, v float64) {
	if w+b > 1 {
		sum := w + b
		w /= sum
		b /= sum
	}
	v = 1 - b
	if v == 0 {
		return h, 0, 0
	}
	s = 1 - w/v
	return h, s, v
}

// HSVToHWB converts HSV to hue, whiteness and blackness.
func HSVToHWB(h, s, v float64) (hh, w, b float64) {
	return h, (1 - s) * v, 1 - v
}
