package colorspace

import "math"

// D65 reference white (2 degree observer).
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 24389.0 / 27.0
)

// LinearRGBToXYZ converts linear-light sRGB components to CIE XYZ (D65).
func LinearRGBToXYZ(r, g, b float64) (x, y, z float64) {
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return x, y, z
}

// XYZToLinearRGB converts CIE XYZ (D65) to linear-light sRGB components.
func XYZToLinearRGB(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return r, g, b
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// XYZToLab converts CIE XYZ (D65) to CIE L*a*b*.
// L is in [0,100] for in-gamut colors.
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// LabToXYZ converts CIE L*a*b* to CIE XYZ (D65).
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	x = labFInv(fx) * whiteX
	y = labFInv(fy) * whiteY
	z = labFInv(fz) * whiteZ
	return x, y, z
}
