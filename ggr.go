package colorgrad

// References:
// https://gitlab.gnome.org/GNOME/gimp/-/blob/master/devel-docs/ggr.txt
// https://gitlab.gnome.org/GNOME/gimp/-/blob/master/app/core/gimpgradient.c

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Format errors returned by ParseGGR. Match with errors.Is.
var (
	// ErrInvalidHeader is returned when the first line is not the GIMP
	// gradient header.
	ErrInvalidHeader = errors.New("colorgrad: invalid GIMP gradient header")
	// ErrInvalidSegmentCount is returned when the declared segment count is
	// not a positive integer or does not match the number of rows.
	ErrInvalidSegmentCount = errors.New("colorgrad: invalid segment count")
	// ErrMalformedRow is returned when a segment row has the wrong field
	// count, an unparsable number, or out-of-order endpoints.
	ErrMalformedRow = errors.New("colorgrad: malformed segment row")
	// ErrInvalidEnumID is returned when a blending or coloring id is out of range.
	ErrInvalidEnumID = errors.New("colorgrad: invalid enum id")
	// ErrNonContiguousSegments is returned when the segments do not tile
	// [0, 1] exactly.
	ErrNonContiguousSegments = errors.New("colorgrad: segments are not contiguous")
)

const ggrHeader = "GIMP Gradient"

// ggrEpsilon is the tolerance for segment endpoint comparisons; values come
// from fixed-precision decimal text.
const ggrEpsilon = 1e-6

type ggrBlending int

const (
	ggrBlendLinear ggrBlending = iota
	ggrBlendCurved
	ggrBlendSinusoidal
	ggrBlendSphericalIncreasing
	ggrBlendSphericalDecreasing
	ggrBlendStep
)

type ggrColoring int

const (
	ggrColoringRGB ggrColoring = iota
	ggrColoringHSVCcw
	ggrColoringHSVCw
)

// gimpSegment is one independently evaluated sub-interval of a GIMP
// gradient, with its own blending curve and coloring rule.
type gimpSegment struct {
	left, mid, right float64
	leftColor        Color
	rightColor       Color
	blending         ggrBlending
	coloring         ggrColoring
}

// ParseGGR parses a gradient in the GIMP gradient (.ggr) text format.
// The foreground and background colors substitute for segment colors that
// reference them instead of carrying explicit components. A UTF-8
// byte-order mark before the header is tolerated and stripped.
//
// It returns the gradient (domain [0, 1]), its name, and any format error.
func ParseGGR(r io.Reader, foreground, background Color) (Gradient, string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r,
		unicode.BOMOverride(unicode.UTF8.NewDecoder())))

	if !scanner.Scan() || scanner.Text() != ggrHeader {
		return Gradient{}, "", fmt.Errorf("%w: line 1", ErrInvalidHeader)
	}

	if !scanner.Scan() {
		return Gradient{}, "", fmt.Errorf("%w: missing segment count", ErrInvalidSegmentCount)
	}
	line := scanner.Text()

	var name string
	if rest, found := strings.CutPrefix(line, "Name:"); found {
		name = strings.TrimSpace(rest)
		if !scanner.Scan() {
			return Gradient{}, "", fmt.Errorf("%w: missing segment count", ErrInvalidSegmentCount)
		}
		line = scanner.Text()
	}

	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count <= 0 {
		return Gradient{}, "", fmt.Errorf("%w: %q", ErrInvalidSegmentCount, strings.TrimSpace(line))
	}

	segments := make([]gimpSegment, 0, count)
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return Gradient{}, "", fmt.Errorf("%w: declared %d segments, got %d",
				ErrInvalidSegmentCount, count, i)
		}
		seg, err := parseGGRSegment(scanner.Text(), foreground, background)
		if err != nil {
			return Gradient{}, "", fmt.Errorf("segment %d: %w", i+1, err)
		}
		segments = append(segments, seg)
	}
	if err := scanner.Err(); err != nil {
		return Gradient{}, "", err
	}

	if err := validateSegments(segments); err != nil {
		return Gradient{}, "", err
	}

	Logger().Debug("parsed GIMP gradient", "name", name, "segments", count)

	return newGradient(&gimpEvaluator{segments: segments}, 0, 1), name, nil
}

// parseGGRSegment parses one fixed-field segment row: positions, colors (or
// foreground/background markers in the 15-field form), blending id,
// coloring id.
func parseGGRSegment(line string, foreground, background Color) (gimpSegment, error) {
	fields := strings.Fields(line)
	if len(fields) != 13 && len(fields) != 15 {
		return gimpSegment{}, fmt.Errorf("%w: %d fields", ErrMalformedRow, len(fields))
	}

	d := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return gimpSegment{}, fmt.Errorf("%w: %q", ErrMalformedRow, f)
		}
		d[i] = v
	}

	if d[0] > d[1] || d[1] > d[2] {
		return gimpSegment{}, fmt.Errorf("%w: endpoints %v %v %v out of order",
			ErrMalformedRow, d[0], d[1], d[2])
	}

	blending := ggrBlending(d[11])
	if blending < ggrBlendLinear || blending > ggrBlendStep {
		return gimpSegment{}, fmt.Errorf("%w: blending %v", ErrInvalidEnumID, d[11])
	}
	coloring := ggrColoring(d[12])
	if coloring < ggrColoringRGB || coloring > ggrColoringHSVCw {
		return gimpSegment{}, fmt.Errorf("%w: coloring %v", ErrInvalidEnumID, d[12])
	}

	leftCode, rightCode := 0, 0
	if len(d) == 15 {
		leftCode = int(d[13])
		rightCode = int(d[14])
	}

	leftColor, err := resolveGGRColor(leftCode, d[3:7], foreground, background)
	if err != nil {
		return gimpSegment{}, err
	}
	rightColor, err := resolveGGRColor(rightCode, d[7:11], foreground, background)
	if err != nil {
		return gimpSegment{}, err
	}

	return gimpSegment{
		left:       d[0],
		mid:        d[1],
		right:      d[2],
		leftColor:  leftColor,
		rightColor: rightColor,
		blending:   blending,
		coloring:   coloring,
	}, nil
}

// resolveGGRColor maps a color-source code to a color: 0 uses the explicit
// components, 1/3 the foreground/background, 2/4 their transparent variants.
func resolveGGRColor(code int, rgba []float64, foreground, background Color) (Color, error) {
	switch code {
	case 0:
		return NewColor(rgba[0], rgba[1], rgba[2], rgba[3]), nil
	case 1:
		return foreground, nil
	case 2:
		return NewColor(foreground.R, foreground.G, foreground.B, 0), nil
	case 3:
		return background, nil
	case 4:
		return NewColor(background.R, background.G, background.B, 0), nil
	}
	return Color{}, fmt.Errorf("%w: color source %d", ErrInvalidEnumID, code)
}

// validateSegments checks that the segments tile [0, 1] exactly with no
// gaps or overlaps.
func validateSegments(segments []gimpSegment) error {
	if math.Abs(segments[0].left) > ggrEpsilon {
		return fmt.Errorf("%w: first segment starts at %v", ErrNonContiguousSegments,
			segments[0].left)
	}
	if math.Abs(segments[len(segments)-1].right-1) > ggrEpsilon {
		return fmt.Errorf("%w: last segment ends at %v", ErrNonContiguousSegments,
			segments[len(segments)-1].right)
	}
	for i := 1; i < len(segments); i++ {
		if math.Abs(segments[i].left-segments[i-1].right) > ggrEpsilon {
			return fmt.Errorf("%w: segment %d starts at %v, previous ends at %v",
				ErrNonContiguousSegments, i+1, segments[i].left, segments[i-1].right)
		}
	}
	return nil
}

// gimpEvaluator evaluates each segment independently: the local factor is
// skewed so the segment midpoint maps to 0.5, shaped by the segment's
// blending curve, then the endpoint colors are combined per its coloring rule.
type gimpEvaluator struct {
	segments []gimpSegment
}

func (e *gimpEvaluator) at(t float64) Color {
	if t <= 0 {
		return e.segments[0].leftColor
	}
	if t >= 1 {
		return e.segments[len(e.segments)-1].rightColor
	}

	low, high := 0, len(e.segments)
	mid := 0
	for low < high {
		mid = (low + high) / 2
		seg := e.segments[mid]
		if t > seg.right {
			low = mid + 1
		} else if t < seg.left {
			high = mid
		} else {
			break
		}
	}

	seg := e.segments[mid]
	length := seg.right - seg.left

	middle, pos := 0.5, 0.5
	if length >= ggrEpsilon {
		middle = (seg.mid - seg.left) / length
		pos = (t - seg.left) / length
	}

	var f float64
	switch seg.blending {
	case ggrBlendLinear:
		f = ggrLinearFactor(middle, pos)
	case ggrBlendCurved:
		if middle < ggrEpsilon {
			return seg.rightColor
		}
		if math.Abs(1-middle) < ggrEpsilon {
			return seg.leftColor
		}
		f = math.Exp(-math.Ln2 * math.Log10(pos) / math.Log10(middle))
	case ggrBlendSinusoidal:
		f = (math.Sin(-math.Pi/2+math.Pi*ggrLinearFactor(middle, pos)) + 1) / 2
	case ggrBlendSphericalIncreasing:
		f = ggrLinearFactor(middle, pos) - 1
		f = math.Sqrt(1 - f*f)
	case ggrBlendSphericalDecreasing:
		f = ggrLinearFactor(middle, pos)
		f = 1 - math.Sqrt(1-f*f)
	case ggrBlendStep:
		if pos >= middle {
			return seg.rightColor
		}
		return seg.leftColor
	}

	switch seg.coloring {
	case ggrColoringHSVCcw:
		return blendHSVCcw(seg.leftColor, seg.rightColor, f)
	case ggrColoringHSVCw:
		return blendHSVCw(seg.leftColor, seg.rightColor, f)
	}
	return Blend(seg.leftColor, seg.rightColor, f, BlendRGB)
}

// ggrLinearFactor remaps pos through the segment midpoint skew: positions
// left of the midpoint rescale into [0, 0.5], positions right of it into
// [0.5, 1], so the blend reaches its halfway point at the midpoint.
func ggrLinearFactor(middle, pos float64) float64 {
	if pos <= middle {
		if middle < ggrEpsilon {
			return 0
		}
		return 0.5 * pos / middle
	}
	pos -= middle
	middle = 1 - middle
	if middle < ggrEpsilon {
		return 1
	}
	return 0.5 + 0.5*pos/middle
}

// blendHSVCcw walks the hue from c1 toward c2 counter-clockwise (ascending
// hue angle). Saturation, value and alpha are interpolated linearly.
func blendHSVCcw(c1, c2 Color, t float64) Color {
	h1, s1, v1, a1 := c1.HSV()
	h2, s2, v2, a2 := c2.HSV()

	var hue float64
	if h1 < h2 {
		hue = h1 + (h2-h1)*t
	} else {
		hue = h1 + (360-(h1-h2))*t
		if hue > 360 {
			hue -= 360
		}
	}

	return FromHSV(hue, s1+t*(s2-s1), v1+t*(v2-v1), a1+t*(a2-a1))
}

// blendHSVCw walks the hue from c1 toward c2 clockwise (descending hue angle).
func blendHSVCw(c1, c2 Color, t float64) Color {
	h1, s1, v1, a1 := c1.HSV()
	h2, s2, v2, a2 := c2.HSV()

	var hue float64
	if h2 < h1 {
		hue = h1 - (h1-h2)*t
	} else {
		hue = h1 - (360-(h2-h1))*t
		if hue < 0 {
			hue += 360
		}
	}

	return FromHSV(hue, s1+t*(s2-s1), v1+t*(v2-v1), a1+t*(a2-a1))
}
