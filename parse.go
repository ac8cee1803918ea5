package colorgrad

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseError reports a color string that could not be parsed.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("colorgrad: invalid color %q", e.Input)
}

// ParseColor parses a color in web color formats:
//
//   - named colors ("gold", "seagreen", "transparent")
//   - hex: #rgb, #rgba, #rrggbb, #rrggbbaa
//   - rgb(255, 0, 0), rgba(255, 0, 0, 0.5)
//   - hsl(120, 50%, 50%), hsla(120, 50%, 50%, 0.5)
//   - hwb(120, 10%, 30%)
//   - hsv(120, 50%, 50%) - not in the CSS standard
func ParseColor(s string) (Color, error) {
	input := s
	s = strings.ToLower(strings.TrimSpace(s))

	if s == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return Rgb8(c.R, c.G, c.B, c.A), nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(input, s[1:])
	}
	if open := strings.IndexByte(s, '('); open >= 0 && strings.HasSuffix(s, ")") {
		return parseColorFunc(input, s[:open], s[open+1:len(s)-1])
	}
	return Color{}, &ParseError{Input: input}
}

// parseHexColor parses the 3, 4, 6 and 8 digit hex forms.
func parseHexColor(input, hex string) (Color, error) {
	var r, g, b uint8
	a := uint8(255)

	nibble := func(i int) (uint8, bool) {
		c := hex[i]
		switch {
		case '0' <= c && c <= '9':
			return c - '0', true
		case 'a' <= c && c <= 'f':
			return c - 'a' + 10, true
		default:
			return 0, false
		}
	}
	byteAt := func(i int) (uint8, bool) {
		hi, ok1 := nibble(i)
		lo, ok2 := nibble(i + 1)
		return hi<<4 | lo, ok1 && ok2
	}

	var ok [4]bool
	ok[3] = true
	switch len(hex) {
	case 3, 4:
		r, ok[0] = nibble(0)
		g, ok[1] = nibble(1)
		b, ok[2] = nibble(2)
		r, g, b = r*17, g*17, b*17
		if len(hex) == 4 {
			a, ok[3] = nibble(3)
			a *= 17
		}
	case 6, 8:
		r, ok[0] = byteAt(0)
		g, ok[1] = byteAt(2)
		b, ok[2] = byteAt(4)
		if len(hex) == 8 {
			a, ok[3] = byteAt(6)
		}
	default:
		return Color{}, &ParseError{Input: input}
	}

	if !ok[0] || !ok[1] || !ok[2] || !ok[3] {
		return Color{}, &ParseError{Input: input}
	}
	return Rgb8(r, g, b, a), nil
}

// parseColorFunc parses the rgb()/hsl()/hwb()/hsv() call forms.
func parseColorFunc(input, name, args string) (Color, error) {
	// Accept both comma-separated and space-separated arguments with an
	// optional slash before alpha.
	args = strings.ReplaceAll(args, ",", " ")
	args = strings.ReplaceAll(args, "/", " ")
	fields := strings.Fields(args)
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, &ParseError{Input: input}
	}

	vals := make([]float64, len(fields))
	pcts := make([]bool, len(fields))
	for i, f := range fields {
		v, pct, err := parseNumberOrPercent(f)
		if err != nil {
			return Color{}, &ParseError{Input: input}
		}
		vals[i] = v
		pcts[i] = pct
	}

	alpha := 1.0
	if len(vals) == 4 {
		alpha = clamp01(vals[3])
		if pcts[3] {
			alpha = clamp01(vals[3] / 100)
		}
	}

	switch name {
	case "rgb", "rgba":
		comp := func(i int) float64 {
			if pcts[i] {
				return clamp01(vals[i] / 100)
			}
			return clamp01(vals[i] / 255)
		}
		return NewColor(comp(0), comp(1), comp(2), alpha), nil
	case "hsl", "hsla":
		return FromHSL(vals[0], fraction(vals[1], pcts[1]), fraction(vals[2], pcts[2]), alpha), nil
	case "hwb":
		return FromHWB(vals[0], fraction(vals[1], pcts[1]), fraction(vals[2], pcts[2]), alpha), nil
	case "hsv":
		return FromHSV(vals[0], fraction(vals[1], pcts[1]), fraction(vals[2], pcts[2]), alpha), nil
	}
	return Color{}, &ParseError{Input: input}
}

// fraction normalizes a percentage or plain fraction to [0,1].
func fraction(v float64, pct bool) float64 {
	if pct {
		return clamp01(v / 100)
	}
	return clamp01(v)
}

func parseNumberOrPercent(s string) (v float64, pct bool, err error) {
	if rest, found := strings.CutSuffix(s, "%"); found {
		v, err = strconv.ParseFloat(rest, 64)
		return v, true, err
	}
	v, err = strconv.ParseFloat(s, 64)
	return v, false, err
}
