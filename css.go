package colorgrad

import "strings"

// cssStop is one parsed stop of a CSS gradient shorthand. Color and
// position are both optional in the source text; missing values are
// resolved after all stops are read.
type cssStop struct {
	color    Color
	pos      float64
	hasColor bool
	hasPos   bool
}

// parseCSSGradient parses a CSS gradient stop list such as
// "red, #0f0 75%, blue" or "#fff, 35%, #000". Percentage positions are
// resolved against [dmin, dmax]; a bare position between two colors is an
// interpolation hint whose color is the midpoint blend of its neighbors in
// the given mode. Reports ok=false on any malformed input.
func parseCSSGradient(s string, mode BlendMode, dmin, dmax float64) (colors []Color, positions []float64, ok bool) {
	if dmin >= dmax {
		return nil, nil, false
	}

	var stops []cssStop
	for _, part := range splitByComma(s) {
		parsed, ok := parseCSSStop(part, dmin, dmax)
		if !ok {
			return nil, nil, false
		}
		stops = append(stops, parsed...)
	}

	if len(stops) == 0 || !stops[0].hasColor {
		return nil, nil, false
	}

	if !stops[0].hasPos {
		stops[0].pos = dmin
		stops[0].hasPos = true
	}

	// Resolve positionless color hints to the midpoint blend of their
	// neighbors, and pin the final stop to the domain end.
	for i := range stops {
		if i == len(stops)-1 {
			if !stops[i].hasPos {
				stops[i].pos = dmax
				stops[i].hasPos = true
			}
			break
		}
		if !stops[i].hasColor {
			if i == 0 || !stops[i+1].hasColor {
				return nil, nil, false
			}
			stops[i].color = Blend(stops[i-1].color, stops[i+1].color, 0.5, mode)
			stops[i].hasColor = true
		}
	}

	if stops[0].pos > dmin {
		first := cssStop{color: stops[0].color, hasColor: true, pos: dmin, hasPos: true}
		stops = append([]cssStop{first}, stops...)
	}
	if last := stops[len(stops)-1]; last.pos < dmax {
		stops = append(stops, cssStop{color: last.color, hasColor: true, pos: dmax, hasPos: true})
	}

	// Distribute missing positions evenly toward the next anchored stop,
	// then force the sequence monotonic.
	for i := range stops {
		if !stops[i].hasPos {
			for j := i + 1; j < len(stops); j++ {
				if stops[j].hasPos {
					prev := stops[i-1].pos
					stops[i].pos = prev + (stops[j].pos-prev)/float64(j-i+1)
					stops[i].hasPos = true
					break
				}
			}
		}
		if i > 0 && stops[i].pos < stops[i-1].pos {
			stops[i].pos = stops[i-1].pos
		}
	}

	colors = make([]Color, len(stops))
	positions = make([]float64, len(stops))
	for i, st := range stops {
		if !st.hasColor || !st.hasPos {
			return nil, nil, false
		}
		colors[i] = st.color
		positions[i] = st.pos
	}
	return colors, positions, true
}

// parseCSSStop parses one comma-separated stop: a color, a bare position,
// "color pos", or "color pos1 pos2" (which expands to two stops).
func parseCSSStop(s string, dmin, dmax float64) ([]cssStop, bool) {
	fields := splitBySpace(s)
	switch len(fields) {
	case 1:
		if c, err := ParseColor(fields[0]); err == nil {
			return []cssStop{{color: c, hasColor: true}}, true
		}
		if p, ok := parseCSSPos(fields[0], dmin, dmax); ok {
			return []cssStop{{pos: p, hasPos: true}}, true
		}
		return nil, false
	case 2:
		c, err := ParseColor(fields[0])
		p, ok := parseCSSPos(fields[1], dmin, dmax)
		if err != nil || !ok {
			return nil, false
		}
		return []cssStop{{color: c, hasColor: true, pos: p, hasPos: true}}, true
	case 3:
		c, err := ParseColor(fields[0])
		p1, ok1 := parseCSSPos(fields[1], dmin, dmax)
		p2, ok2 := parseCSSPos(fields[2], dmin, dmax)
		if err != nil || !ok1 || !ok2 {
			return nil, false
		}
		return []cssStop{
			{color: c, hasColor: true, pos: p1, hasPos: true},
			{color: c, hasColor: true, pos: p2, hasPos: true},
		}, true
	}
	return nil, false
}

// parseCSSPos parses a stop position: percentages map into [dmin, dmax],
// plain numbers are taken as absolute domain values.
func parseCSSPos(s string, dmin, dmax float64) (float64, bool) {
	v, pct, err := parseNumberOrPercent(s)
	if err != nil {
		return 0, false
	}
	if pct {
		return v/100*(dmax-dmin) + dmin, true
	}
	return v, true
}

// splitByComma splits on commas that are not inside parentheses, so
// "rgb(0, 0, 150) 30%, blue" yields two parts.
func splitByComma(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// splitBySpace splits on spaces that are not inside parentheses.
func splitBySpace(s string) []string {
	var fields []string
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '(':
			depth++
		case s[i] == ')':
			depth--
		case (s[i] == ' ' || s[i] == '\t') && depth == 0:
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, strings.TrimSpace(s[start:]))
	}
	return fields
}
