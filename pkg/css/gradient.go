package css

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidGradient is returned for malformed gradient declarations.
var ErrInvalidGradient = errors.New("css: invalid gradient")

const (
	linearGradientFunction          = "linear-gradient("
	repeatingLinearGradientFunction = "repeating-linear-gradient("
)

// OffsetUnit tells how the position of a color stop is expressed.
type OffsetUnit uint8

const (
	OffsetAuto   OffsetUnit = iota // position not specified
	OffsetRatio                    // fraction of the gradient line
	OffsetPoints                   // length along the gradient line, in points
)

// StopOffset is the position of a color stop or hint.
type StopOffset struct {
	Value float64
	Unit  OffsetUnit
}

// ColorStop represents a color and its position in a gradient.
// A hint has no color: it only moves the middle of the transition
// between its two neighbours.
type ColorStop struct {
	Color  RGBA
	Offset StopOffset
	Hint   bool
}

// LinearGradient is a parsed linear-gradient() or
// repeating-linear-gradient() value. Lengths are resolved to points.
type LinearGradient struct {
	// Angle is the direction of the gradient line in degrees, measured
	// clockwise from "to top". It is ignored when Corner is set.
	Angle float64
	// Corner is set for "to <side> <side>" directions: the x component is
	// 1 for right and -1 for left, the y component 1 for top and -1 for bottom.
	Corner    [2]int
	Stops     []ColorStop
	Repeating bool
}

// IsLinearGradient reports whether value is a (possibly repeating)
// linear gradient function.
func IsLinearGradient(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return strings.HasPrefix(v, linearGradientFunction) || strings.HasPrefix(v, repeatingLinearGradientFunction)
}

// ParseLinearGradient parses a linear-gradient() value.
// Example: "linear-gradient(to right, blue 0, blue 2em, red 2em, red 300px)"
//
// em and rem are the font sizes, in points, used to resolve font relative
// lengths.
func ParseLinearGradient(value string, em, rem float64) (*LinearGradient, error) {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	g := &LinearGradient{Angle: 180}
	var prefix string
	switch {
	case strings.HasPrefix(lower, repeatingLinearGradientFunction):
		prefix, g.Repeating = repeatingLinearGradientFunction, true
	case strings.HasPrefix(lower, linearGradientFunction):
		prefix = linearGradientFunction
	default:
		return nil, fmt.Errorf("%w: not a linear gradient", ErrInvalidGradient)
	}
	if !strings.HasSuffix(v, ")") {
		return nil, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidGradient)
	}

	args := SplitWithComma(v[len(prefix) : len(v)-1])
	for i, arg := range args {
		args[i] = strings.TrimSpace(arg)
		if args[i] == "" {
			return nil, fmt.Errorf("%w: empty argument at position %d", ErrInvalidGradient, i)
		}
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no arguments", ErrInvalidGradient)
	}

	isDirection, err := g.parseDirection(args[0])
	if err != nil {
		return nil, err
	}
	if isDirection {
		args = args[1:]
	}

	for _, arg := range args {
		stops, err := parseColorStop(arg, em, rem)
		if err != nil {
			return nil, err
		}
		g.Stops = append(g.Stops, stops...)
	}

	colors := 0
	for i, stop := range g.Stops {
		if !stop.Hint {
			colors++
			continue
		}
		if i == 0 || i == len(g.Stops)-1 || g.Stops[i-1].Hint {
			return nil, fmt.Errorf("%w: misplaced color hint", ErrInvalidGradient)
		}
	}
	if colors < 2 {
		return nil, fmt.Errorf("%w: at least two color stops are required", ErrInvalidGradient)
	}
	return g, nil
}

var sideAngles = map[string]float64{
	"top":    0,
	"right":  90,
	"bottom": 180,
	"left":   270,
}

// parseDirection reports whether arg is a direction, and applies it.
func (g *LinearGradient) parseDirection(arg string) (bool, error) {
	fields := strings.Fields(strings.ToLower(arg))
	if fields[0] == "to" {
		switch len(fields) {
		case 2:
			angle, ok := sideAngles[fields[1]]
			if !ok {
				return false, fmt.Errorf("%w: invalid direction %q", ErrInvalidGradient, arg)
			}
			g.Angle = angle
			return true, nil
		case 3:
			var corner [2]int
			for _, side := range fields[1:] {
				switch side {
				case "left", "right":
					if corner[0] != 0 {
						return false, fmt.Errorf("%w: invalid direction %q", ErrInvalidGradient, arg)
					}
					corner[0] = 1
					if side == "left" {
						corner[0] = -1
					}
				case "top", "bottom":
					if corner[1] != 0 {
						return false, fmt.Errorf("%w: invalid direction %q", ErrInvalidGradient, arg)
					}
					corner[1] = 1
					if side == "bottom" {
						corner[1] = -1
					}
				default:
					return false, fmt.Errorf("%w: invalid direction %q", ErrInvalidGradient, arg)
				}
			}
			g.Corner = corner
			return true, nil
		}
		return false, fmt.Errorf("%w: invalid direction %q", ErrInvalidGradient, arg)
	}
	if len(fields) == 1 {
		if angle, ok := parseAngle(fields[0]); ok {
			g.Angle = angle
			return true, nil
		}
	}
	return false, nil
}

// parseAngle parses an angle and returns it in degrees.
func parseAngle(value string) (float64, bool) {
	num, unit, ok := splitDimension(value)
	if !ok {
		return 0, false
	}
	switch unit {
	case "deg":
		return num, true
	case "grad":
		return num * 0.9, true
	case "rad":
		return num * 180 / math.Pi, true
	case "turn":
		return num * 360, true
	}
	return 0, false
}

func parseStopOffset(value string, em, rem float64) (StopOffset, bool) {
	if p, ok := ParsePercentage(value); ok {
		return StopOffset{Value: p, Unit: OffsetRatio}, true
	}
	if l, ok := ResolveLength(value, em, rem); ok {
		return StopOffset{Value: l, Unit: OffsetPoints}, true
	}
	return StopOffset{}, false
}

// parseColorStop parses "color", "color offset", "color offset offset"
// (a stop with two positions) or a lone offset (a hint). The color may
// also follow the offsets.
func parseColorStop(arg string, em, rem float64) ([]ColorStop, error) {
	fields := splitSpaces(arg)

	var (
		color    RGBA
		hasColor bool
		offsets  []StopOffset
	)
	for _, field := range fields {
		if offset, ok := parseStopOffset(field, em, rem); ok {
			offsets = append(offsets, offset)
			continue
		}
		c, err := ParseRGBA(field)
		if err != nil || hasColor {
			return nil, fmt.Errorf("%w: invalid color stop %q", ErrInvalidGradient, arg)
		}
		color, hasColor = c, true
	}

	switch {
	case !hasColor && len(offsets) == 1:
		return []ColorStop{{Offset: offsets[0], Hint: true}}, nil
	case hasColor && len(offsets) == 0:
		return []ColorStop{{Color: color}}, nil
	case hasColor && len(offsets) == 1:
		return []ColorStop{{Color: color, Offset: offsets[0]}}, nil
	case hasColor && len(offsets) == 2:
		return []ColorStop{{Color: color, Offset: offsets[0]}, {Color: color, Offset: offsets[1]}}, nil
	}
	return nil, fmt.Errorf("%w: invalid color stop %q", ErrInvalidGradient, arg)
}

// Direction returns the angle of the gradient line in radians for a
// box of the given size.
func (g *LinearGradient) Direction(width, height float64) float64 {
	if g.Corner != [2]int{} {
		// the line is perpendicular to the diagonal joining the two
		// neighbouring corners
		return math.Atan2(float64(g.Corner[0])*height, float64(g.Corner[1])*width)
	}
	return g.Angle * math.Pi / 180
}

// Line returns the start and end points of the gradient line for a box
// of the given size, with the origin at the top-left corner and y going down.
func (g *LinearGradient) Line(width, height float64) (x0, y0, x1, y1 float64) {
	sin, cos := math.Sincos(g.Direction(width, height))
	length := math.Abs(width*sin) + math.Abs(height*cos)
	dx, dy := sin*length/2, -cos*length/2
	cx, cy := width/2, height/2
	return cx - dx, cy - dy, cx + dx, cy + dy
}

// ResolvedStop is a color stop with its final position, as a fraction
// of the gradient line.
type ResolvedStop struct {
	Offset float64
	Color  RGBA
}

// ResolveStops computes the position of every stop for a gradient line
// of the given length (in points). Missing positions are distributed
// evenly and positions never decrease. Hints are replaced by a stop with
// the average of their neighbours.
func (g *LinearGradient) ResolveStops(length float64) []ResolvedStop {
	const unset = -1.0

	offsets := make([]float64, len(g.Stops))
	for i, stop := range g.Stops {
		switch stop.Offset.Unit {
		case OffsetRatio:
			offsets[i] = stop.Offset.Value
		case OffsetPoints:
			if length > 0 {
				offsets[i] = stop.Offset.Value / length
			}
		default:
			offsets[i] = unset
		}
	}
	if len(offsets) == 0 {
		return nil
	}

	// If first stop has no offset, set it to 0, and the last to 1
	if offsets[0] == unset {
		offsets[0] = 0
	}
	last := len(offsets) - 1
	if offsets[last] == unset {
		offsets[last] = math.Max(1, maxOffset(offsets))
	}

	// positions are clamped to the largest previous one
	highest := offsets[0]
	for i, o := range offsets {
		if o == unset {
			continue
		}
		if o < highest {
			offsets[i] = highest
		}
		highest = offsets[i]
	}

	// Fill in any missing offsets between defined ones
	for i := 0; i < len(offsets); i++ {
		if offsets[i] != unset {
			continue
		}
		next := i + 1
		for offsets[next] == unset {
			next++
		}
		prev := i - 1
		step := (offsets[next] - offsets[prev]) / float64(next-prev)
		for j := i; j < next; j++ {
			offsets[j] = offsets[prev] + step*float64(j-prev)
		}
		i = next
	}

	out := make([]ResolvedStop, len(g.Stops))
	for i, stop := range g.Stops {
		c := stop.Color
		if stop.Hint {
			before, after := g.Stops[i-1].Color, g.Stops[i+1].Color
			c = RGBA{
				R: (before.R + after.R) / 2,
				G: (before.G + after.G) / 2,
				B: (before.B + after.B) / 2,
				A: (before.A + after.A) / 2,
			}
		}
		out[i] = ResolvedStop{Offset: offsets[i], Color: c}
	}
	return out
}

func maxOffset(offsets []float64) float64 {
	m := 0.0
	for _, o := range offsets {
		m = math.Max(m, o)
	}
	return m
}
