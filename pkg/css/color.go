package css

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color value can not be parsed.
var ErrInvalidColor = errors.New("css: invalid color")

// RGBA is a color with channels normalized to [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// NRGBA converts the color to a non-premultiplied 8 bit color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// ParseRGBA parses a CSS color: a named color, a hex notation or one of
// the rgb(), rgba(), hsl() and hsla() functions, in comma or space syntax.
func ParseRGBA(value string) (RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}
	if s == Transparent {
		return RGBA{}, nil
	}
	if s[0] == '#' {
		return parseHex(s[1:])
	}
	if open := strings.IndexByte(s, '('); open > 0 {
		if !strings.HasSuffix(s, ")") {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
		c, err := parseColorFunction(s[:open], s[open+1:len(s)-1])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
		}
		return c, nil
	}
	if named, ok := colornames.Map[s]; ok {
		return RGBA{
			R: float64(named.R) / 255,
			G: float64(named.G) / 255,
			B: float64(named.B) / 255,
			A: 1,
		}, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
}

// ParseColor is like ParseRGBA, reporting failure with a boolean.
func ParseColor(value string) (RGBA, bool) {
	c, err := ParseRGBA(value)
	return c, err == nil
}

func parseHex(hex string) (RGBA, error) {
	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return RGBA{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
		}
		d, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
		}
		digits[i] = d
	}
	channel := func(hi, lo uint8) float64 { return float64(hi<<4|lo) / 255 }
	switch len(hex) {
	case 3, 4:
		c := RGBA{
			R: channel(digits[0], digits[0]),
			G: channel(digits[1], digits[1]),
			B: channel(digits[2], digits[2]),
			A: 1,
		}
		if len(hex) == 4 {
			c.A = channel(digits[3], digits[3])
		}
		return c, nil
	case 6, 8:
		c := RGBA{
			R: channel(digits[0], digits[1]),
			G: channel(digits[2], digits[3]),
			B: channel(digits[4], digits[5]),
			A: 1,
		}
		if len(hex) == 8 {
			c.A = channel(digits[6], digits[7])
		}
		return c, nil
	}
	return RGBA{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// colorArguments splits the arguments of a color function. Both the
// legacy "r, g, b, a" form and the "r g b / a" form are accepted.
func colorArguments(args string) []string {
	if strings.Contains(args, ",") {
		parts := strings.Split(args, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	slash := strings.IndexByte(args, '/')
	if slash < 0 {
		return strings.Fields(args)
	}
	parts := strings.Fields(args[:slash])
	return append(parts, strings.TrimSpace(args[slash+1:]))
}

func parseColorFunction(name, args string) (RGBA, error) {
	parts := colorArguments(args)
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("expected 3 or 4 arguments, got %d", len(parts))
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := parseAlpha(parts[3])
		if err != nil {
			return RGBA{}, err
		}
		alpha = a
	}
	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i := range ch {
			v, err := parseRGBChannel(parts[i])
			if err != nil {
				return RGBA{}, err
			}
			ch[i] = v
		}
		return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
	case "hsl", "hsla":
		hue, err := parseHue(parts[0])
		if err != nil {
			return RGBA{}, err
		}
		sat, ok := ParsePercentage(parts[1])
		if !ok {
			return RGBA{}, fmt.Errorf("invalid saturation %q", parts[1])
		}
		light, ok := ParsePercentage(parts[2])
		if !ok {
			return RGBA{}, fmt.Errorf("invalid lightness %q", parts[2])
		}
		r, g, b := hslToRGB(hue, clamp01(sat), clamp01(light))
		return RGBA{R: r, G: g, B: b, A: alpha}, nil
	}
	return RGBA{}, fmt.Errorf("unsupported color function %s()", name)
}

func parseRGBChannel(s string) (float64, error) {
	if p, ok := ParsePercentage(s); ok {
		return clamp01(p), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid channel %q", s)
	}
	return clamp01(v / 255), nil
}

func parseAlpha(s string) (float64, error) {
	if p, ok := ParsePercentage(s); ok {
		return clamp01(p), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha %q", s)
	}
	return clamp01(v), nil
}

// parseHue returns the hue in degrees, in [0, 360).
func parseHue(s string) (float64, error) {
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		a, ok := parseAngle(s)
		if !ok {
			return 0, fmt.Errorf("invalid hue %q", s)
		}
		deg = a
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg, nil
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	var m2 float64
	if l <= 0.5 {
		m2 = l * (s + 1)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2
	h /= 360
	return hueToRGB(m1, m2, h+1./3), hueToRGB(m1, m2, h), hueToRGB(m1, m2, h-1./3)
}

func hueToRGB(m1, m2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*h*6
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2./3-h)*6
	}
	return m1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
