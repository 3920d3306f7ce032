package css

import (
	"strconv"
	"strings"
)

// Lengths are resolved to points, the output unit of the renderer.
const (
	PxToPt = 0.75

	// DefaultFontSize is the initial font size (16px) in points.
	DefaultFontSize = 12.0
)

var absoluteUnits = map[string]float64{
	"px": PxToPt,
	"pt": 1,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
}

// splitDimension separates the numeric part of a dimension from its
// lower-cased unit. "12.5px" gives (12.5, "px").
func splitDimension(value string) (float64, string, bool) {
	value = strings.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digits := 0
	for end < len(value) && (value[end] >= '0' && value[end] <= '9' || value[end] == '.') {
		end++
		digits++
	}
	if digits == 0 {
		return 0, "", false
	}
	// exponent, but not the start of an "em" or "ex" unit
	if end+1 < len(value) && (value[end] == 'e' || value[end] == 'E') {
		next := end + 1
		if value[next] == '+' || value[next] == '-' {
			next++
		}
		if next < len(value) && value[next] >= '0' && value[next] <= '9' {
			end = next
			for end < len(value) && value[end] >= '0' && value[end] <= '9' {
				end++
			}
		}
	}
	num, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return num, strings.ToLower(value[end:]), true
}

// ParseAbsoluteLength parses a length with an absolute unit and returns
// it in points. Unitless numbers are taken as pixels.
func ParseAbsoluteLength(value string) (float64, bool) {
	num, unit, ok := splitDimension(value)
	if !ok {
		return 0, false
	}
	if unit == "" {
		return num * PxToPt, true
	}
	factor, ok := absoluteUnits[unit]
	if !ok {
		return 0, false
	}
	return num * factor, true
}

// ResolveLength parses an absolute or font relative length, using em and
// rem (both in points) for the "em" and "rem" units.
// Percentages are not lengths and are rejected.
func ResolveLength(value string, em, rem float64) (float64, bool) {
	num, unit, ok := splitDimension(value)
	if !ok {
		return 0, false
	}
	switch unit {
	case "em":
		return num * em, true
	case "rem":
		return num * rem, true
	case "":
		// only a zero may be unitless
		return 0, num == 0
	}
	factor, ok := absoluteUnits[unit]
	if !ok {
		return 0, false
	}
	return num * factor, true
}

// ParsePercentage parses "42%" as 0.42.
func ParsePercentage(value string) (float64, bool) {
	num, unit, ok := splitDimension(value)
	if !ok || unit != "%" {
		return 0, false
	}
	return num / 100, true
}
