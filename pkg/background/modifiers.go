package background

import (
	"strings"

	"backdrop/pkg/css"
)

// repeatIndex returns the index of the background-repeat value used by the
// i-th image, among n declared values, or -1 if there is none.
// Images beyond the declared list go back to the first value.
func repeatIndex(n, i int) int {
	if n == 0 {
		return -1
	}
	if i < n {
		return i
	}
	return 0
}

// blendModeIndex returns the index of the background-blend-mode value used
// by the i-th image, among n declared values, or -1 if there is none.
// Images beyond the declared list keep the last value.
func blendModeIndex(n, i int) int {
	if n == 0 {
		return -1
	}
	return min(i, n-1)
}

// ResolveRepeat returns the repeat mode paired with the i-th image.
func ResolveRepeat(repeats []Repeat, i int) Repeat {
	index := repeatIndex(len(repeats), i)
	if index == -1 {
		return DefaultRepeat
	}
	return repeats[index]
}

// ResolveBlendMode returns the blend mode paired with the i-th image.
func ResolveBlendMode(modes []css.BlendMode, i int) css.BlendMode {
	index := blendModeIndex(len(modes), i)
	if index == -1 {
		return css.BlendNormal
	}
	return modes[index]
}

// parseRepeat parses one item of background-repeat. As a single keyword
// only "repeat", "repeat-x" and "repeat-y" tile; the two keyword form gives
// each axis separately.
func parseRepeat(value string) Repeat {
	fields := strings.Fields(strings.ToLower(value))
	switch len(fields) {
	case 1:
		switch fields[0] {
		case css.Repeat:
			return Repeat{X: true, Y: true}
		case css.RepeatX:
			return Repeat{X: true}
		case css.RepeatY:
			return Repeat{Y: true}
		}
	case 2:
		return Repeat{X: tiles(fields[0]), Y: tiles(fields[1])}
	}
	return Repeat{}
}

func tiles(keyword string) bool {
	switch keyword {
	case css.Repeat, css.Space, css.Round:
		return true
	}
	return false
}

func parseRepeats(value string) []Repeat {
	items := css.SplitWithComma(value)
	out := make([]Repeat, len(items))
	for i, item := range items {
		out[i] = parseRepeat(item)
	}
	return out
}

func parseBlendModes(value string) []css.BlendMode {
	items := css.SplitWithComma(value)
	out := make([]css.BlendMode, len(items))
	for i, item := range items {
		out[i] = css.ParseBlendMode(item)
	}
	return out
}
