package background

import (
	"fmt"
	"strings"

	"backdrop/pkg/css"
)

// ResolveFill parses a background-color value. It returns nil for an
// empty value and for "transparent".
func ResolveFill(value string) (*Fill, error) {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, css.Transparent) {
		return nil, nil
	}
	c, err := css.ParseRGBA(v)
	if err != nil {
		return nil, fmt.Errorf("background-color: %w", err)
	}
	return &Fill{R: c.R, G: c.G, B: c.B, Opacity: c.A}, nil
}
