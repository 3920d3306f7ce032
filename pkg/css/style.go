package css

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Style holds the cascaded values of one element, keyed by property name.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

// Value returns the value of property, or "" if it is not set.
func (s *Style) Value(property string) string {
	return s.Properties[property]
}

// GetFontSize returns the font-size in points (default: 12pt, that is 16px).
func (s *Style) GetFontSize() float64 {
	if size, ok := s.Get(FontSize); ok {
		if pt, ok := ParseAbsoluteLength(size); ok {
			return pt
		}
	}
	return DefaultFontSize
}

// ParseInlineStyle parses a declaration list such as the content of a
// style attribute. Shorthands are expanded.
func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	text := strings.TrimSpace(styleAttr)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		// fall back to a plain split, dropping what does not look like a declaration
		for _, decl := range strings.Split(styleAttr, ";") {
			parts := strings.SplitN(decl, ":", 2)
			if len(parts) != 2 {
				continue
			}
			property := strings.TrimSpace(strings.ToLower(parts[0]))
			value := strings.TrimSpace(parts[1])
			if property == "" || value == "" {
				continue
			}
			expandShorthand(style, property, value)
		}
		return style
	}
	for _, decl := range decls {
		property := strings.TrimSpace(strings.ToLower(decl.Property))
		value := strings.TrimSpace(decl.Value)
		if property == "" || value == "" {
			continue
		}
		expandShorthand(style, property, value)
	}
	return style
}

// expandShorthand expands shorthand CSS properties into individual properties
func expandShorthand(style *Style, property, value string) {
	switch property {
	case "background":
		expandBackgroundProperty(style, value)
	default:
		style.Set(property, value)
	}
}

var repeatKeywords = map[string]bool{
	Repeat: true, RepeatX: true, RepeatY: true, NoRepeat: true, Space: true, Round: true,
}

var positionKeywords = map[string]bool{
	"left": true, "right": true, "top": true, "bottom": true, "center": true,
}

var attachmentKeywords = map[string]bool{
	"scroll": true, "fixed": true, "local": true,
}

// backgroundLayer collects the longhand values of one layer of the
// background shorthand.
type backgroundLayer struct {
	image, repeat, position, attachment []string
}

// expandBackgroundProperty expands the background shorthand, layer by layer.
// Format: "red url(bg.png) no-repeat" or "url(a.png), linear-gradient(red, blue)"
func expandBackgroundProperty(style *Style, value string) {
	items := SplitWithComma(value)
	layers := make([]backgroundLayer, len(items))
	color := ""
	for i, item := range items {
		for _, part := range splitSpaces(item) {
			lower := strings.ToLower(part)
			switch {
			case lower == None || strings.HasPrefix(lower, "url(") || strings.Contains(lower, "gradient("):
				layers[i].image = append(layers[i].image, part)
			case repeatKeywords[lower]:
				layers[i].repeat = append(layers[i].repeat, lower)
			case attachmentKeywords[lower]:
				layers[i].attachment = append(layers[i].attachment, lower)
			case positionKeywords[lower] || isLengthOrPercentage(part):
				layers[i].position = append(layers[i].position, part)
			case i == len(items)-1:
				// only the final layer may carry a color
				if _, ok := ParseColor(part); ok {
					color = part
				}
			}
		}
	}

	setList := func(property, initial string, pick func(backgroundLayer) []string) {
		values := make([]string, len(layers))
		specified := false
		for i, layer := range layers {
			v := pick(layer)
			if len(v) == 0 {
				values[i] = initial
				continue
			}
			specified = true
			values[i] = strings.Join(v, " ")
		}
		if specified {
			style.Set(property, strings.Join(values, ", "))
		}
	}
	setList(BackgroundImage, None, func(l backgroundLayer) []string { return l.image })
	setList(BackgroundRepeat, Repeat, func(l backgroundLayer) []string { return l.repeat })
	setList(BackgroundPosition, "0% 0%", func(l backgroundLayer) []string { return l.position })
	setList("background-attachment", "scroll", func(l backgroundLayer) []string { return l.attachment })
	if color != "" {
		style.Set(BackgroundColor, color)
	}
}

func isLengthOrPercentage(value string) bool {
	if _, ok := ParsePercentage(value); ok {
		return true
	}
	_, ok := ResolveLength(value, DefaultFontSize, DefaultFontSize)
	return ok
}
