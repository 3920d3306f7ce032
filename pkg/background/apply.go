package background

import (
	"strings"

	"backdrop/pkg/css"
	"backdrop/pkg/layout"
	"backdrop/pkg/logging"
)

// Compose resolves the background of an element from its cascaded
// properties. Layers that can not be resolved are skipped; an invalid
// background-color is an error.
func Compose(props map[string]string, ctx Context) (Spec, error) {
	fill, err := ResolveFill(props[css.BackgroundColor])
	if err != nil {
		return Spec{}, err
	}
	return Spec{Fill: fill, Layers: composeLayers(props, ctx)}, nil
}

// Apply resolves the background of an element and stores it on target:
// the fill under layout.PropertyBackground and the layers under
// layout.PropertyBackgroundImage. Nothing is stored for a transparent
// background or an empty layer list.
func Apply(props map[string]string, ctx Context, target layout.PropertyContainer) error {
	fill, err := ResolveFill(props[css.BackgroundColor])
	if err != nil {
		return err
	}
	if fill != nil {
		target.SetProperty(layout.PropertyBackground, fill)
	}

	if layers := composeLayers(props, ctx); len(layers) > 0 {
		target.SetProperty(layout.PropertyBackgroundImage, layers)
	}
	return nil
}

func composeLayers(props map[string]string, ctx Context) []Layer {
	logger := logging.OrDiscard(ctx.Logger)

	imageValues := css.SplitWithComma(props[css.BackgroundImage])
	repeats := parseRepeats(props[css.BackgroundRepeat])
	blendModes := parseBlendModes(props[css.BackgroundBlendMode])

	rem := ctx.rootFontSize()
	em, ok := css.ParseAbsoluteLength(props[css.FontSize])
	if !ok {
		em = rem
	}

	var layers []Layer
	for i, token := range imageValues {
		value := strings.TrimSpace(token)
		// none still takes its slot in the repeat and blend mode lists
		if value == "" || strings.EqualFold(value, css.None) {
			continue
		}

		blendMode := ResolveBlendMode(blendModes, i)
		if css.IsLinearGradient(value) {
			if g := resolveGradient(token, em, rem, logger); g != nil {
				layers = append(layers, Layer{Gradient: g, Repeat: DefaultRepeat, BlendMode: blendMode})
			}
			continue
		}

		repeat := ResolveRepeat(repeats, i)
		if img := resolveImage(ctx.Images, value); img != nil {
			layers = append(layers, Layer{Image: img, Repeat: repeat, BlendMode: blendMode})
		}
	}
	return layers
}
