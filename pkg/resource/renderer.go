package resource

import (
	"fmt"
	"image"
	"log/slog"

	"backdrop/pkg/background"
	"backdrop/pkg/css"
	"backdrop/pkg/logging"
	"backdrop/pkg/render"
)

// Renderer renders CSS declarations onto an image.
type Renderer interface {
	Render(declarations string, target *image.RGBA) error
}

// BackgroundRenderer composes the background described by a declaration
// list, such as the content of a style attribute, and paints it.
type BackgroundRenderer struct {
	images       background.ImageRetriever
	rootFontSize float64
	logger       *slog.Logger
}

// NewBackgroundRenderer creates a BackgroundRenderer loading images with
// retriever. rootFontSize is in points; zero selects css.DefaultFontSize.
func NewBackgroundRenderer(retriever background.ImageRetriever, rootFontSize float64, logger *slog.Logger) *BackgroundRenderer {
	return &BackgroundRenderer{images: retriever, rootFontSize: rootFontSize, logger: logging.OrDiscard(logger)}
}

// Compose parses the declarations and resolves their background.
func (r *BackgroundRenderer) Compose(declarations string) (background.Spec, error) {
	style := css.ParseInlineStyle(declarations)
	return background.Compose(style.Properties, background.Context{
		Images:       r.images,
		RootFontSize: r.rootFontSize,
		Logger:       r.logger,
	})
}

// Render paints the background over the whole target image.
func (r *BackgroundRenderer) Render(declarations string, target *image.RGBA) error {
	spec, err := r.Compose(declarations)
	if err != nil {
		return fmt.Errorf("composing background: %w", err)
	}
	r.logger.Debug("background composed", "fill", spec.Fill != nil, "layers", len(spec.Layers))

	renderer := render.NewRendererForImage(target)
	renderer.Paint(spec)
	return nil
}
