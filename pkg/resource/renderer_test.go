package resource

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/pkg/css"
)

func TestBackgroundRenderer_Render(t *testing.T) {
	fetcher := &countingFetcher{files: map[string][]byte{}}
	resolver, err := NewResolver(fetcher, 4, nil)
	require.NoError(t, err)
	r := NewBackgroundRenderer(resolver, 0, nil)

	target := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, r.Render("background: url(missing.png) lime", target))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, target.RGBAAt(4, 4))
	assert.Equal(t, 1, fetcher.calls)
}

func TestBackgroundRenderer_Compose(t *testing.T) {
	r := NewBackgroundRenderer(nil, 0, nil)
	spec, err := r.Compose("background-image: linear-gradient(red, blue), none; background-blend-mode: screen")
	require.NoError(t, err)
	require.Len(t, spec.Layers, 1)
	assert.Equal(t, css.BlendScreen, spec.Layers[0].BlendMode)

	_, err = r.Compose("background-color: nonsense")
	assert.ErrorIs(t, err, css.ErrInvalidColor)
}
