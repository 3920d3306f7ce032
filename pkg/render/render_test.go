package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/pkg/background"
	"backdrop/pkg/css"
	"backdrop/pkg/images"
)

type retriever map[string]images.Resource

func (r retriever) RetrieveImage(url string) images.Resource {
	if res, ok := r[url]; ok {
		return res
	}
	return nil
}

func solid(w, h int, c color.Color) *images.Raster {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return &images.Raster{Image: img, Format: "png"}
}

func compose(t *testing.T, props map[string]string) background.Spec {
	t.Helper()
	spec, err := background.Compose(props, background.Context{Images: retriever{
		"green.png": solid(3, 3, color.NRGBA{G: 255, A: 255}),
	}})
	require.NoError(t, err)
	return spec
}

func rgbaAt(r *Renderer, x, y int) color.RGBA {
	return r.Image().(*image.RGBA).RGBAAt(x, y)
}

func TestPaint_Fill(t *testing.T) {
	r := NewRenderer(4, 4)
	r.Clear()
	r.Paint(compose(t, map[string]string{css.BackgroundColor: "red"}))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgbaAt(r, 2, 2))
}

func TestPaint_ImageRepeat(t *testing.T) {
	r := NewRenderer(10, 10)
	r.Clear()
	r.Paint(compose(t, map[string]string{
		css.BackgroundImage:  "url(green.png)",
		css.BackgroundRepeat: "repeat-x",
	}))

	green := color.RGBA{G: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, green, rgbaAt(r, 1, 1))
	assert.Equal(t, green, rgbaAt(r, 8, 2))
	assert.Equal(t, white, rgbaAt(r, 8, 3))
	assert.Equal(t, white, rgbaAt(r, 1, 9))
}

func TestPaint_ImageNoRepeat(t *testing.T) {
	r := NewRenderer(10, 10)
	r.Clear()
	r.Paint(compose(t, map[string]string{
		css.BackgroundImage:  "url(green.png)",
		css.BackgroundRepeat: "no-repeat",
	}))

	assert.Equal(t, color.RGBA{G: 255, A: 255}, rgbaAt(r, 2, 2))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgbaAt(r, 5, 1))
}

func TestPaint_LayerOrder(t *testing.T) {
	r := NewRenderer(10, 10)
	r.Paint(compose(t, map[string]string{
		css.BackgroundColor:  "blue",
		css.BackgroundImage:  "url(green.png), linear-gradient(red, red)",
		css.BackgroundRepeat: "no-repeat",
	}))

	// first layer on top
	assert.Equal(t, color.RGBA{G: 255, A: 255}, rgbaAt(r, 1, 1))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgbaAt(r, 6, 6))
}

func TestPaint_Gradient(t *testing.T) {
	r := NewRenderer(100, 10)
	r.Paint(compose(t, map[string]string{
		css.BackgroundImage: "linear-gradient(to right, red, blue)",
	}))

	left, right := rgbaAt(r, 1, 5), rgbaAt(r, 98, 5)
	assert.Greater(t, left.R, left.B)
	assert.Greater(t, right.B, right.R)
}

func TestPaint_BlendMode(t *testing.T) {
	r := NewRenderer(4, 4)
	r.Paint(compose(t, map[string]string{
		css.BackgroundColor:     "#808080",
		css.BackgroundImage:     "linear-gradient(#808080, #808080)",
		css.BackgroundBlendMode: "multiply",
	}))

	got := rgbaAt(r, 2, 2)
	assert.InDelta(t, 64, int(got.R), 1)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, uint8(255), got.A)
}

func TestRepeatStops(t *testing.T) {
	red, blue := css.RGBA{R: 1, A: 1}, css.RGBA{B: 1, A: 1}
	stops := repeatStops([]css.ResolvedStop{{Offset: 0.25, Color: red}, {Offset: 0.5, Color: blue}})

	require.Len(t, stops, 8)
	assert.Equal(t, 0.0, stops[0].Offset)
	assert.Equal(t, blue, stops[1].Color)
	assert.Equal(t, 1.0, stops[len(stops)-1].Offset)

	single := []css.ResolvedStop{{Offset: 0.5, Color: red}, {Offset: 0.5, Color: blue}}
	assert.Equal(t, single, repeatStops(single))
}

func TestBlendPixel(t *testing.T) {
	gray := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}
	transparent := color.NRGBA{}

	tests := []struct {
		name string
		b, s color.NRGBA
		mode css.BlendMode
		want color.NRGBA
	}{
		{"screen", black, gray, css.BlendScreen, gray},
		{"difference", white, white, css.BlendDifference, black},
		{"darken", white, gray, css.BlendDarken, gray},
		{"lighten", black, gray, css.BlendLighten, gray},
		{"luminosity", black, white, css.BlendLuminosity, white},
		{"transparent backdrop", transparent, gray, css.BlendMultiply, gray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blendPixel(tt.b, tt.s, tt.mode))
		})
	}
}
