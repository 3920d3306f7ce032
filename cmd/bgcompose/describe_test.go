package main

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/pkg/background"
	"backdrop/pkg/css"
	"backdrop/pkg/images"
)

type fixedRetriever struct{ res images.Resource }

func (f fixedRetriever) RetrieveImage(string) images.Resource { return f.res }

func TestDescribe(t *testing.T) {
	raster := &images.Raster{Image: image.NewRGBA(image.Rect(0, 0, 100, 50))}
	spec, err := background.Compose(map[string]string{
		css.BackgroundColor:     "rgba(255, 0, 0, 0.5)",
		css.BackgroundImage:     "repeating-linear-gradient(to top left, red, blue 10px), none, url(a.png)",
		css.BackgroundRepeat:    "repeat-y, no-repeat",
		css.BackgroundBlendMode: "multiply",
	}, background.Context{Images: fixedRetriever{raster}})
	require.NoError(t, err)

	var buf bytes.Buffer
	describe(&buf, spec)
	assert.Equal(t, "fill: rgb(255, 0, 0) opacity 0.5\n"+
		"layer 0: repeating-linear-gradient corner(-1,1) 2 stops repeat=both blend=multiply\n"+
		"layer 1: raster image 75x37.5pt scale=0.75 repeat=y blend=multiply\n", buf.String())
}

func TestDescribe_Empty(t *testing.T) {
	var buf bytes.Buffer
	describe(&buf, background.Spec{})
	assert.Equal(t, "fill: none\nlayers: none\n", buf.String())
}
