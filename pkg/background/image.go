package background

import (
	"fmt"

	"backdrop/pkg/css"
	"backdrop/pkg/images"
)

const (
	rasterUnitScale = css.PxToPt
	vectorUnitScale = 1
)

// resolveImage loads the image referenced by token. It returns nil if the
// image can not be found.
func resolveImage(retriever ImageRetriever, token string) *ImageLayer {
	if retriever == nil {
		return nil
	}
	res := retriever.RetrieveImage(css.ExtractURL(token))
	if res == nil {
		return nil
	}
	return newImageLayer(res)
}

// newImageLayer panics if res is not one of the two resource kinds.
func newImageLayer(res images.Resource) *ImageLayer {
	switch res := res.(type) {
	case *images.Raster:
		if res == nil {
			return nil
		}
		return &ImageLayer{Resource: res, unitScale: rasterUnitScale}
	case *images.Vector:
		if res == nil {
			return nil
		}
		return &ImageLayer{Resource: res, unitScale: vectorUnitScale}
	}
	panic(fmt.Sprintf("background: image retriever returned an unsupported resource %T", res))
}
