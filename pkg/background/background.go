// Package background turns the cascaded background properties of an
// element into the fill and the ordered list of layers painted by the
// renderer.
//
// Values follow the CSS multi-layer model: background-image is a comma
// separated list, and background-repeat and background-blend-mode are
// paired with it by index. Lengths are expressed in points.
package background

import (
	"log/slog"

	"backdrop/pkg/css"
	"backdrop/pkg/images"
)

// Fill is a solid background color.
type Fill struct {
	R, G, B float64 // in [0, 1]
	Opacity float64
}

// Repeat tells along which axes a layer is tiled.
type Repeat struct {
	X, Y bool
}

// DefaultRepeat is used when no background-repeat value applies.
var DefaultRepeat = Repeat{X: true, Y: true}

// Layer is one background layer: exactly one of Gradient and Image is set.
type Layer struct {
	Gradient *css.LinearGradient
	Image    *ImageLayer

	Repeat    Repeat
	BlendMode css.BlendMode
}

// IsGradient reports whether l is a gradient layer.
func (l Layer) IsGradient() bool { return l.Gradient != nil }

// ImageLayer is a resolved image with the factor converting its
// intrinsic size to points.
type ImageLayer struct {
	Resource images.Resource

	unitScale float64
}

// UnitScale returns the factor applied to the intrinsic size of the
// resource: 0.75 for raster images (pixels to points), 1 for vector images.
func (l *ImageLayer) UnitScale() float64 { return l.unitScale }

// Size returns the size of the image in points.
func (l *ImageLayer) Size() (width, height float64) {
	w, h := l.Resource.Size()
	return w * l.unitScale, h * l.unitScale
}

func (l *ImageLayer) Width() float64 {
	w, _ := l.Size()
	return w
}

func (l *ImageLayer) Height() float64 {
	_, h := l.Size()
	return h
}

// Spec is the resolved background of one element. Layers are in
// declaration order: the first one is painted on top.
type Spec struct {
	Fill   *Fill
	Layers []Layer
}

// ImageRetriever loads the image referenced by an URL.
// It returns nil when the image can not be found, and otherwise
// an *images.Raster or an *images.Vector.
type ImageRetriever interface {
	RetrieveImage(url string) images.Resource
}

// Context carries what the composition needs beside the element's own
// properties.
type Context struct {
	// Images resolves url() values. When nil, image layers are skipped.
	Images ImageRetriever
	// RootFontSize is the font size of the root element, in points,
	// used for rem units. Zero means css.DefaultFontSize.
	RootFontSize float64
	// Logger receives the warnings about skipped layers. May be nil.
	Logger *slog.Logger
}

func (ctx Context) rootFontSize() float64 {
	if ctx.RootFontSize > 0 {
		return ctx.RootFontSize
	}
	return css.DefaultFontSize
}
