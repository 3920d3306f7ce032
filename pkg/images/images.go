// Package images decodes the raster and vector images referenced by
// background-image values.
package images

import (
	"errors"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrUnsupported is returned for content that is neither a known raster
// format nor an SVG document.
var ErrUnsupported = errors.New("images: unsupported image format")

// Resource is a loaded image. *Raster and *Vector are the two kinds
// of resources.
type Resource interface {
	// Size returns the intrinsic size of the image: in pixels for raster
	// images and in points for vector images.
	Size() (width, height float64)
}

var (
	_ Resource = (*Raster)(nil)
	_ Resource = (*Vector)(nil)
)

// Raster is a decoded bitmap image, measured in pixels.
type Raster struct {
	Image  image.Image
	Format string // "png", "jpeg", ...
}

func (r *Raster) Size() (width, height float64) {
	b := r.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Vector is a parsed SVG document whose size is already expressed
// in points.
type Vector struct {
	Icon *oksvg.SvgIcon

	width, height float64
}

// NewVector wraps icon, displayed with the given size in points.
func NewVector(icon *oksvg.SvgIcon, width, height float64) *Vector {
	return &Vector{Icon: icon, width: width, height: height}
}

func (v *Vector) Size() (width, height float64) { return v.width, v.height }

// Rasterize draws the vector image scaled to a w x h bitmap.
func (v *Vector) Rasterize(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if v.Icon == nil || w <= 0 || h <= 0 {
		return img
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	v.Icon.SetTarget(0, 0, float64(w), float64(h))
	v.Icon.Draw(dasher, 1)
	return img
}
