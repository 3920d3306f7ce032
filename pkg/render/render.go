// Package render paints composed backgrounds with gg. It is used to
// preview the output of the background package.
package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"backdrop/pkg/background"
	"backdrop/pkg/css"
	"backdrop/pkg/images"
)

// maxRepeatedStops bounds the stops generated for a repeating gradient.
const maxRepeatedStops = 4096

type Renderer struct {
	context *gg.Context
	scale   float64 // device pixels per point
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height), scale: 1 / css.PxToPt}
}

// NewRendererForImage paints directly into target.
func NewRendererForImage(target *image.RGBA) *Renderer {
	return &Renderer{context: gg.NewContextForRGBA(target), scale: 1 / css.PxToPt}
}

// SetScale sets the number of device pixels per point. The default maps
// one CSS pixel to one device pixel.
func (r *Renderer) SetScale(scale float64) {
	if scale > 0 {
		r.scale = scale
	}
}

// Clear fills the canvas with white.
func (r *Renderer) Clear() {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
}

// Paint paints spec over the whole canvas.
func (r *Renderer) Paint(spec background.Spec) {
	r.PaintRect(spec, r.canvas().Bounds())
}

// PaintRect paints spec in area, given in device pixels: the fill first,
// then the layers from the last declared to the first.
func (r *Renderer) PaintRect(spec background.Spec, area image.Rectangle) {
	if area.Empty() {
		return
	}

	if f := spec.Fill; f != nil && f.Opacity > 0 {
		r.context.SetRGBA(f.R, f.G, f.B, f.Opacity)
		r.context.DrawRectangle(float64(area.Min.X), float64(area.Min.Y), float64(area.Dx()), float64(area.Dy()))
		r.context.Fill()
	}

	for i := len(spec.Layers) - 1; i >= 0; i-- {
		layer := spec.Layers[i]
		src := r.paintLayer(layer, area.Dx(), area.Dy())
		if src == nil {
			continue
		}
		composite(r.canvas(), src, area.Min, layer.BlendMode)
	}
}

func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

func (r *Renderer) canvas() *image.RGBA {
	return r.context.Image().(*image.RGBA)
}

// paintLayer paints one layer on a transparent canvas the size of the
// background area.
func (r *Renderer) paintLayer(layer background.Layer, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	switch {
	case layer.Gradient != nil:
		r.paintGradient(dc, layer.Gradient)
	case layer.Image != nil:
		if !r.paintImage(dc, layer) {
			return nil
		}
	default:
		return nil
	}
	return dc.Image()
}

func (r *Renderer) paintGradient(dc *gg.Context, g *css.LinearGradient) {
	w, h := float64(dc.Width()), float64(dc.Height())
	x0, y0, x1, y1 := g.Line(w, h)

	stops := g.ResolveStops(math.Hypot(x1-x0, y1-y0) / r.scale)
	if g.Repeating {
		stops = repeatStops(stops)
	}

	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, stop := range stops {
		grad.AddColorStop(stop.Offset, stop.Color.NRGBA())
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

// repeatStops copies the stops of a repeating gradient until they cover
// the whole gradient line.
func repeatStops(stops []css.ResolvedStop) []css.ResolvedStop {
	if len(stops) < 2 {
		return stops
	}
	first, last := stops[0].Offset, stops[len(stops)-1].Offset
	period := last - first
	if period <= 0 {
		return stops
	}

	start := math.Floor(-first / period)
	end := math.Ceil((1 - first) / period)
	if (end-start)*float64(len(stops)) > maxRepeatedStops {
		return stops
	}

	out := make([]css.ResolvedStop, 0, int(end-start)*len(stops))
	for k := start; k < end; k++ {
		shift := k * period
		for _, stop := range stops {
			out = append(out, css.ResolvedStop{Offset: stop.Offset + shift, Color: stop.Color})
		}
	}
	return out
}

func (r *Renderer) paintImage(dc *gg.Context, layer background.Layer) bool {
	w, h := layer.Image.Size()
	tw, th := int(math.Round(w*r.scale)), int(math.Round(h*r.scale))
	if tw <= 0 || th <= 0 {
		return false
	}
	tile := imageTile(layer.Image.Resource, tw, th)
	if tile == nil {
		return false
	}

	dc.SetFillStyle(gg.NewSurfacePattern(tile, repeatOp(layer.Repeat)))
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()
	return true
}

// imageTile returns the resource as a width x height bitmap.
func imageTile(res images.Resource, width, height int) image.Image {
	switch res := res.(type) {
	case *images.Raster:
		b := res.Image.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return res.Image
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), res.Image, b, xdraw.Src, nil)
		return dst
	case *images.Vector:
		return res.Rasterize(width, height)
	}
	return nil
}

func repeatOp(repeat background.Repeat) gg.RepeatOp {
	switch {
	case repeat.X && repeat.Y:
		return gg.RepeatBoth
	case repeat.X:
		return gg.RepeatX
	case repeat.Y:
		return gg.RepeatY
	}
	return gg.RepeatNone
}
