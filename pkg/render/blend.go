package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	xdraw "golang.org/x/image/draw"

	"backdrop/pkg/css"
)

// composite draws src over dst with its top-left corner at at, mixing the
// colors with mode.
func composite(dst *image.RGBA, src image.Image, at image.Point, mode css.BlendMode) {
	sb := src.Bounds()
	r := sb.Sub(sb.Min).Add(at).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	offset := sb.Min.Sub(at)

	if mode == css.BlendNormal {
		xdraw.Draw(dst, r, src, r.Min.Add(offset), xdraw.Over)
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s := color.NRGBAModel.Convert(src.At(x+offset.X, y+offset.Y)).(color.NRGBA)
			if s.A == 0 {
				continue
			}
			d := color.NRGBAModel.Convert(dst.At(x, y)).(color.NRGBA)
			dst.Set(x, y, blendPixel(d, s, mode))
		}
	}
}

// blendPixel composites source s over backdrop b. The blended color
// replaces the source where the backdrop is opaque.
func blendPixel(b, s color.NRGBA, mode css.BlendMode) color.NRGBA {
	cb := [3]float64{float64(b.R) / 255, float64(b.G) / 255, float64(b.B) / 255}
	cs := [3]float64{float64(s.R) / 255, float64(s.G) / 255, float64(s.B) / 255}
	ab, as := float64(b.A)/255, float64(s.A)/255

	var mixed [3]float64
	if mode >= css.BlendHue {
		mixed = blendNonSeparable(cb, cs, mode)
	} else {
		for i := range mixed {
			mixed[i] = blendChannel(cb[i], cs[i], mode)
		}
	}

	ao := as + ab*(1-as)
	if ao == 0 {
		return color.NRGBA{}
	}
	var out [3]float64
	for i := range out {
		c := (1-ab)*cs[i] + ab*mixed[i]
		out[i] = (as*c + (1-as)*ab*cb[i]) / ao
	}
	return color.NRGBA{R: to8(out[0]), G: to8(out[1]), B: to8(out[2]), A: to8(ao)}
}

func blendChannel(cb, cs float64, mode css.BlendMode) float64 {
	switch mode {
	case css.BlendMultiply:
		return cb * cs
	case css.BlendScreen:
		return cb + cs - cb*cs
	case css.BlendOverlay:
		return blendChannel(cs, cb, css.BlendHardLight)
	case css.BlendDarken:
		return math.Min(cb, cs)
	case css.BlendLighten:
		return math.Max(cb, cs)
	case css.BlendColorDodge:
		switch {
		case cb == 0:
			return 0
		case cs == 1:
			return 1
		}
		return math.Min(1, cb/(1-cs))
	case css.BlendColorBurn:
		switch {
		case cb == 1:
			return 1
		case cs == 0:
			return 0
		}
		return 1 - math.Min(1, (1-cb)/cs)
	case css.BlendHardLight:
		if cs <= 0.5 {
			return cb * 2 * cs
		}
		s := 2*cs - 1
		return cb + s - cb*s
	case css.BlendSoftLight:
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		d := math.Sqrt(cb)
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		}
		return cb + (2*cs-1)*(d-cb)
	case css.BlendDifference:
		return math.Abs(cb - cs)
	case css.BlendExclusion:
		return cb + cs - 2*cb*cs
	}
	return cs
}

func blendNonSeparable(cb, cs [3]float64, mode css.BlendMode) [3]float64 {
	switch mode {
	case css.BlendHue:
		return setLum(setSat(cs, sat(cb)), lum(cb))
	case css.BlendSaturation:
		return setLum(setSat(cb, sat(cs)), lum(cb))
	case css.BlendColor:
		return setLum(cs, lum(cb))
	case css.BlendLuminosity:
		return setLum(cb, lum(cs))
	}
	return cs
}

func lum(c [3]float64) float64 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func setLum(c [3]float64, l float64) [3]float64 {
	d := l - lum(c)
	for i := range c {
		c[i] += d
	}
	return clipColor(c)
}

func clipColor(c [3]float64) [3]float64 {
	l := lum(c)
	n := math.Min(c[0], math.Min(c[1], c[2]))
	x := math.Max(c[0], math.Max(c[1], c[2]))
	for i := range c {
		if n < 0 {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
		if x > 1 {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func sat(c [3]float64) float64 {
	return math.Max(c[0], math.Max(c[1], c[2])) - math.Min(c[0], math.Min(c[1], c[2]))
}

func setSat(c [3]float64, s float64) [3]float64 {
	idx := []int{0, 1, 2}
	sort.Slice(idx, func(a, b int) bool { return c[idx[a]] < c[idx[b]] })
	lo, mid, hi := idx[0], idx[1], idx[2]

	var out [3]float64
	if c[hi] > c[lo] {
		out[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		out[hi] = s
	}
	return out
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
