package main

import (
	"fmt"
	"io"

	"backdrop/pkg/background"
	"backdrop/pkg/images"
)

// describe prints the fill and one line per layer, topmost first.
func describe(w io.Writer, spec background.Spec) {
	if f := spec.Fill; f != nil {
		fmt.Fprintf(w, "fill: rgb(%.0f, %.0f, %.0f) opacity %g\n", f.R*255, f.G*255, f.B*255, f.Opacity)
	} else {
		fmt.Fprintln(w, "fill: none")
	}
	if len(spec.Layers) == 0 {
		fmt.Fprintln(w, "layers: none")
		return
	}
	for i, layer := range spec.Layers {
		fmt.Fprintf(w, "layer %d: %s repeat=%s blend=%s\n", i, layerKind(layer), repeatName(layer.Repeat), layer.BlendMode)
	}
}

func layerKind(layer background.Layer) string {
	if g := layer.Gradient; g != nil {
		name := "linear-gradient"
		if g.Repeating {
			name = "repeating-linear-gradient"
		}
		if g.Corner != [2]int{} {
			return fmt.Sprintf("%s corner(%d,%d) %d stops", name, g.Corner[0], g.Corner[1], len(g.Stops))
		}
		return fmt.Sprintf("%s %gdeg %d stops", name, g.Angle, len(g.Stops))
	}

	kind := "raster"
	if _, ok := layer.Image.Resource.(*images.Vector); ok {
		kind = "vector"
	}
	w, h := layer.Image.Size()
	return fmt.Sprintf("%s image %gx%gpt scale=%g", kind, w, h, layer.Image.UnitScale())
}

func repeatName(r background.Repeat) string {
	switch {
	case r.X && r.Y:
		return "both"
	case r.X:
		return "x"
	case r.Y:
		return "y"
	}
	return "none"
}
