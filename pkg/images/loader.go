package images

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"net/url"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"backdrop/pkg/css"

	"github.com/srwiley/oksvg"
	"golang.org/x/net/html/charset"
)

const svgMediaType = "image/svg+xml"

// Size of a replaced element without intrinsic dimensions, in pixels.
const (
	defaultObjectWidth  = 300
	defaultObjectHeight = 150
)

// Decode loads an image from its content. mediaType is a hint: SVG
// documents are also recognized when it is missing or wrong.
func Decode(data []byte, mediaType string) (Resource, error) {
	if mediaType == svgMediaType {
		return DecodeVector(data)
	}
	raster, errRaster := DecodeRaster(data)
	if errRaster == nil {
		return raster, nil
	}
	// Last chance, try SVG in case the media type is incorrect
	if looksLikeSVG(data) {
		return DecodeVector(data)
	}
	return nil, errRaster
}

// DecodeRaster decodes a bitmap in one of the registered formats
// (PNG, JPEG, GIF, BMP, TIFF, WebP).
func DecodeRaster(data []byte) (*Raster, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return &Raster{Image: img, Format: format}, nil
}

func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(head, []byte("<svg"))
}

type svgRoot struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
}

// DecodeVector parses an SVG document. Its size is read from the width and
// height attributes of the root element, falling back on the viewBox.
func DecodeVector(data []byte) (*Vector, error) {
	var root svgRoot
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: invalid SVG: %v", ErrUnsupported, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid SVG: %v", ErrUnsupported, err)
	}

	width, height := svgSize(root)
	return NewVector(icon, width, height), nil
}

// svgSize returns the displayed size of an SVG document, in points.
func svgSize(root svgRoot) (width, height float64) {
	width, hasWidth := css.ParseAbsoluteLength(root.Width)
	height, hasHeight := css.ParseAbsoluteLength(root.Height)
	viewBox := parseViewBox(root.ViewBox)

	if hasWidth && hasHeight {
		return width, height
	}
	if viewBox == nil || viewBox[2] <= 0 || viewBox[3] <= 0 {
		if !hasWidth {
			width = defaultObjectWidth * css.PxToPt
		}
		if !hasHeight {
			height = defaultObjectHeight * css.PxToPt
		}
		return width, height
	}
	ratio := viewBox[2] / viewBox[3]
	switch {
	case hasWidth:
		return width, width / ratio
	case hasHeight:
		return height * ratio, height
	}
	return viewBox[2] * css.PxToPt, viewBox[3] * css.PxToPt
}

// parseViewBox returns the four numbers of a viewBox attribute, or nil.
func parseViewBox(value string) []float64 {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return nil
	}
	out := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		out[i] = v
	}
	return out
}

// IsDataURI reports whether uri uses the data: scheme.
func IsDataURI(uri string) bool {
	return len(uri) >= 5 && strings.EqualFold(uri[:5], "data:")
}

// ParseDataURI returns the content and the media type of a data: URI.
func ParseDataURI(uri string) (data []byte, mediaType string, err error) {
	if !IsDataURI(uri) {
		return nil, "", fmt.Errorf("not a data URI: %.32q", uri)
	}
	rest := uri[len("data:"):]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return nil, "", fmt.Errorf("malformed data URI: missing comma")
	}
	meta, payload := rest[:comma], rest[comma+1:]

	isBase64 := strings.HasSuffix(strings.ToLower(meta), ";base64")
	if isBase64 {
		meta = meta[:len(meta)-len(";base64")]
		data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
		if err != nil {
			return nil, "", fmt.Errorf("malformed data URI: %w", err)
		}
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, "", fmt.Errorf("malformed data URI: %w", err)
		}
		data = []byte(unescaped)
	}

	mediaType = strings.ToLower(strings.TrimSpace(strings.SplitN(meta, ";", 2)[0]))
	if mediaType == "" {
		mediaType = "text/plain"
	}
	return data, mediaType, nil
}
