package sink

import (
	"bytes"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// maxPNGSide bounds each side of the image in pixels.
const maxPNGSide = 16384

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale  float64
	labels bool
	depth  int
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGLabels draws each box's index at its centre.
func WithPNGLabels() PNGOption { return func(r *pngRenderer) { r.labels = true } }

// WithPNGDepth limits how many levels of nested sub-layouts are drawn.
func WithPNGDepth(d int) PNGOption { return func(r *pngRenderer) { r.depth = d } }

// RenderPNG rasterises s on a white background.
func RenderPNG(s snapshot.Snapshot, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, depth: -1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid PNG scale %v", r.scale)
	}

	w, h := s.Bounds()
	pw, ph := int(math.Ceil(w*r.scale)), int(math.Ceil(h*r.scale))
	if pw > maxPNGSide || ph > maxPNGSide {
		return nil, errors.New(errors.ErrCodeInvalidInput, "PNG of %dx%d exceeds %dpx", pw, ph, maxPNGSide)
	}
	pw, ph = max(pw, 1), max(ph, 1)

	dc := gg.NewContext(pw, ph)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(r.scale, r.scale)
	dc.SetFontFace(basicfont.Face7x13)

	r.drawLayout(dc, s, r.depth)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) drawLayout(dc *gg.Context, s snapshot.Snapshot, depth int) {
	dc.SetHexColor(colorFrame)
	dc.SetLineWidth(1 / r.scale)
	dc.DrawRectangle(0, 0, s.Width, s.Height)
	dc.Stroke()

	for _, b := range s.Boxes {
		dc.SetHexColor(Fill(b.Index))
		dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		dc.Fill()

		if b.Layout != nil && depth != 0 {
			dc.Push()
			dc.Translate(b.X, b.Y)
			r.drawLayout(dc, *b.Layout, depth-1)
			dc.Pop()
		}

		if r.labels {
			dc.SetRGB(1, 1, 1)
			dc.DrawStringAnchored(strconv.Itoa(b.Index), b.X+b.Width/2, b.Y+b.Height/2, 0.5, 0.5)
		}
	}
}
