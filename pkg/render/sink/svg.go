package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/clemen/pkg/snapshot"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels   bool
	baseline bool
	depth    int
}

// WithLabels draws each box's index at its centre.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithBaseline overlays each resized box's baseline geometry as a dashed outline.
func WithBaseline() SVGOption { return func(r *svgRenderer) { r.baseline = true } }

// WithDepth limits how many levels of nested sub-layouts are drawn.
// A negative depth (the default) draws the whole snapshot.
func WithDepth(d int) SVGOption { return func(r *svgRenderer) { r.depth = d } }

// RenderSVG renders s as a standalone SVG document sized to the snapshot's
// bounds. The container is drawn as a grey frame.
func RenderSVG(s snapshot.Snapshot, opts ...SVGOption) []byte {
	r := svgRenderer{depth: -1}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := s.Bounds()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	r.renderLayout(&buf, s, r.depth)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderLayout(buf *bytes.Buffer, s snapshot.Snapshot, depth int) {
	fmt.Fprintf(buf, `  <rect class="frame" x="0" y="0" width="%s" height="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
		px(s.Width), px(s.Height), colorFrame)

	for _, b := range s.Boxes {
		fmt.Fprintf(buf, `  <rect id="box-%d" class="box" x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="0.8"/>`+"\n",
			b.Index, px(b.X), px(b.Y), px(b.Width), px(b.Height), Fill(b.Index))

		if r.baseline && b.Resized() {
			fmt.Fprintf(buf, `  <rect class="baseline" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-dasharray="4 2"/>`+"\n",
				px(b.RealX), px(b.RealY), px(b.RealWidth), px(b.RealHeight), colorBaseline)
		}

		if b.Layout != nil && depth != 0 {
			fmt.Fprintf(buf, `  <g transform="translate(%s %s)">`+"\n", px(b.X), px(b.Y))
			r.renderLayout(buf, *b.Layout, depth-1)
			buf.WriteString("  </g>\n")
		}

		if r.labels {
			fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-size="12" fill="white">%d</text>`+"\n",
				px(b.X+b.Width/2), px(b.Y+b.Height/2), b.Index)
		}
	}
}
