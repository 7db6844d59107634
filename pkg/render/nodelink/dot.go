package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes baseline geometry and position style in node labels.
	// When false, only the path and current geometry are shown.
	Detailed bool
}

// rootID names the node standing for the snapshot's own container.
const rootID = "root"

// ToDOT converts s to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(s snapshot.Snapshot, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=folder];\n", rootID, containerLabel(s))

	var edges []string
	_ = s.Walk(func(path []int, b snapshot.Box) error {
		id := nodeID(path)
		attrs := fmtAttrs(b, fmtLabel(id, b, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))

		parent := rootID
		if len(path) > 1 {
			parent = nodeID(path[:len(path)-1])
		}
		edges = append(edges, fmt.Sprintf("  %q -> %q;\n", parent, id))
		return nil
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ".")
}

func containerLabel(s snapshot.Snapshot) string {
	return fmt.Sprintf("%s %s", s.Variant, size(s.Width, s.Height))
}

func fmtLabel(id string, b snapshot.Box, detailed bool) string {
	lines := []string{
		id,
		fmt.Sprintf("%s at (%s, %s)", size(b.Width, b.Height), num(b.X), num(b.Y)),
	}
	if b.Layout != nil {
		lines = append(lines, containerLabel(*b.Layout))
	}
	if detailed {
		lines = append(lines,
			fmt.Sprintf("real: %s at (%s, %s)", size(b.RealWidth, b.RealHeight), num(b.RealX), num(b.RealY)),
			"style: "+b.Style,
		)
	}
	return strings.Join(lines, "\n")
}

func fmtAttrs(b snapshot.Box, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case b.IsAbsolute():
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	case b.Resized():
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

func size(w, h float64) string { return num(w) + "x" + num(h) }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a viewBox
// starting at the origin and pixel width/height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
