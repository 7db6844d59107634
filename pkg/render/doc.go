// Package render provides diagnostic renderers for layout snapshots.
//
// # Overview
//
// Nothing in this package is authoritative: the numbers in a
// [snapshot.Snapshot] are the result, the renderers only make them easy to
// look at. It provides:
//
//   - The format registry ([Formats], [ValidateFormat], [Extension], [ContentType])
//   - Box rendering (in [sink] subpackage): HTML, SVG, PNG, JSON and a text tree
//   - Tree diagrams (in [nodelink] subpackage): the box hierarchy as a Graphviz graph
//
// # Box Rendering
//
// The [sink] renderers draw every box at its computed position, coloured by
// its index, with nested sub-layouts drawn inside their parent box:
//
//	s := snapshot.FromLayout(l, -1)
//	html := sink.RenderHTML(s)
//	svg := sink.RenderSVG(s, sink.WithLabels(), sink.WithBaseline())
//	png, err := sink.RenderPNG(s, sink.WithScale(2))
//
// # Tree Diagrams
//
// The [nodelink] subpackage shows which box owns which sub-layout, ignoring
// geometry:
//
//	dot := nodelink.ToDOT(s)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [sink]: github.com/matzehuels/clemen/pkg/render/sink
// [nodelink]: github.com/matzehuels/clemen/pkg/render/nodelink
package render
