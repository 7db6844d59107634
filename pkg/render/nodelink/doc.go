// Package nodelink renders a layout snapshot's box hierarchy as a node-link
// diagram.
//
// # Overview
//
// Each box becomes a Graphviz node labelled with its path and geometry, and
// each box with a sub-layout points at its children. The diagram ignores
// placement entirely; it answers "which box owns which" for deep trees where
// the geometric renderers in package sink get crowded.
//
// # Usage
//
//	dot := nodelink.ToDOT(s, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels include the box's baseline geometry and style
//
// Absolute boxes are drawn dashed and boxes whose geometry differs from
// their baseline are filled grey.
package nodelink
