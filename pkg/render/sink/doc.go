// Package sink renders layout snapshots to output formats.
//
// Every renderer draws one rectangle per box at its computed position. Box
// colours follow the box index (see [Fill]) so neighbours are easy to tell
// apart; nested sub-layouts are drawn inside their parent box, offset by the
// parent's position.
//
// # Formats
//
//   - [RenderHTML]: absolutely positioned <div> elements, nested <layout> fragments
//   - [RenderSVG]: vector output with optional labels and baseline overlay
//   - [RenderPNG]: raster output drawn with gg
//   - [RenderJSON]: the snapshot itself
//   - [RenderTree]: an indented text outline
//
// SVG and PNG take functional options:
//
//	svg := sink.RenderSVG(s, sink.WithLabels(), sink.WithDepth(1))
//	png, err := sink.RenderPNG(s, sink.WithScale(2), sink.WithPNGLabels())
package sink
