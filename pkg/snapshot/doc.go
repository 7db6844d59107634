// Package snapshot provides the serialization format for layout trees.
//
// A [Snapshot] is an immutable, JSON-tagged copy of a [layout.Layout] and
// (optionally) its nested sub-layouts. It is the wire format used by the
// renderers, the artifact cache, the preview server and `clemen run -f json`.
//
// # Capturing
//
//	l := layout.New(layout.Block, unit.Vec(200, 100))
//	l.Add(layout.NewBox(unit.Vec(100, 100), unit.Vec(0, 0), layout.Block))
//	s := snapshot.FromLayout(l, -1) // whole tree
//
// # Serialization
//
//	data, _ := snapshot.Marshal(s)
//	parsed, _ := snapshot.Unmarshal(data)
//	snapshot.WriteFile(s, "layout.json")
//
// Each [Box] carries both its current geometry and the baseline recorded by
// the last flow placement (RealX, RealY, RealWidth, RealHeight), so a
// snapshot taken after a flexible resize still shows what a revert would
// restore.
package snapshot
