// Package unit provides the length arithmetic the layout engine is built on.
//
// A [Length] is a single linear measurement (pixel-equivalent). Placement code
// never touches the underlying float directly; it goes through the methods
// here so the representation can change (for example to fixed-point) without
// touching the algorithms in package layout.
//
// Two families of operations exist:
//
//   - unit ⊕ unit → unit: [Length.Add], [Length.Sub], [Length.Mul], [Length.Div]
//   - unit ⊕ scalar → scalar: [Length.AddF], [Length.SubF], [Length.MulF], [Length.DivF]
//
// The scalar forms are used for accumulation and comparisons. All operations
// are total over finite inputs.
//
// [Vector2] pairs two lengths. It means (width, height) when describing a size
// and (x, y) when describing a position; callers track which is which.
//
//	size := unit.Vec(200, 100)
//	w := size.Get(unit.X) // 200px
package unit
