// Package layout computes the size and position of boxes arranged in a tree.
//
// # Overview
//
// A [Layout] is an ordered sequence of [Box] values inside a container of a
// fixed size. Every box owns a nested Layout of its own, so trees of any depth
// can be built. The caller owns the root and asks for recomputation:
//
//   - [Layout.Add] appends a child and re-runs placement
//   - [Layout.Remove] deletes a child by position and re-runs placement
//   - [Layout.ResizeFlexible] fits flexible children to the container
//   - [Layout.RevertFlexible] undoes the last fit
//
// Every mutation triggers a full O(n) recompute over the immediate children.
// Nested layouts are independent; they are recomputed only when their owning
// box changes size through [Box.Resize].
//
// # Variants
//
// Block layouts never change sizes. Children flow left to right and wrap to a
// new row when the next child would cross the container width. Each row sits
// below the tallest child of the previous row.
//
// Flexible layouts flow children the same way but only wrap when [Layout.Col]
// is set. A separate, explicit resize pass then:
//
//  1. moves the children around the middle child when the axis is
//     center-aligned
//  2. shrinks every child evenly when the group overflows the container
//  3. otherwise, when FlexGrow is enabled, changes every child evenly by the
//     container extent minus the summed child sizes
//
// Each flow placement records a baseline (RealPosition, RealSize) on the
// child, so [Layout.RevertFlexible] can restore the pre-resize geometry
// exactly. Adding, removing or recalculating on a resized flexible layout
// restores the baseline sizes before placing the children again.
//
// # Positioning
//
// Children with [Absolute] style are excluded from flow placement, shrink,
// grow and alignment in both variants. Their geometry belongs to the caller.
//
// # Example
//
//	root := layout.New(layout.Flexible, unit.Vec(200, 100))
//	root.Properties.FlexGrow = false
//	root.Add(layout.NewBox(unit.Vec(120, 100), unit.Vec(0, 0), layout.Block))
//	root.Add(layout.NewBox(unit.Vec(120, 100), unit.Vec(0, 0), layout.Block))
//	if err := root.ResizeFlexible(unit.X); err != nil {
//	    return err
//	}
//	// both children are now 100px wide at x=0 and x=100
//
// # Concurrency
//
// Nothing here blocks and nothing here is safe for concurrent mutation. Trees
// that share no boxes may be used from different goroutines.
package layout
