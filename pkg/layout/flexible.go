package layout

import (
	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/unit"
)

// recalculateAsFlexible flows children on a single line, or on wrapped rows
// when Col is set, and records every assigned position as the baseline.
// Children left resized by ResizeFlexible are restored first, so the new
// positions are measured from their baseline sizes.
func (l *Layout) recalculateAsFlexible() {
	if l.resized {
		l.restoreBaseline()
	}
	l.flow(flowOptions{wrap: l.Col, baseline: true})
}

// ResizeFlexible fits the relative children to the container along axis.
//
// The pass runs in three steps:
//
//  1. Center alignment, when the axis is center-aligned.
//  2. Shrink: the overflow past the container is divided evenly between all
//     relative children.
//  3. Grow: when FlexGrow is set and nothing overflowed, the container extent
//     minus the summed child sizes is divided evenly between all relative
//     children. Offsets are not counted, and a negative difference (wrapped
//     rows) shrinks the children.
//
// Sizes are clamped to each child's min/max bounds. After a child changes
// size, the children after it on the same line move by the accumulated
// change, so the line stays packed.
//
// A layout without relative children is left untouched.
// ResizeFlexible returns an INVALID_OPERATION error for block layouts.
func (l *Layout) ResizeFlexible(axis unit.Axis) error {
	if l.Variant != Flexible {
		return errors.New(errors.ErrCodeInvalidOperation, "cannot resize children of a %s layout", l.Variant)
	}

	items := l.flowChildren()
	if len(items) == 0 {
		return nil
	}
	l.resized = true
	n := float64(len(items))
	extent := l.Size.Get(axis)
	offset := l.Properties.Offset

	if l.centered(axis) {
		alignCenter(items, axis, extent)
	}

	overflow := measureOverflow(items, axis, extent, offset)
	if overflow.Greater(unit.Px(0)) {
		distribute(items, axis, overflow.Neg().Div(unit.Px(n)))
		return nil
	}

	if l.Properties.FlexGrow {
		slack := extent.Sub(usedExtent(items, axis))
		distribute(items, axis, slack.Div(unit.Px(n)))
	}
	return nil
}

// RevertFlexible restores every relative child to the geometry recorded by
// the last flow placement, undoing any shrink, grow or alignment.
// RevertFlexible returns an INVALID_OPERATION error for block layouts.
func (l *Layout) RevertFlexible() error {
	if l.Variant != Flexible {
		return errors.New(errors.ErrCodeInvalidOperation, "cannot revert children of a %s layout", l.Variant)
	}
	l.restoreBaseline()
	return nil
}

func (l *Layout) restoreBaseline() {
	for _, b := range l.flowChildren() {
		b.setSize(b.RealSize)
		b.moveTo(b.RealPosition)
	}
	l.resized = false
}

func (l *Layout) centered(axis unit.Axis) bool {
	if axis == unit.Y {
		return l.Properties.AlignY == AlignCenterY
	}
	return l.Properties.AlignX == AlignCenterX
}

// alignCenter places the middle item (index n/2) around the container
// center and moves every other item with it, keeping its offset from the
// middle item. With an even count the middle item ends on the container
// center; with an odd count its own center sits there.
func alignCenter(items []*Box, axis unit.Axis, extent unit.Length) {
	middle := items[len(items)/2]
	anchor := middle.Position.Get(axis)

	target := extent.Scale(0.5).Sub(middle.Size.Get(axis))
	if len(items)%2 == 1 {
		target = extent.Scale(0.5).Sub(middle.Size.Get(axis).Scale(0.5))
	}

	for _, b := range items {
		offset := b.Position.Get(axis).Sub(anchor)
		b.moveTo(b.Position.With(axis, target.Add(offset)))
	}
}

// measureOverflow sums how far items reach past extent. The first item to
// cross contributes only the part outside the container; every later one
// is entirely outside and contributes its size plus the offset.
func measureOverflow(items []*Box, axis unit.Axis, extent, offset unit.Length) unit.Length {
	var overflow unit.Length
	first := true
	for _, b := range items {
		end := b.Position.Get(axis).Add(b.Size.Get(axis))
		if !end.Add(offset).Greater(extent) {
			continue
		}
		if first {
			overflow = overflow.Add(extent.Sub(end).Abs())
			first = false
			continue
		}
		overflow = overflow.Add(b.Size.Get(axis).Add(offset))
	}
	return overflow
}

// usedExtent sums the sizes of items along axis.
func usedExtent(items []*Box, axis unit.Axis) unit.Length {
	var used unit.Length
	for _, b := range items {
		used = used.Add(b.Size.Get(axis))
	}
	return used
}

// distribute changes the size of every item by amount (clamped to its
// bounds) and shifts each item by the total change of the items before it on
// the same line. A line is a run of items sharing the cross-axis coordinate.
func distribute(items []*Box, axis unit.Axis, amount unit.Length) {
	cross := axis.Cross()
	var shift unit.Length

	for i, b := range items {
		if i > 0 && !b.Position.Get(cross).Equal(items[i-1].Position.Get(cross)) {
			shift = unit.Px(0)
		}

		size := b.Size.Get(axis)
		target := b.clamp(axis, size.Add(amount))

		b.setSize(b.Size.With(axis, target))
		b.moveTo(b.Position.With(axis, b.Position.Get(axis).Add(shift)))

		shift = shift.Add(target.Sub(size))
	}
}
