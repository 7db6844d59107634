package layout

import "github.com/matzehuels/clemen/pkg/unit"

// Box is a single node in a layout tree.
//
// RealSize and RealPosition are the baseline a flexible resize is measured
// against; [Layout.RevertFlexible] copies them back into Size and Position.
type Box struct {
	Size     unit.Vector2
	Position unit.Vector2

	RealSize     unit.Vector2
	RealPosition unit.Vector2

	Attrs Attributes

	// Sublayout holds the box's own children. Its container size follows Size.
	Sublayout *Layout
}

// NewBox creates a box whose own children are placed with the display variant.
func NewBox(size, position unit.Vector2, display Variant) *Box {
	return &Box{
		Size:         size,
		Position:     position,
		RealSize:     size,
		RealPosition: position,
		Attrs:        DefaultAttributes(),
		Sublayout:    New(display, size),
	}
}

// IsAbsolute reports whether the box is excluded from flow placement.
func (b *Box) IsAbsolute() bool { return b.Attrs.Style == Absolute }

// Goto moves the box and makes the new position its baseline.
// In a flow layout only the first flow child keeps a caller-assigned position;
// the others are overwritten on the next recompute.
func (b *Box) Goto(to unit.Vector2) {
	b.Position = to
	b.RealPosition = to
}

// Resize changes the box size, makes it the baseline, and recomputes the
// box's own children against the new container size.
func (b *Box) Resize(to unit.Vector2) {
	b.setSize(to)
	b.RealSize = to
	if b.Sublayout != nil {
		b.Sublayout.Recalculate()
	}
}

// moveTo changes the position without touching the baseline.
func (b *Box) moveTo(to unit.Vector2) {
	b.Position = to
}

// setSize changes the size without touching the baseline. The sub-layout's
// container follows but is not recomputed.
func (b *Box) setSize(to unit.Vector2) {
	b.Size = to
	if b.Sublayout != nil {
		b.Sublayout.Size = to
	}
}

// clamp bounds v by the box's min/max size along axis.
func (b *Box) clamp(axis unit.Axis, v unit.Length) unit.Length {
	if b.Attrs.MaxSize != nil {
		v = v.Min(b.Attrs.MaxSize.Get(axis))
	}
	if b.Attrs.MinSize != nil {
		v = v.Max(b.Attrs.MinSize.Get(axis))
	}
	return v
}
