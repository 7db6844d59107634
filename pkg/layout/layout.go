package layout

import (
	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/unit"
)

// Layout is an ordered sequence of boxes inside a container.
// It owns its children exclusively; a box must not be added to two layouts.
type Layout struct {
	children []*Box
	rows     []Row
	// resized is set by ResizeFlexible and cleared once the baseline is
	// restored.
	resized bool

	// Variant selects the placement algorithm.
	Variant Variant
	// Size is the container size (width, height).
	Size unit.Vector2
	// Col makes a flexible layout wrap children onto new rows instead of
	// letting them run past the container width.
	Col bool
	// Properties holds spacing and alignment.
	Properties Properties
}

// Row describes one row produced by the last placement pass.
type Row struct {
	First  int         // index of the row's first child in the sequence
	Count  int         // number of flow children on the row
	Y      unit.Length // y of the row's first child
	Height unit.Length // height of the row's tallest child
}

// New creates an empty layout.
func New(variant Variant, size unit.Vector2) *Layout {
	return &Layout{
		Variant:    variant,
		Size:       size,
		Properties: DefaultProperties(),
	}
}

// Len returns the number of children.
func (l *Layout) Len() int { return len(l.children) }

// Child returns the child at position i.
func (l *Layout) Child(i int) (*Box, error) {
	if i < 0 || i >= len(l.children) {
		return nil, errors.New(errors.ErrCodeOutOfRange, "child index %d out of range [0, %d)", i, len(l.children))
	}
	return l.children[i], nil
}

// Children returns the child sequence. The slice is a copy; the boxes are not.
func (l *Layout) Children() []*Box {
	out := make([]*Box, len(l.children))
	copy(out, l.children)
	return out
}

// Rows returns the rows produced by the last placement pass.
func (l *Layout) Rows() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Add appends b, recomputes placement, and returns b's 0-based index.
// The layout takes ownership of b. A resized flexible layout is reverted to
// its baseline first.
func (l *Layout) Add(b *Box) int {
	l.children = append(l.children, b)
	l.Recalculate()
	return len(l.children) - 1
}

// Remove deletes the child at position i and recomputes placement.
// Later children shift down by one position.
func (l *Layout) Remove(i int) error {
	if i < 0 || i >= len(l.children) {
		return errors.New(errors.ErrCodeOutOfRange, "cannot remove child %d: layout has %d children", i, len(l.children))
	}
	last := len(l.children) - 1
	copy(l.children[i:], l.children[i+1:])
	l.children[last] = nil
	l.children = l.children[:last]
	l.Recalculate()
	return nil
}

// Recalculate re-derives every child's position from scratch using the
// algorithm matching the layout's variant. On a resized flexible layout the
// children get their baseline sizes back before they are placed.
func (l *Layout) Recalculate() {
	switch l.Variant {
	case Flexible:
		l.recalculateAsFlexible()
	default:
		l.recalculateAsBlock()
	}
}

// Nested follows path (a list of child indices) down the tree and returns the
// sub-layout it ends at. An empty path returns l. A box on the path without a
// sub-layout is an OUT_OF_RANGE error.
func (l *Layout) Nested(path ...int) (*Layout, error) {
	cur := l
	for depth, i := range path {
		b, err := cur.Child(i)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeOutOfRange, err, "path %v at depth %d", path, depth)
		}
		if b.Sublayout == nil {
			return nil, errors.New(errors.ErrCodeOutOfRange, "path %v at depth %d: box has no layout", path, depth)
		}
		cur = b.Sublayout
	}
	return cur, nil
}

// flowChildren returns the children that take part in flow placement.
func (l *Layout) flowChildren() []*Box {
	out := make([]*Box, 0, len(l.children))
	for _, b := range l.children {
		if !b.IsAbsolute() {
			out = append(out, b)
		}
	}
	return out
}
