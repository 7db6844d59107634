package layout

import (
	"strings"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/unit"
)

// Variant selects the placement algorithm of a Layout.
type Variant uint8

const (
	// Block preserves child sizes and wraps overflowing children onto the next row.
	Block Variant = iota
	// Flexible flows children on one line (or wrapped rows with Col) and can
	// shrink or grow them to fit the container.
	Flexible
)

// String returns "block" or "flexible".
func (v Variant) String() string {
	switch v {
	case Block:
		return "block"
	case Flexible:
		return "flexible"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant name. "flex" is accepted as shorthand.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "block":
		return Block, nil
	case "flexible", "flex":
		return Flexible, nil
	default:
		return Block, errors.New(errors.ErrCodeInvalidInput, "invalid layout variant: %q (must be 'block' or 'flexible')", s)
	}
}

// PositionStyle is how a box takes part in its parent's placement.
type PositionStyle uint8

const (
	// Relative boxes participate in flow placement, shrink, grow and alignment.
	Relative PositionStyle = iota
	// Absolute boxes keep the size and position the caller gave them.
	Absolute
)

// String returns "relative" or "absolute".
func (p PositionStyle) String() string {
	if p == Absolute {
		return "absolute"
	}
	return "relative"
}

// ParsePositionStyle parses "relative" (the default for "") or "absolute".
func ParsePositionStyle(s string) (PositionStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relative":
		return Relative, nil
	case "absolute":
		return Absolute, nil
	default:
		return Relative, errors.New(errors.ErrCodeInvalidInput, "invalid position style: %q (must be 'relative' or 'absolute')", s)
	}
}

// AlignX is the horizontal alignment of a flexible layout's children.
type AlignX uint8

const (
	AlignLeft AlignX = iota
	AlignCenterX
)

// String returns "left" or "center".
func (a AlignX) String() string {
	if a == AlignCenterX {
		return "center"
	}
	return "left"
}

// AlignY is the vertical alignment of a flexible layout's children.
type AlignY uint8

const (
	AlignTop AlignY = iota
	AlignCenterY
)

// String returns "top" or "center".
func (a AlignY) String() string {
	if a == AlignCenterY {
		return "center"
	}
	return "top"
}

// ParseAlignX parses "left" (the default for "") or "center".
func ParseAlignX(s string) (AlignX, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenterX, nil
	default:
		return AlignLeft, errors.New(errors.ErrCodeInvalidInput, "invalid x alignment: %q (must be 'left' or 'center')", s)
	}
}

// ParseAlignY parses "top" (the default for "") or "center".
func ParseAlignY(s string) (AlignY, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return AlignTop, nil
	case "center":
		return AlignCenterY, nil
	default:
		return AlignTop, errors.New(errors.ErrCodeInvalidInput, "invalid y alignment: %q (must be 'top' or 'center')", s)
	}
}

// Properties configures spacing and alignment of a Layout.
type Properties struct {
	// Offset is the spacing between siblings (and between wrapped rows).
	Offset unit.Length
	// AlignX applies when a flexible layout is resized along unit.X.
	AlignX AlignX
	// AlignY applies when a flexible layout is resized along unit.Y.
	AlignY AlignY
	// FlexGrow lets a flexible resize fit children to the container extent
	// when nothing overflows.
	FlexGrow bool
}

// DefaultProperties returns zero offset, left/top alignment and FlexGrow enabled.
func DefaultProperties() Properties {
	return Properties{FlexGrow: true}
}

// Attributes change how a box behaves inside its parent.
type Attributes struct {
	// MinSize bounds how far a flexible resize may shrink the box.
	MinSize *unit.Vector2
	// MaxSize bounds how far a flexible resize may grow the box.
	MaxSize *unit.Vector2
	// Style is the positioning style of the box.
	Style PositionStyle
}

// DefaultAttributes returns relative positioning with a minimum size of
// half a pixel on both axes and no maximum.
func DefaultAttributes() Attributes {
	min := unit.Vec(0.5, 0.5)
	return Attributes{MinSize: &min}
}
