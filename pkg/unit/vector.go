package unit

import (
	"fmt"
	"strings"

	"github.com/matzehuels/clemen/pkg/errors"
)

// Axis selects one component of a Vector2.
type Axis uint8

const (
	X Axis = iota // width / horizontal position
	Y             // height / vertical position
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == X {
		return Y
	}
	return X
}

// ParseAxis parses "x"/"width" or "y"/"height" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "width", "horizontal":
		return X, nil
	case "y", "height", "vertical":
		return Y, nil
	default:
		return X, errors.New(errors.ErrCodeInvalidInput, "invalid axis: %q (must be 'x' or 'y')", s)
	}
}

// Vector2 is an ordered pair of lengths.
type Vector2 struct {
	X, Y Length
}

// Vec builds a Vector2 from two pixel values.
func Vec(x, y float64) Vector2 { return Vector2{X: Px(x), Y: Px(y)} }

// Get returns the component along a.
func (v Vector2) Get(a Axis) Length {
	if a == Y {
		return v.Y
	}
	return v.X
}

// With returns a copy of v with the component along a replaced by l.
func (v Vector2) With(a Axis, l Length) Vector2 {
	if a == Y {
		v.Y = l
	} else {
		v.X = l
	}
	return v
}

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)}
}

// String formats the pair as "(x, y)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}
