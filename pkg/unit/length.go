package unit

import (
	"math"
	"strconv"
)

// Length is a linear measurement in pixels.
// The zero value is 0px.
type Length struct {
	px float64
}

// Px returns a Length of v pixels.
func Px(v float64) Length { return Length{px: v} }

// Float64 returns the length as a bare pixel count.
func (l Length) Float64() float64 { return l.px }

// Add returns l + o.
func (l Length) Add(o Length) Length { return Length{px: l.px + o.px} }

// Sub returns l - o.
func (l Length) Sub(o Length) Length { return Length{px: l.px - o.px} }

// Mul returns l * o.
func (l Length) Mul(o Length) Length { return Length{px: l.px * o.px} }

// Div returns l / o.
func (l Length) Div(o Length) Length { return Length{px: l.px / o.px} }

// AddF returns l + f as a bare scalar.
func (l Length) AddF(f float64) float64 { return l.px + f }

// SubF returns l - f as a bare scalar.
func (l Length) SubF(f float64) float64 { return l.px - f }

// MulF returns l * f as a bare scalar.
func (l Length) MulF(f float64) float64 { return l.px * f }

// DivF returns l / f as a bare scalar.
func (l Length) DivF(f float64) float64 { return l.px / f }

// Scale returns l multiplied by the scalar f.
func (l Length) Scale(f float64) Length { return Length{px: l.px * f} }

// Abs returns the absolute value of l.
func (l Length) Abs() Length { return Length{px: math.Abs(l.px)} }

// Neg returns -l.
func (l Length) Neg() Length { return Length{px: -l.px} }

// Max returns the larger of l and o.
func (l Length) Max(o Length) Length {
	if o.px > l.px {
		return o
	}
	return l
}

// Min returns the smaller of l and o.
func (l Length) Min(o Length) Length {
	if o.px < l.px {
		return o
	}
	return l
}

// Greater reports whether l > o.
func (l Length) Greater(o Length) bool { return l.px > o.px }

// Less reports whether l < o.
func (l Length) Less(o Length) bool { return l.px < o.px }

// Equal reports whether l and o are the same length.
func (l Length) Equal(o Length) bool { return l.px == o.px }

// EqualF reports whether l equals the bare scalar f.
func (l Length) EqualF(f float64) bool { return l.px == f }

// IsZero reports whether l is exactly 0px.
func (l Length) IsZero() bool { return l.px == 0 }

// IsFinite reports whether l is neither NaN nor infinite.
func (l Length) IsFinite() bool { return !math.IsNaN(l.px) && !math.IsInf(l.px, 0) }

// String formats the length as the shortest decimal that round-trips,
// without a unit suffix (e.g. "100", "0.5").
func (l Length) String() string {
	return strconv.FormatFloat(l.px, 'f', -1, 64)
}
