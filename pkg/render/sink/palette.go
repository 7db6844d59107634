package sink

// Box fill colours.
const (
	ColorEven   = "#e53935" // red
	ColorOdd    = "#1e88e5" // blue
	ColorThird  = "#8e24aa" // purple
	ColorFourth = "#43a047" // green

	colorBaseline = "#212121"
	colorFrame    = "#9e9e9e"
)

// Fill returns the fill colour for the box at index i. Every fourth box is
// green, every third purple, and the rest alternate blue and red, counting
// from one.
func Fill(i int) string {
	n := i + 1
	switch {
	case n%4 == 0:
		return ColorFourth
	case n%3 == 0:
		return ColorThird
	case n%2 == 1:
		return ColorOdd
	default:
		return ColorEven
	}
}
