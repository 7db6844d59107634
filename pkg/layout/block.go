package layout

// recalculateAsBlock places children in wrapping rows without resizing them.
// Absolute children keep their caller-assigned geometry, as in flexible layouts.
func (l *Layout) recalculateAsBlock() {
	l.flow(flowOptions{wrap: true})
}
