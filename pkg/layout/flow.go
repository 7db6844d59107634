package layout

import "github.com/matzehuels/clemen/pkg/unit"

// flowOptions selects the differences between block and flexible placement.
type flowOptions struct {
	wrap     bool // start a new row when a child would cross the container width
	baseline bool // record each assigned position as the child's RealPosition
}

// flow places every flow child directly after its predecessor on the same
// row. The first flow child keeps its position and defines the row origin.
//
// On wrap, the child moves to x=0 below the current row: the new y is the
// row's tallest height plus the y of the row's first child plus the offset.
func (l *Layout) flow(opts flowOptions) {
	offset := l.Properties.Offset
	l.rows = l.rows[:0]

	var (
		prev, firstOfRow *Box
		row              Row
	)

	for i, b := range l.children {
		if b.IsAbsolute() {
			continue
		}

		if prev == nil {
			if opts.baseline {
				b.RealPosition = b.Position
			}
			prev, firstOfRow = b, b
			row = Row{First: i, Count: 1, Y: b.Position.Y, Height: b.Size.Y}
			continue
		}

		pos := unit.Vector2{
			X: prev.Position.X.Add(prev.Size.X).Add(offset),
			Y: prev.Position.Y,
		}

		if opts.wrap && pos.X.Add(b.Size.X).Add(offset).Greater(l.Size.X) {
			// row height is seeded with the first child's height, so a wrap
			// right after the first child never collapses onto height 0
			pos = unit.Vector2{
				X: unit.Px(0),
				Y: row.Height.Add(firstOfRow.Position.Y).Add(offset),
			}
			l.rows = append(l.rows, row)
			firstOfRow = b
			row = Row{First: i, Y: pos.Y, Height: b.Size.Y}
		}

		row.Height = row.Height.Max(b.Size.Y)
		row.Count++

		b.moveTo(pos)
		if opts.baseline {
			b.RealPosition = pos
		}
		prev = b
	}

	if prev != nil {
		l.rows = append(l.rows, row)
	}
}
