package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/clemen/pkg/snapshot"
)

// RenderTree renders s as an indented outline, one line per box:
//
//	block 200x100
//	  [0] 100x100 at (0, 0)
//	    flexible 100x100
//	      [0] 60x50 at (0, 0)
//	  [1] 100x100 at (100, 0) resized from 120x100 at (100, 0)
func RenderTree(s snapshot.Snapshot) []byte {
	var buf bytes.Buffer
	writeTree(&buf, s, 0)
	return buf.Bytes()
}

func writeTree(buf *bytes.Buffer, s snapshot.Snapshot, level int) {
	indent := strings.Repeat("  ", level)
	fmt.Fprintf(buf, "%s%s %sx%s", indent, s.Variant, px(s.Width), px(s.Height))
	if s.Col {
		buf.WriteString(" col")
	}
	if s.Offset != 0 {
		fmt.Fprintf(buf, " offset=%s", px(s.Offset))
	}
	buf.WriteByte('\n')

	for _, b := range s.Boxes {
		fmt.Fprintf(buf, "%s  [%d] %sx%s at (%s, %s)", indent, b.Index,
			px(b.Width), px(b.Height), px(b.X), px(b.Y))
		if b.IsAbsolute() {
			buf.WriteString(" absolute")
		}
		if b.Resized() {
			fmt.Fprintf(buf, " resized from %sx%s at (%s, %s)",
				px(b.RealWidth), px(b.RealHeight), px(b.RealX), px(b.RealY))
		}
		buf.WriteByte('\n')
		if b.Layout != nil {
			writeTree(buf, *b.Layout, level+2)
		}
	}
}
