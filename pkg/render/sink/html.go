package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/clemen/pkg/snapshot"
)

const htmlStyle = `<style>
  div:nth-child(even) { background: ` + ColorEven + `; }
  div:nth-child(odd) { background: ` + ColorOdd + `; }
  div:nth-child(3n) { background: ` + ColorThird + `; }
  div:nth-child(4n) { background: ` + ColorFourth + `; }
</style>`

// RenderHTML renders s as an HTML fragment: a style block followed by one
// absolutely positioned <div> per immediate child, with id set to the
// child's index. A box carrying a sub-layout is followed by a <layout>
// element at the same geometry that holds the sub-layout's markup.
func RenderHTML(s snapshot.Snapshot) []byte {
	var buf bytes.Buffer
	buf.WriteString(htmlStyle)
	buf.WriteByte('\n')
	writeHTML(&buf, s)
	return buf.Bytes()
}

func writeHTML(buf *bytes.Buffer, s snapshot.Snapshot) {
	for _, b := range s.Boxes {
		fmt.Fprintf(buf, `<div style="position: absolute; left: %spx; top: %spx; width: %spx; height: %spx" id="%d"></div>`+"\n",
			px(b.X), px(b.Y), px(b.Width), px(b.Height), b.Index)
	}
	for _, b := range s.Boxes {
		if b.Layout == nil {
			continue
		}
		fmt.Fprintf(buf, `<layout style="border: inset 1px red; position: absolute; left: %spx; top: %spx; width: %spx; height: %spx;">`+"\n",
			px(b.X), px(b.Y), px(b.Width), px(b.Height))
		writeHTML(buf, *b.Layout)
		buf.WriteString("</layout>\n")
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
