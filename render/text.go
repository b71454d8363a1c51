package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/pathfind"
)

// WriteText writes s as rows of glyphs, one line per grid row.
func WriteText(w io.Writer, s pathfind.Snapshot) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, s.Cols()+1)
	line[s.Cols()] = '\n'
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Cols(); c++ {
			line[c] = Glyph(Classify(s, pathfind.Coord{Row: r, Col: c}))
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Text writes every step it receives as an ASCII frame.
type Text struct {
	w      io.Writer
	header bool
}

// NewText returns a Text sink writing to w. With header set each frame is
// preceded by a "step N phase cell" line and followed by a blank line.
func NewText(w io.Writer, header bool) *Text {
	return &Text{w: w, header: header}
}

// Frame writes st.
func (t *Text) Frame(st pathfind.Step) error {
	if t.header {
		if _, err := fmt.Fprintf(t.w, "step %d %s %v\n", st.Index, st.Phase, st.Cell); err != nil {
			return err
		}
	}
	if err := WriteText(t.w, st.Snapshot); err != nil {
		return err
	}
	if t.header {
		_, err := io.WriteString(t.w, "\n")
		return err
	}
	return nil
}
