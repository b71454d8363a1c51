// Package render turns pathfind snapshots into something a person can look
// at: ASCII frames for terminals and PNG frames drawn with fogleman/gg.
//
// The search core knows nothing about presentation. Everything here is
// derived from a Snapshot through Classify.
package render

import (
	"fmt"

	"github.com/katalvlaran/gridpath/pathfind"
)

// Style is the visual class of one cell.
type Style uint8

const (
	Empty Style = iota
	Frontier
	Settled
	Wall
	Path
	Start
	Destination
)

var styleNames = [...]string{"empty", "frontier", "settled", "wall", "path", "start", "destination"}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// Classify picks the style of the cell at c.
// Endpoints win over search state: destination, then start, then the cell state.
func Classify(s pathfind.Snapshot, c pathfind.Coord) Style {
	switch c {
	case s.Destination():
		return Destination
	case s.Start():
		return Start
	}
	v, ok := s.At(c)
	if !ok {
		return Empty
	}
	switch v.State {
	case pathfind.OnPath:
		return Path
	case pathfind.Wall:
		return Wall
	case pathfind.Settled:
		return Settled
	case pathfind.Frontier:
		return Frontier
	default:
		return Empty
	}
}

// glyphs indexed by Style.
var glyphs = [...]byte{
	Empty:       '.',
	Frontier:    '+',
	Settled:     'o',
	Wall:        '#',
	Path:        '*',
	Start:       'S',
	Destination: 'D',
}

// Glyph returns the ASCII character for st.
func Glyph(st Style) byte {
	if int(st) < len(glyphs) {
		return glyphs[st]
	}
	return '?'
}
