// Package layout reads and writes text descriptions of boards.
//
// A layout is a rectangle of glyphs, one line per row:
//
//	.  open cell
//	#  wall
//	S  start (exactly one)
//	D  destination (exactly one)
//
// Blank lines and lines starting with ';' are ignored, so a layout file can
// carry comments.
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/pathfind"
)

// Glyphs used by Parse and Format.
const (
	GlyphOpen        = '.'
	GlyphWall        = '#'
	GlyphStart       = 'S'
	GlyphDestination = 'D'
	commentPrefix    = ";"
)

// Sentinel errors for layout parsing.
var (
	// ErrEmptyLayout indicates that the input holds no rows.
	ErrEmptyLayout = errors.New("layout: no rows")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("layout: all rows must have the same length")
	// ErrBadGlyph indicates a character outside the glyph table.
	ErrBadGlyph = errors.New("layout: unknown glyph")
	// ErrMissingEndpoint indicates a layout without S or D.
	ErrMissingEndpoint = errors.New("layout: missing endpoint")
	// ErrDuplicateEndpoint indicates more than one S or D.
	ErrDuplicateEndpoint = errors.New("layout: duplicate endpoint")
	// ErrBadCoord indicates a malformed coordinate list.
	ErrBadCoord = errors.New("layout: malformed coordinate")
)

// Parse reads a layout and returns a fresh, editable grid with its walls painted.
func Parse(r io.Reader) (*pathfind.Grid, error) {
	var (
		rows        []string
		start, dest *pathfind.Coord
		walls       []pathfind.Coord
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		if len(rows) > 0 && len(text) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(text), len(rows[0]))
		}

		row := len(rows)
		for col, ch := range []byte(text) {
			c := pathfind.Coord{Row: row, Col: col}
			switch ch {
			case GlyphOpen:
			case GlyphWall:
				walls = append(walls, c)
			case GlyphStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second %c at line %d col %d", ErrDuplicateEndpoint, ch, line, col+1)
				}
				start = &c
			case GlyphDestination:
				if dest != nil {
					return nil, fmt.Errorf("%w: second %c at line %d col %d", ErrDuplicateEndpoint, ch, line, col+1)
				}
				dest = &c
			default:
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrBadGlyph, ch, line, col+1)
			}
		}
		rows = append(rows, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("layout: read: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}
	if start == nil {
		return nil, fmt.Errorf("%w: no %c", ErrMissingEndpoint, GlyphStart)
	}
	if dest == nil {
		return nil, fmt.Errorf("%w: no %c", ErrMissingEndpoint, GlyphDestination)
	}

	g, err := pathfind.NewGrid(len(rows), len(rows[0]), *start, *dest)
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		if err = g.ToggleObstacle(w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*pathfind.Grid, error) {
	return Parse(strings.NewReader(s))
}

// Format writes the editable content of g (walls and endpoints) as a layout.
// Search state is not written; Parse(Format(g)) yields a fresh copy of the board.
func Format(w io.Writer, g *pathfind.Grid) error {
	snap := g.Snapshot()
	bw := bufio.NewWriter(w)
	for r := 0; r < snap.Rows(); r++ {
		for c := 0; c < snap.Cols(); c++ {
			p := pathfind.Coord{Row: r, Col: c}
			v, _ := snap.At(p)
			ch := byte(GlyphOpen)
			switch {
			case p == snap.Start():
				ch = GlyphStart
			case p == snap.Destination():
				ch = GlyphDestination
			case v.IsObstacle():
				ch = GlyphWall
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseCoords parses "r,c;r,c;..." into coordinates. Whitespace around items
// is ignored and an empty string yields an empty list.
func ParseCoords(s string) ([]pathfind.Coord, error) {
	var out []pathfind.Coord
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		c, err := ParseCoord(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseCoord parses a single "r,c" pair.
func ParseCoord(s string) (pathfind.Coord, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return pathfind.Coord{}, fmt.Errorf("%w: %q (want row,col)", ErrBadCoord, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return pathfind.Coord{}, fmt.Errorf("%w: row in %q: %v", ErrBadCoord, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return pathfind.Coord{}, fmt.Errorf("%w: col in %q: %v", ErrBadCoord, s, err)
	}
	return pathfind.Coord{Row: r, Col: c}, nil
}
