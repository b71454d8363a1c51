package layout_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/pathfind"
)

const gap = `
; row 1 walled except the middle
S..
#.#
..D
`

func TestParse(t *testing.T) {
	g, err := layout.ParseString(gap)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, pathfind.Coord{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, pathfind.Coord{Row: 2, Col: 2}, g.Destination())
	assert.True(t, g.Editable())

	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Count(pathfind.Wall))
	v, _ := snap.At(pathfind.Coord{Row: 1, Col: 0})
	assert.True(t, v.IsObstacle())

	res, err := pathfind.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", layout.ErrEmptyLayout},
		{"OnlyComments", "; nothing\n\n", layout.ErrEmptyLayout},
		{"Jagged", "S..\n.D\n", layout.ErrNonRectangular},
		{"BadGlyph", "S.x\n..D\n", layout.ErrBadGlyph},
		{"NoStart", "...\n..D\n", layout.ErrMissingEndpoint},
		{"NoDestination", "S..\n...\n", layout.ErrMissingEndpoint},
		{"TwoStarts", "S.S\n..D\n", layout.ErrDuplicateEndpoint},
		{"TwoDestinations", "S.D\n..D\n", layout.ErrDuplicateEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := layout.ParseString(tc.in)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	in := "S..#\n.#..\n...D\n"
	g, err := layout.ParseString(in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, layout.Format(&buf, g))
	assert.Equal(t, in, buf.String())

	// search state is not written
	_, err = pathfind.Solve(g)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, layout.Format(&buf, g))
	assert.Equal(t, in, buf.String())
}

func TestParseCoords(t *testing.T) {
	cs, err := layout.ParseCoords(" 1,2 ; 3, 4;;0,0 ")
	require.NoError(t, err)
	assert.Equal(t, []pathfind.Coord{{Row: 1, Col: 2}, {Row: 3, Col: 4}, {Row: 0, Col: 0}}, cs)

	cs, err = layout.ParseCoords("")
	require.NoError(t, err)
	assert.Empty(t, cs)

	for _, bad := range []string{"1", "a,2", "1,b", "1;2"} {
		_, err = layout.ParseCoords(bad)
		assert.ErrorIs(t, err, layout.ErrBadCoord, bad)
	}
}

func TestBoard(t *testing.T) {
	b := layout.Default()
	assert.Equal(t, "20x50", b.String())

	start, dest := b.Endpoints()
	assert.Equal(t, pathfind.Coord{Row: 10, Col: 8}, start)
	assert.Equal(t, pathfind.Coord{Row: 10, Col: 41}, dest)

	g, err := b.NewGrid()
	require.NoError(t, err)
	res, err := pathfind.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 33, res.Distance)

	start, dest = layout.Board{Rows: 5, Cols: 8}.Endpoints()
	assert.Equal(t, pathfind.Coord{Row: 2, Col: 2}, start)
	assert.Equal(t, pathfind.Coord{Row: 2, Col: 6}, dest)

	_, err = layout.Board{Rows: 0, Cols: 50}.NewGrid()
	assert.ErrorIs(t, err, pathfind.ErrInvalidConfiguration)
}
