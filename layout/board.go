package layout

import (
	"fmt"

	"github.com/katalvlaran/gridpath/pathfind"
)

// Classic board: 20 rows by 50 columns, start in column 8 and destination in
// column 41 of the middle row.
const (
	DefaultRows     = 20
	DefaultCols     = 50
	startColumn     = 8
	destColumn      = 41
	minClassicWidth = destColumn + 1
)

// Board describes board dimensions.
type Board struct {
	Rows int
	Cols int
}

// Default returns the classic 20×50 board.
func Default() Board {
	return Board{Rows: DefaultRows, Cols: DefaultCols}
}

// Endpoints returns the classic start and destination for b: the middle row,
// columns 8 and 41. Boards narrower than 42 columns get the endpoints a quarter
// and three quarters of the way across instead.
func (b Board) Endpoints() (start, dest pathfind.Coord) {
	mid := b.Rows / 2
	if b.Cols >= minClassicWidth {
		return pathfind.Coord{Row: mid, Col: startColumn}, pathfind.Coord{Row: mid, Col: destColumn}
	}
	return pathfind.Coord{Row: mid, Col: b.Cols / 4}, pathfind.Coord{Row: mid, Col: b.Cols * 3 / 4}
}

// NewGrid builds an empty grid of size b with the classic endpoints.
func (b Board) NewGrid() (*pathfind.Grid, error) {
	start, dest := b.Endpoints()
	return pathfind.NewGrid(b.Rows, b.Cols, start, dest)
}

func (b Board) String() string {
	return fmt.Sprintf("%dx%d", b.Rows, b.Cols)
}
