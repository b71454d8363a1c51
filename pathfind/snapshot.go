package pathfind

import "iter"

// Snapshot is an immutable point-in-time copy of a Grid.
// It owns its cell slice, so later steps never change an earlier snapshot.
type Snapshot struct {
	rows, cols  int
	start, dest Coord
	cells       []cell
}

func (g *Grid) snapshotLocked() Snapshot {
	cells := make([]cell, len(g.cells))
	copy(cells, g.cells)

	return Snapshot{rows: g.rows, cols: g.cols, start: g.start, dest: g.dest, cells: cells}
}

// Rows returns the number of rows.
func (s Snapshot) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Snapshot) Cols() int { return s.cols }

// Start returns the start coordinate.
func (s Snapshot) Start() Coord { return s.start }

// Destination returns the destination coordinate.
func (s Snapshot) Destination() Coord { return s.dest }

// InBounds reports whether c lies within the snapshot.
func (s Snapshot) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < s.rows && c.Col >= 0 && c.Col < s.cols
}

// At returns the cell at c. ok is false when c is out of bounds.
func (s Snapshot) At(c Coord) (v CellView, ok bool) {
	if !s.InBounds(c) {
		return CellView{}, false
	}
	cl := s.cells[c.Row*s.cols+c.Col]

	return CellView{Coord: c, State: cl.state, Distance: cl.dist}, true
}

// Cells iterates all cells in row-major order.
func (s Snapshot) Cells() iter.Seq[CellView] {
	return func(yield func(CellView) bool) {
		for i, cl := range s.cells {
			v := CellView{Coord: Coord{Row: i / s.cols, Col: i % s.cols}, State: cl.state, Distance: cl.dist}
			if !yield(v) {
				return
			}
		}
	}
}

// Count returns how many cells are in state st.
// Count(Settled) does not include OnPath cells.
func (s Snapshot) Count(st State) int {
	n := 0
	for _, cl := range s.cells {
		if cl.state == st {
			n++
		}
	}
	return n
}
