package pathfind

import (
	"fmt"
	"sync"
)

// gridPhase tracks who may write to a Grid.
type gridPhase uint8

const (
	gridEditable  gridPhase = iota // obstacle edits allowed
	gridSearching                  // an engine owns the search fields
	gridSearched                   // run finished; the grid is read-only
)

// Grid is a rectangular board of cells with two fixed endpoints.
//
// Obstacles may be edited only until an Engine takes its first step. From then
// on the engine is the single writer and every edit fails with ErrIllegalState.
// A Grid serves exactly one run; start a new session with a new Grid.
//
// All methods are safe for concurrent use. Each engine step is applied under
// the write lock, so readers never observe a half-updated step.
type Grid struct {
	mu          sync.RWMutex
	rows, cols  int
	start, dest Coord
	cells       []cell // row-major
	phase       gridPhase
}

// NewGrid builds a rows×cols grid with no obstacles.
// Every cell is Open with distance Unreached, except start at distance 0.
//
// Returns ErrInvalidConfiguration if rows < 1, cols < 1, either endpoint lies
// outside the grid, or start == destination.
func NewGrid(rows, cols int, start, destination Coord) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, start: start, dest: destination}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d", ErrInvalidConfiguration, start, rows, cols)
	}
	if !g.InBounds(destination) {
		return nil, fmt.Errorf("%w: destination %v outside %dx%d", ErrInvalidConfiguration, destination, rows, cols)
	}
	if start == destination {
		return nil, fmt.Errorf("%w: start and destination are both %v", ErrInvalidConfiguration, start)
	}

	g.cells = make([]cell, rows*cols)
	for i := range g.cells {
		g.cells[i] = cell{state: Open, dist: Unreached}
	}
	g.cells[g.index(start)].dist = 0

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Destination returns the destination coordinate.
func (g *Grid) Destination() Coord { return g.dest }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Editable reports whether obstacle edits are currently accepted.
func (g *Grid) Editable() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.phase == gridEditable
}

// ToggleObstacle flips the wall flag of the cell at c.
//
// Returns ErrOutOfBounds for coordinates outside the grid and ErrIllegalState
// if c is an endpoint or a search has claimed the grid. On error nothing changes.
func (g *Grid) ToggleObstacle(c Coord) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEditLocked(c); err != nil {
		return err
	}
	cl := &g.cells[g.index(c)]
	if cl.state == Wall {
		cl.state = Open
	} else {
		cl.state = Wall
	}

	return nil
}

// SetObstacle makes the cell at c a wall (wall == true) or open.
// It follows the same rules as ToggleObstacle and is idempotent, which suits
// drag-painting where the pointer may pass the same cell several times.
func (g *Grid) SetObstacle(c Coord, wall bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEditLocked(c); err != nil {
		return err
	}
	if wall {
		g.cells[g.index(c)].state = Wall
	} else {
		g.cells[g.index(c)].state = Open
	}

	return nil
}

func (g *Grid) checkEditLocked(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	if c == g.start || c == g.dest {
		return fmt.Errorf("%w: endpoint %v cannot become an obstacle", ErrIllegalState, c)
	}
	if g.phase != gridEditable {
		return fmt.Errorf("%w: grid is claimed by a search", ErrIllegalState)
	}

	return nil
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Obstacles are included; callers filter by state.
// Returns nil if c itself is out of bounds.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cell returns a copy of the cell at c, or ErrOutOfBounds.
func (g *Grid) Cell(c Coord) (CellView, error) {
	if !g.InBounds(c) {
		return CellView{}, fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.viewLocked(c), nil
}

// Snapshot returns an immutable copy of the whole grid.
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.snapshotLocked()
}

// index maps c to its row-major slot.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coord converts a row-major slot back to a Coord.
func (g *Grid) coord(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

func (g *Grid) viewLocked(c Coord) CellView {
	cl := g.cells[g.index(c)]
	return CellView{Coord: c, State: cl.state, Distance: cl.dist}
}

// claim moves the grid from editable to searching.
func (g *Grid) claim() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != gridEditable {
		return fmt.Errorf("%w: grid was already searched; build a fresh grid", ErrIllegalState)
	}
	g.phase = gridSearching

	return nil
}

// release marks the run as finished. The grid stays read-only.
func (g *Grid) release() {
	g.mu.Lock()
	g.phase = gridSearched
	g.mu.Unlock()
}
