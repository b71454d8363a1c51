// Package pathfind defines the grid model, per-cell search state and the
// step types produced by the incremental search engine.
package pathfind

import (
	"fmt"
	"math"
)

// Unreached is the distance of a cell the search has not discovered yet.
// It plays the role of +∞ in comparisons.
const Unreached = math.MaxInt

// Coord addresses one cell by row and column. Row 0 is the top row.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// neighborOffsets is the von Neumann neighborhood in the fixed order
// up, down, left, right. Path reconstruction breaks ties in this order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// State is the tagged search state of a single cell.
//
// A cell is in exactly one state at a time, so combinations such as
// "settled and frontier" or "wall on the path" cannot be expressed.
type State uint8

const (
	// Open is an undiscovered, passable cell.
	Open State = iota
	// Wall is an obstacle. Walls are never discovered, settled or traced.
	Wall
	// Frontier is a discovered cell whose distance is still tentative.
	Frontier
	// Settled is a cell whose shortest distance is final.
	Settled
	// OnPath is a settled cell that path reconstruction marked as part of the route.
	OnPath
)

var stateNames = [...]string{"open", "wall", "frontier", "settled", "path"}

// String returns the lower-case name of s.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// cell is the mutable per-position record owned by Grid.
type cell struct {
	state State
	dist  int
}

// CellView is a read-only copy of one cell.
type CellView struct {
	Coord    Coord
	State    State
	Distance int // Unreached until discovered
}

// IsObstacle reports whether the cell is a wall.
func (v CellView) IsObstacle() bool { return v.State == Wall }

// IsFrontier reports whether the cell is in the active frontier.
func (v CellView) IsFrontier() bool { return v.State == Frontier }

// IsSettled reports whether the cell's distance is final. Path cells are settled.
func (v CellView) IsSettled() bool { return v.State == Settled || v.State == OnPath }

// IsOnPath reports whether path reconstruction marked the cell.
func (v CellView) IsOnPath() bool { return v.State == OnPath }

// Reached reports whether the cell carries a finite distance.
func (v CellView) Reached() bool { return v.Distance != Unreached }

// Phase tells which part of the run produced a Step.
type Phase uint8

const (
	// PhaseExpand steps settle one frontier cell each.
	PhaseExpand Phase = iota
	// PhaseTrace steps mark one cell of the reconstructed path each.
	PhaseTrace
	// PhaseDone is the single terminal step carrying the Outcome.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseExpand:
		return "expand"
	case PhaseTrace:
		return "trace"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Outcome is the terminal result of a run.
type Outcome uint8

const (
	// OutcomePending means the run has not reached its terminal step.
	OutcomePending Outcome = iota
	// OutcomeFound means the destination was settled and the path traced.
	OutcomeFound
	// OutcomeNoPath means the frontier emptied before the destination was settled.
	OutcomeNoPath
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeFound:
		return "found"
	case OutcomeNoPath:
		return "no path"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Status is the engine's lifecycle state.
//
//	Idle → Running → Completed
//	          └────→ Failed
type Status uint8

const (
	// StatusIdle: created, no step taken, grid still editable.
	StatusIdle Status = iota
	// StatusRunning: at least one step taken, terminal step not yet delivered.
	StatusRunning
	// StatusCompleted: the terminal step was delivered.
	StatusCompleted
	// StatusFailed: the run stopped on an error (cancellation or reconstruction failure).
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Step is one suspension point of a run.
//
// For PhaseExpand, Cell is the cell just settled, Distance its final distance
// and Discovered the cells that entered the frontier while relaxing it.
// For PhaseTrace, Cell is the cell just marked OnPath.
// For PhaseDone, Cell is the destination and Outcome is set.
// Snapshot always reflects the grid right after the step was applied.
type Step struct {
	Index      int
	Phase      Phase
	Cell       Coord
	Distance   int
	Discovered []Coord
	Outcome    Outcome
	Snapshot   Snapshot
}

// Result summarizes a completed run.
type Result struct {
	Outcome  Outcome
	Distance int     // destination distance; Unreached for OutcomeNoPath
	Path     []Coord // start → destination inclusive; nil for OutcomeNoPath
	Settled  int     // cells settled, start included
	Steps    int     // steps emitted, terminal step included
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Outcome == OutcomeFound }
