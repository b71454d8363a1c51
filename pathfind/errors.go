package pathfind

import "errors"

// Sentinel errors for grid construction, editing and engine execution.
var (
	// ErrInvalidConfiguration indicates bad grid dimensions or endpoints.
	ErrInvalidConfiguration = errors.New("pathfind: invalid grid configuration")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("pathfind: coordinate out of bounds")

	// ErrIllegalState indicates an edit that the grid cannot accept right now:
	// toggling an endpoint, or editing a grid that a search has claimed.
	ErrIllegalState = errors.New("pathfind: illegal state")

	// ErrNilGrid indicates that a nil *Grid was passed to the engine.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrReconstructionFailed indicates that a settled cell had no neighbor one
	// step closer to the start. It means the expansion invariants were broken.
	ErrReconstructionFailed = errors.New("pathfind: path reconstruction failed")

	// ErrExhausted is returned by Next after the terminal step was delivered.
	ErrExhausted = errors.New("pathfind: step sequence exhausted")

	// ErrRunning is returned by Result before the run has completed.
	ErrRunning = errors.New("pathfind: run not completed")
)
