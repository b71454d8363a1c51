// Package pathfind is the search core of gridpath: a rectangular grid of
// cells with painted obstacles, and an incremental shortest-path engine that
// exposes its own progress one step at a time.
//
// What:
//
//   - Grid holds rows×cols cells, a fixed start and a fixed destination.
//     Obstacles are toggled before a search; the engine owns every other field.
//   - Each cell carries a single tagged State (Open, Wall, Frontier, Settled,
//     OnPath) plus a distance, so illegal flag combinations cannot occur.
//   - Engine runs uniform-cost search (Dijkstra with unit edge weights) from
//     start to destination and then walks the distance gradient back to mark
//     the path.
//   - The run is a pull-based sequence of Steps, each with an immutable
//     Snapshot. Callers animate it at whatever pace they like.
//
// Step sequence:
//
//	Next → Expand(1) … Expand(n) → Trace(1) … Trace(d) → Done(Outcome) → ErrExhausted
//
//   - The start is settled before the first Expand step and emits no step.
//   - One Expand step per settled cell, the destination included.
//   - One Trace step per marked cell, ending at the start; d is the
//     destination's distance. No Trace steps when the outcome is NoPath.
//   - Done carries OutcomeFound or OutcomeNoPath. NoPath is a result, not an error.
//
// Ordering:
//
//   - Neighbors are always visited up, down, left, right.
//   - The frontier is an indexed binary heap keyed by (distance, tie key).
//     TieBreakRowMajor (default) settles the lowest row, then lowest column;
//     TieBreakInsertion settles the earliest-discovered cell.
//   - Path reconstruction takes the first neighbor, in neighbor order, with
//     the smallest settled distance.
//
// Complexity:
//
//   - Expansion: O(V log V) time, O(V) memory, V = rows·cols.
//   - Each Snapshot copies the grid: O(V) per step.
//
// Errors:
//
//   - ErrInvalidConfiguration: bad dimensions or endpoints in NewGrid.
//   - ErrOutOfBounds:          coordinate outside the grid.
//   - ErrIllegalState:         editing an endpoint or a claimed grid; reusing a grid.
//   - ErrNilGrid, ErrOptionViolation: invalid engine construction.
//   - ErrReconstructionFailed: broken distance chain while tracing; never expected.
//   - ErrExhausted, ErrRunning: sequence misuse.
//
// Example:
//
//	g, _ := pathfind.NewGrid(3, 3, pathfind.Coord{0, 0}, pathfind.Coord{2, 2})
//	_ = g.ToggleObstacle(pathfind.Coord{Row: 1, Col: 1})
//	for st, err := range pathfind.Run(g) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    draw(st.Snapshot)
//	}
package pathfind
