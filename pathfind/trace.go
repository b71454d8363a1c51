package pathfind

import "fmt"

// trace moves the reconstruction cursor one cell toward the start.
//
// Among the neighbors of the cursor, in the order up, down, left, right, it
// picks the settled cell with the strictly smallest distance that is also
// below the cursor's own distance; the first such minimum wins. That cell is
// marked OnPath and becomes the new cursor. The start is marked when reached;
// the destination never is, so the number of OnPath cells equals the
// destination's distance.
//
// Every settled cell other than the start has a neighbor at distance-1, so a
// missing candidate means the expansion broke its invariants.
func (e *Engine) trace() (Step, error) {
	g := e.g
	g.mu.Lock()

	hc := g.coord(e.head)
	headDist := g.cells[e.head].dist
	best, bestDist := -1, headDist
	for _, d := range neighborOffsets {
		v := Coord{Row: hc.Row + d[0], Col: hc.Col + d[1]}
		if !g.InBounds(v) {
			continue
		}
		vi := g.index(v)
		cl := g.cells[vi]
		if cl.state != Settled && cl.state != OnPath {
			continue
		}
		if cl.dist < bestDist {
			best, bestDist = vi, cl.dist
		}
	}
	if best < 0 {
		g.mu.Unlock()
		return Step{}, fmt.Errorf("%w: no settled neighbor of %v below distance %d", ErrReconstructionFailed, hc, headDist)
	}

	g.cells[best].state = OnPath
	snap := g.snapshotLocked()
	g.mu.Unlock()

	c := g.coord(best)
	e.head = best
	e.trail = append(e.trail, c)
	e.opts.OnTrace(c, bestDist)

	return e.emit(Step{
		Phase:    PhaseTrace,
		Cell:     c,
		Distance: bestDist,
		Snapshot: snap,
	}), nil
}
