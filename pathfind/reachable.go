package pathfind

// Reachable returns every non-wall cell connected to the start through
// orthogonal moves, in breadth-first order from the start (start first).
//
// It reads only the wall layout, so it gives the same answer before, during
// and after a run. The cells a run settles are always a subset of this set,
// and the whole set when the run ends with OutcomeNoPath.
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for the seen flags and the queue.
func (g *Grid) Reachable() []Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.reachableLocked()
}

// Connected reports whether the destination is reachable from the start.
func (g *Grid) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, c := range g.reachableLocked() {
		if c == g.dest {
			return true
		}
	}
	return false
}

func (g *Grid) reachableLocked() []Coord {
	seen := make([]bool, len(g.cells))
	s := g.index(g.start)
	seen[s] = true
	queue := []int{s}

	for qi := 0; qi < len(queue); qi++ {
		u := g.coord(queue[qi])
		for _, d := range neighborOffsets {
			v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
			if !g.InBounds(v) {
				continue
			}
			vi := g.index(v)
			if seen[vi] || g.cells[vi].state == Wall {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	out := make([]Coord, len(queue))
	for i, idx := range queue {
		out[i] = g.coord(idx)
	}
	return out
}
