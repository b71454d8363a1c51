package pathfind

import (
	"errors"
	"fmt"
	"iter"
)

// runPhase is the engine's position inside a run.
type runPhase uint8

const (
	runExpand runPhase = iota
	runTrace
	runFinish
)

// Engine runs one uniform-cost search over one Grid and exposes it as a
// pull-based, finite, ordered sequence of Steps.
//
// Every call to Next applies exactly one logical step and returns a snapshot
// taken right after it: one PhaseExpand step per settled cell (the start is
// settled silently before the first), one PhaseTrace step per path cell, then
// a single PhaseDone step carrying the Outcome. The engine never sleeps; pacing
// belongs to whoever pulls the steps.
//
// An Engine is not safe for concurrent calls to Next. The Grid it drives is,
// so another goroutine may read snapshots or attempt edits meanwhile.
type Engine struct {
	g    *Grid
	opts Options

	status  Status
	phase   runPhase
	claimed bool
	err     error

	front    *frontier
	destDone bool
	head     int     // trace cursor, row-major index
	trail    []Coord // cells marked OnPath, nearest to the destination first
	outcome  Outcome
	destDist int
	settled  int
	steps    int
}

// New prepares an Engine over g. The grid is not touched until the first Next.
//
// Returns ErrNilGrid for a nil grid, ErrOptionViolation for invalid options and
// ErrIllegalState when g has already been searched.
func New(g *Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Editable() {
		return nil, fmt.Errorf("%w: grid was already searched; build a fresh grid", ErrIllegalState)
	}

	return &Engine{g: g, opts: o, status: StatusIdle}, nil
}

// Status returns the engine's lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Grid returns the grid the engine drives.
func (e *Engine) Grid() *Grid { return e.g }

// Next advances the run to its next suspension point.
//
// The first call claims the grid, after which obstacle edits fail with
// ErrIllegalState. After the PhaseDone step Next returns ErrExhausted.
// If the context is cancelled Next returns ctx.Err(); if path reconstruction
// finds a broken distance chain it returns ErrReconstructionFailed. Both leave
// the engine in StatusFailed and every later call returns the same error.
func (e *Engine) Next() (Step, error) {
	switch e.status {
	case StatusCompleted:
		return Step{}, ErrExhausted
	case StatusFailed:
		return Step{}, e.err
	}
	if err := e.opts.Ctx.Err(); err != nil {
		return Step{}, e.fail(err)
	}
	if e.status == StatusIdle {
		if err := e.begin(); err != nil {
			return Step{}, e.fail(err)
		}
	}

	for {
		switch e.phase {
		case runExpand:
			if !e.destDone && e.front.Len() > 0 {
				return e.expand(), nil
			}
			if e.destDone {
				e.phase = runTrace
				e.head = e.g.index(e.g.dest)
			} else {
				e.outcome = OutcomeNoPath
				e.phase = runFinish
			}

		case runTrace:
			if e.head == e.g.index(e.g.start) {
				e.outcome = OutcomeFound
				e.phase = runFinish
				continue
			}
			st, err := e.trace()
			if err != nil {
				return Step{}, e.fail(err)
			}
			return st, nil

		default:
			return e.finish(), nil
		}
	}
}

// All returns the remaining steps as a range-over-func sequence.
// It stops after the PhaseDone step, or after yielding the first error.
func (e *Engine) All() iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		for {
			st, err := e.Next()
			if errors.Is(err, ErrExhausted) {
				return
			}
			if err != nil {
				yield(Step{}, err)
				return
			}
			if !yield(st, nil) {
				return
			}
		}
	}
}

// Result returns the run summary once the PhaseDone step has been delivered.
// Before that it returns ErrRunning; a failed run returns its error.
func (e *Engine) Result() (Result, error) {
	switch e.status {
	case StatusCompleted:
	case StatusFailed:
		return Result{}, e.err
	default:
		return Result{}, ErrRunning
	}

	res := Result{
		Outcome:  e.outcome,
		Distance: Unreached,
		Settled:  e.settled,
		Steps:    e.steps,
	}
	if e.outcome == OutcomeFound {
		res.Path = make([]Coord, 0, len(e.trail)+1)
		for i := len(e.trail) - 1; i >= 0; i-- {
			res.Path = append(res.Path, e.trail[i])
		}
		res.Path = append(res.Path, e.g.dest)
		res.Distance = e.destDist
	}

	return res, nil
}

// Run is New followed by All. A construction error is yielded as the only element.
func Run(g *Grid, opts ...Option) iter.Seq2[Step, error] {
	e, err := New(g, opts...)
	if err != nil {
		return func(yield func(Step, error) bool) {
			yield(Step{}, err)
		}
	}
	return e.All()
}

// Solve drains a run and returns its Result.
func Solve(g *Grid, opts ...Option) (Result, error) {
	e, err := New(g, opts...)
	if err != nil {
		return Result{}, err
	}
	for _, err := range e.All() {
		if err != nil {
			return Result{}, err
		}
	}
	return e.Result()
}

// begin claims the grid and settles the start cell.
func (e *Engine) begin() error {
	if err := e.g.claim(); err != nil {
		return err
	}
	e.claimed = true
	e.status = StatusRunning
	e.front = newFrontier(e.opts.TieBreak)

	g := e.g
	s := g.index(g.start)
	g.mu.Lock()
	discovered := e.relaxLocked(s)
	g.cells[s].state = Settled
	g.mu.Unlock()

	e.settled++
	e.opts.OnSettle(g.start, 0)
	e.notifyDiscovered(discovered, 1)

	return nil
}

// expand settles the minimum frontier cell and relaxes its neighbors.
func (e *Engine) expand() Step {
	g := e.g
	g.mu.Lock()
	item := e.front.popMin()
	g.cells[item.idx].state = Settled
	if item.idx == g.index(g.dest) {
		e.destDone = true
	}
	discovered := e.relaxLocked(item.idx)
	snap := g.snapshotLocked()
	g.mu.Unlock()

	c := g.coord(item.idx)
	e.settled++
	e.opts.OnSettle(c, item.dist)
	e.notifyDiscovered(discovered, item.dist+1)

	return e.emit(Step{
		Phase:      PhaseExpand,
		Cell:       c,
		Distance:   item.dist,
		Discovered: discovered,
		Snapshot:   snap,
	})
}

// relaxLocked offers every passable, unsettled neighbor of u to the frontier
// at dist(u)+1 and returns the cells that were newly discovered.
// The caller holds the grid write lock.
func (e *Engine) relaxLocked(u int) []Coord {
	g := e.g
	uc := g.coord(u)
	cand := g.cells[u].dist + 1

	var discovered []Coord
	for _, d := range neighborOffsets {
		v := Coord{Row: uc.Row + d[0], Col: uc.Col + d[1]}
		if !g.InBounds(v) {
			continue
		}
		vi := g.index(v)
		cl := &g.cells[vi]
		if cl.state == Wall || cl.state == Settled || cl.state == OnPath {
			continue
		}
		added, lowered := e.front.offer(vi, cand)
		switch {
		case added:
			cl.state = Frontier
			cl.dist = cand
			discovered = append(discovered, v)
		case lowered:
			cl.dist = cand
		}
	}

	return discovered
}

// notifyDiscovered runs OnDiscover outside the lock. Cells discovered by one
// relaxation all share the same distance.
func (e *Engine) notifyDiscovered(cs []Coord, dist int) {
	for _, c := range cs {
		e.opts.OnDiscover(c, dist)
	}
}

// finish delivers the terminal step and releases the grid.
func (e *Engine) finish() Step {
	g := e.g
	g.mu.RLock()
	snap := g.snapshotLocked()
	dist := g.cells[g.index(g.dest)].dist
	g.mu.RUnlock()
	g.release()

	e.destDist = dist
	e.status = StatusCompleted

	return e.emit(Step{
		Phase:    PhaseDone,
		Cell:     g.dest,
		Distance: dist,
		Outcome:  e.outcome,
		Snapshot: snap,
	})
}

func (e *Engine) emit(st Step) Step {
	e.steps++
	st.Index = e.steps
	return st
}

func (e *Engine) fail(err error) error {
	e.status = StatusFailed
	e.err = err
	if e.claimed {
		e.g.release()
	}
	return err
}
