// Package driver is the control surface around the search core: it owns the
// current board, gates reset / paint / find the way the on-screen buttons do,
// and paces the step sequence in wall-clock time for animation.
package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/gridpath/pathfind"
)

// Sentinel errors for session gating.
var (
	// ErrBusy is returned by Find, Reset, Toggle and Paint while a search runs.
	ErrBusy = errors.New("driver: search in progress")
	// ErrNotClean is returned by Find once the board has been searched; Reset first.
	ErrNotClean = errors.New("driver: board already searched; reset first")
)

// Session holds one board at a time. A board is searched at most once;
// Reset replaces it with a fresh one built from the Config.
//
// Gating:
//
//	           Find      Reset     Toggle/Paint
//	clean      allowed   allowed   allowed
//	finding    ErrBusy   ErrBusy   ErrBusy
//	searched   ErrNotClean allowed ErrIllegalState (from the grid)
type Session struct {
	cfg    Config
	logger log.Logger

	mu      sync.Mutex
	grid    *pathfind.Grid
	finding bool
	clean   bool
}

// NewSession validates cfg and builds the first board.
// A nil logger discards all output.
func NewSession(cfg Config, logger log.Logger) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	s := &Session{cfg: cfg, logger: log.With(logger, "component", "session")}
	if err := s.resetLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Grid returns the current board.
func (s *Session) Grid() *pathfind.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Snapshot returns a copy of the current board.
func (s *Session) Snapshot() pathfind.Snapshot {
	return s.Grid().Snapshot()
}

// CanFind reports whether Find would start a search.
func (s *Session) CanFind() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.finding && s.clean
}

// CanReset reports whether Reset is allowed.
func (s *Session) CanReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.finding
}

// Reset discards the current board and builds a fresh one.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finding {
		return ErrBusy
	}
	return s.resetLocked()
}

func (s *Session) resetLocked() error {
	g, err := s.cfg.newGrid()
	if err != nil {
		return err
	}
	s.grid = g
	s.clean = true
	level.Debug(s.logger).Log("msg", "board reset", "rows", g.Rows(), "cols", g.Cols(), "walls", len(s.cfg.Walls))
	return nil
}

// Toggle flips the wall at c on the current board.
func (s *Session) Toggle(c pathfind.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finding {
		return ErrBusy
	}
	return s.grid.ToggleObstacle(c)
}

// Paint makes every cell in cs a wall. It stops at the first error.
func (s *Session) Paint(cs []pathfind.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finding {
		return ErrBusy
	}
	for _, c := range cs {
		if err := s.grid.SetObstacle(c, true); err != nil {
			return err
		}
	}
	return nil
}

// Find searches the current board, handing each step to sink (which may be
// nil) after the configured delay. Expand steps wait ExpandDelay, trace steps
// TraceDelay, the terminal step not at all.
//
// OutcomeNoPath is reported through the Result and logged as a warning; it is
// not an error. Cancelling ctx abandons the run; the board then stays
// searched until Reset.
func (s *Session) Find(ctx context.Context, sink Sink) (pathfind.Result, error) {
	s.mu.Lock()
	switch {
	case s.finding:
		s.mu.Unlock()
		return pathfind.Result{}, ErrBusy
	case !s.clean:
		s.mu.Unlock()
		return pathfind.Result{}, ErrNotClean
	}
	s.finding, s.clean = true, false
	g := s.grid
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.finding = false
		s.mu.Unlock()
	}()

	e, err := pathfind.New(g, pathfind.WithContext(ctx), pathfind.WithTieBreak(s.cfg.TieBreak))
	if err != nil {
		return pathfind.Result{}, err
	}

	level.Info(s.logger).Log("msg", "search started", "start", g.Start(), "destination", g.Destination(), "tie_break", s.cfg.TieBreak)
	started := time.Now()
	for st, err := range e.All() {
		if err != nil {
			level.Error(s.logger).Log("msg", "search aborted", "err", err)
			return pathfind.Result{}, err
		}
		if err = pace(ctx, s.delay(st.Phase)); err != nil {
			level.Warn(s.logger).Log("msg", "search cancelled", "step", st.Index, "err", err)
			return pathfind.Result{}, err
		}
		if sink != nil {
			if err = sink.Frame(st); err != nil {
				level.Error(s.logger).Log("msg", "sink failed", "step", st.Index, "err", err)
				return pathfind.Result{}, fmt.Errorf("driver: sink: %w", err)
			}
		}
		level.Debug(s.logger).Log("step", st.Index, "phase", st.Phase, "cell", st.Cell, "distance", st.Distance)
	}

	res, err := e.Result()
	if err != nil {
		return pathfind.Result{}, err
	}
	if res.Found() {
		level.Info(s.logger).Log("msg", "path found", "distance", res.Distance, "settled", res.Settled, "steps", res.Steps, "took", time.Since(started))
	} else {
		level.Warn(s.logger).Log("msg", "no path", "settled", res.Settled, "steps", res.Steps)
	}
	return res, nil
}

func (s *Session) delay(ph pathfind.Phase) time.Duration {
	switch ph {
	case pathfind.PhaseExpand:
		return s.cfg.ExpandDelay
	case pathfind.PhaseTrace:
		return s.cfg.TraceDelay
	default:
		return 0
	}
}

// pace waits d or until ctx is done.
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
