package driver

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Default pacing per settled cell and per path cell.
const (
	DefaultExpandDelay = 10 * time.Millisecond
	DefaultTraceDelay  = 100 * time.Millisecond
)

// ErrBadDelay indicates a negative pacing delay.
var ErrBadDelay = errors.New("driver: delays must be non-negative")

// Config describes the board a Session creates on every reset and how the
// search is paced.
type Config struct {
	Rows, Cols  int
	Start       pathfind.Coord
	Destination pathfind.Coord
	// Walls are painted on every fresh board.
	Walls []pathfind.Coord

	TieBreak    pathfind.TieBreak
	ExpandDelay time.Duration
	TraceDelay  time.Duration
}

// DefaultConfig returns the classic 20×50 board with its fixed endpoints and
// the default pacing.
func DefaultConfig() Config {
	return ConfigForBoard(layout.Default())
}

// ConfigForBoard returns a config for an empty board b with its classic endpoints.
func ConfigForBoard(b layout.Board) Config {
	start, dest := b.Endpoints()
	return Config{
		Rows:        b.Rows,
		Cols:        b.Cols,
		Start:       start,
		Destination: dest,
		TieBreak:    pathfind.TieBreakRowMajor,
		ExpandDelay: DefaultExpandDelay,
		TraceDelay:  DefaultTraceDelay,
	}
}

// WithGrid returns a copy of c whose board (dimensions, endpoints, walls)
// is taken from g. Pacing and tie-break are kept.
func (c Config) WithGrid(g *pathfind.Grid) Config {
	c.Rows, c.Cols = g.Rows(), g.Cols()
	c.Start, c.Destination = g.Start(), g.Destination()
	c.Walls = nil
	for v := range g.Snapshot().Cells() {
		if v.IsObstacle() {
			c.Walls = append(c.Walls, v.Coord)
		}
	}
	return c
}

func (c Config) validate() error {
	if c.ExpandDelay < 0 || c.TraceDelay < 0 {
		return fmt.Errorf("%w: expand=%s trace=%s", ErrBadDelay, c.ExpandDelay, c.TraceDelay)
	}
	return nil
}

// newGrid builds a fresh board from c.
func (c Config) newGrid() (*pathfind.Grid, error) {
	g, err := pathfind.NewGrid(c.Rows, c.Cols, c.Start, c.Destination)
	if err != nil {
		return nil, err
	}
	for _, w := range c.Walls {
		if err = g.SetObstacle(w, true); err != nil {
			return nil, fmt.Errorf("driver: wall %v: %w", w, err)
		}
	}
	return g, nil
}
