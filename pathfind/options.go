package pathfind

import (
	"context"
	"fmt"
)

// TieBreak selects which frontier cell is settled when several share the
// minimum distance.
type TieBreak uint8

const (
	// TieBreakRowMajor settles the lowest row first, then the lowest column.
	// It depends only on coordinates, never on discovery history.
	TieBreakRowMajor TieBreak = iota

	// TieBreakInsertion settles the cell that entered the frontier earliest.
	// This matches a linear scan over an insertion-ordered frontier list that
	// keeps the first minimum it meets.
	TieBreakInsertion
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakRowMajor:
		return "row-major"
	case TieBreakInsertion:
		return "insertion"
	default:
		return fmt.Sprintf("TieBreak(%d)", uint8(t))
	}
}

// ParseTieBreak maps "row-major" or "insertion" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "row-major", "rowmajor", "":
		return TieBreakRowMajor, nil
	case "insertion":
		return TieBreakInsertion, nil
	default:
		return 0, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
	}
}

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the engine configuration and observation hooks.
type Options struct {
	// Ctx allows abandoning a run between steps.
	Ctx context.Context

	// TieBreak orders frontier cells with equal distance.
	TieBreak TieBreak

	// OnDiscover is called for every cell that enters the frontier.
	OnDiscover func(c Coord, dist int)

	// OnSettle is called for every settled cell, the start included.
	OnSettle func(c Coord, dist int)

	// OnTrace is called for every cell marked on the path.
	OnTrace func(c Coord, dist int)

	err error
}

// DefaultOptions returns Options with a background context, row-major
// tie-breaking and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		TieBreak:   TieBreakRowMajor,
		OnDiscover: func(Coord, int) {},
		OnSettle:   func(Coord, int) {},
		OnTrace:    func(Coord, int) {},
	}
}

// WithContext sets the context checked before every step.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak selects the frontier tie-break policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		switch t {
		case TieBreakRowMajor, TieBreakInsertion:
			o.TieBreak = t
		default:
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, uint8(t))
		}
	}
}

// WithOnDiscover registers a hook run when a cell enters the frontier.
func WithOnDiscover(fn func(c Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnSettle registers a hook run when a cell is settled.
func WithOnSettle(fn func(c Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnTrace registers a hook run when a cell is marked on the path.
func WithOnTrace(fn func(c Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrace = fn
		}
	}
}
