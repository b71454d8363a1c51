package driver

import "github.com/katalvlaran/gridpath/pathfind"

// Sink receives every step a Session delivers, in order.
// Returning an error aborts the search.
type Sink interface {
	Frame(st pathfind.Step) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(st pathfind.Step) error

// Frame calls f(st).
func (f SinkFunc) Frame(st pathfind.Step) error { return f(st) }

// Multi fans each step out to all sinks, stopping at the first error.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(st pathfind.Step) error {
		for _, s := range sinks {
			if err := s.Frame(st); err != nil {
				return err
			}
		}
		return nil
	})
}
