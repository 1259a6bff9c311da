// Package dijkstra defines the result, options and sentinel errors for the
// grid search engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrMissingEndpoint indicates the source or target is absent, outside the
	// grid, or a wall.
	ErrMissingEndpoint = errors.New("dijkstra: missing or invalid endpoint")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Result is the outcome of one search.
type Result struct {
	// Grid is a private snapshot annotated with distances, visited flags and
	// predecessor indices. The grid passed to Search is never touched.
	Grid *gridgraph.Grid

	Source gridgraph.Coord
	Target gridgraph.Coord

	// Visited lists cells in the exact order they were finalized, read from
	// Grid after the search, so IsVisited is true and Distance is final.
	Visited []gridgraph.Cell

	// Found reports whether the target was finalized. When false, Visited
	// does not contain the target and Path returns nil.
	Found bool
}

// Path returns the shortest path from Source to Target, inclusive, or nil
// when the target was not reached.
func (r *Result) Path() []gridgraph.Cell {
	if r == nil || !r.Found {
		return nil
	}
	path, err := ReconstructPath(r.Grid, r.Target)
	if err != nil {
		return nil
	}

	return path
}

// Options configures the search.
//
// MaxDistance – the search stops once the closest unvisited cell is farther
// than this many steps. Must be ≥ 0. Default math.MaxInt (no cap).
type Options struct {
	MaxDistance int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options without a distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt}
}

// WithMaxDistance caps how far from the source the search explores.
// A negative value is recorded and surfaces as ErrOptionViolation.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance %d must be non-negative", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}
