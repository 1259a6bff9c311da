package dijkstra

import (
	"errors"
	"fmt"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// ErrPredecessorCycle indicates predecessor links that loop instead of
// ending at a cell without a predecessor. A grid annotated by Search never
// has one; hand-built grids can.
var ErrPredecessorCycle = errors.New("dijkstra: predecessor links form a cycle")

// ReconstructPath walks the predecessor links of the annotated grid g from
// target back to the cell without a predecessor and returns the cells from
// the source to target, inclusive.
//
// Conventions:
//   - target is the source (distance 0, no predecessor): a one-cell path.
//   - target was never reached (no predecessor, distance ≠ 0): nil. Callers
//     must check for an empty path rather than assume one exists.
//
// Returns ErrNilGrid, gridgraph.ErrInvalidCoordinate for a target outside
// g, or ErrPredecessorCycle.
// Complexity: O(L) for a path of L cells.
func ReconstructPath(g *gridgraph.Grid, target gridgraph.Coord) ([]gridgraph.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	end, err := g.Cell(target)
	if err != nil {
		return nil, err
	}
	if !end.HasPrevious() {
		if end.Distance == 0 {
			return []gridgraph.Cell{end}, nil
		}
		return nil, nil
	}

	var path []gridgraph.Cell
	for at := g.Index(target); at != gridgraph.NoPrevious; at = g.At(at).Previous {
		if len(path) == g.Len() {
			return nil, fmt.Errorf("%w: from %s", ErrPredecessorCycle, target)
		}
		path = append(path, g.At(at))
	}
	// reverse into source→target order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
