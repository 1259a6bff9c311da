package server

import (
	"sync"

	"github.com/SafiShahid34/VisualPathfinder/dijkstra"
	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// Board holds the current grid of one editing session. Grids are immutable,
// so every edit swaps in the grid value returned by the mutation; readers get
// the pointer and need no further locking.
type Board struct {
	mu   sync.RWMutex
	grid *gridgraph.Grid
}

// NewBoard starts a session on g.
func NewBoard(g *gridgraph.Grid) *Board {
	return &Board{grid: g}
}

// Snapshot returns the current grid.
func (b *Board) Snapshot() *gridgraph.Grid {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.grid
}

// update applies edit to the current grid and stores the result.
func (b *Board) update(edit func(*gridgraph.Grid) (*gridgraph.Grid, error)) (*gridgraph.Grid, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next, err := edit(b.grid)
	if err != nil {
		return nil, err
	}
	b.grid = next

	return next, nil
}

// ToggleWall flips the wall at c.
func (b *Board) ToggleWall(c gridgraph.Coord) (*gridgraph.Grid, error) {
	return b.update(func(g *gridgraph.Grid) (*gridgraph.Grid, error) {
		return g.ToggleWall(c)
	})
}

// PaintWalls sets or clears walls at every coordinate in cells, as a mouse
// drag would. The edit is all or nothing.
func (b *Board) PaintWalls(cells []gridgraph.Coord, wall bool) (*gridgraph.Grid, error) {
	return b.update(func(g *gridgraph.Grid) (*gridgraph.Grid, error) {
		var err error
		for _, c := range cells {
			if g, err = g.SetWall(c, wall); err != nil {
				return nil, err
			}
		}
		return g, nil
	})
}

// Relocate moves role to c.
func (b *Board) Relocate(role gridgraph.Role, c gridgraph.Coord) (*gridgraph.Grid, error) {
	return b.update(func(g *gridgraph.Grid) (*gridgraph.Grid, error) {
		return g.Relocate(role, c)
	})
}

// ResetSearchState clears distances, visited flags and predecessors.
func (b *Board) ResetSearchState() *gridgraph.Grid {
	g, _ := b.update(func(g *gridgraph.Grid) (*gridgraph.Grid, error) {
		return g.ResetSearchState(), nil
	})

	return g
}

// ClearWalls removes every wall.
func (b *Board) ClearWalls() *gridgraph.Grid {
	g, _ := b.update(func(g *gridgraph.Grid) (*gridgraph.Grid, error) {
		return g.ClearWalls(), nil
	})

	return g
}

// Visualize searches the current grid between its start and finish cells.
// The search runs outside the lock on a snapshot. The annotated grid becomes
// the current grid unless another edit landed in the meantime.
func (b *Board) Visualize(opts ...dijkstra.Option) (*dijkstra.Result, error) {
	snapshot := b.Snapshot()
	res, err := dijkstra.SearchGrid(snapshot, opts...)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	if b.grid == snapshot {
		b.grid = res.Grid
	}
	b.mu.Unlock()

	return res, nil
}
