// Package gridgraph defines the cell, coordinate and role types
// shared by the grid model and the search engine.
package gridgraph

import (
	"fmt"
	"math"
)

// Infinity is the distance of a cell no search has reached.
const Infinity = math.MaxInt

// NoPrevious marks a cell without a predecessor.
const NoPrevious = -1

// Default board used when nothing else is configured.
const (
	DefaultRows      = 20
	DefaultCols      = 50
	DefaultStartRow  = 10
	DefaultStartCol  = 15
	DefaultFinishRow = 10
	DefaultFinishCol = 35
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Role selects one of the two endpoint roles a cell can hold.
type Role int

const (
	// RoleStart marks the search source.
	RoleStart Role = iota
	// RoleFinish marks the search target.
	RoleFinish
)

// String returns "start" or "finish".
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleFinish:
		return "finish"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// ParseRole maps "start" / "finish" to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "start":
		return RoleStart, nil
	case "finish":
		return RoleFinish, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Cell is one grid position with its role, wall and search fields.
//
// Row and Col never change once the grid is built. Distance, IsVisited and
// Previous are written only by a search and cleared by ResetSearchState.
// Previous is the row-major index of the predecessor on the best known path,
// or NoPrevious.
//
// In JSON an unreached cell has a null distance.
type Cell struct {
	Row       int
	Col       int
	IsStart   bool
	IsFinish  bool
	IsWall    bool
	IsVisited bool
	Distance  int
	Previous  int
}

// Coord returns the cell's coordinate.
func (c Cell) Coord() Coord { return Coord{Row: c.Row, Col: c.Col} }

// HasPrevious reports whether a predecessor has been recorded.
func (c Cell) HasPrevious() bool { return c.Previous != NoPrevious }

// Reached reports whether the cell carries a finite distance.
func (c Cell) Reached() bool { return c.Distance != Infinity }

// ElementID returns the identifier a renderer uses for this cell,
// e.g. "node-3-7". Renderers read cells as JSON, where an Infinity
// distance is null so it never exceeds a JavaScript safe integer.
func (c Cell) ElementID() string {
	return fmt.Sprintf("node-%d-%d", c.Row, c.Col)
}

// newCell returns a cell with pristine search fields.
func newCell(row, col int) Cell {
	return Cell{
		Row:      row,
		Col:      col,
		Distance: Infinity,
		Previous: NoPrevious,
	}
}

// Grid is a fixed-size board of cells stored in row-major order.
// A *Grid is never modified after it is returned to a caller.
type Grid struct {
	rows, cols int
	cells      []Cell
	// neighborOffsets lists (dRow, dCol) in the order neighbors are relaxed:
	// up, down, left, right.
	neighborOffsets [4][2]int
}
