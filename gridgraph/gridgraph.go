// Package gridgraph provides the pathfinding board. Cells are addressed by
// (row, col) and stored row-major, so the cell at (r, c) lives at index
// r*cols + c. Open cells are connected to their 4-neighbors:
//
//	        (r-1,c)
//	(r,c-1)  (r,c)  (r,c+1)
//	        (r+1,c)
//
// Walls are vertices without edges.
package gridgraph

import "fmt"

// fourNeighbors is the relaxation order: up, down, left, right.
var fourNeighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewGrid builds a rows×cols grid with no walls, every cell unvisited at
// infinite distance, and the start and finish roles at the given coordinates.
// Returns ErrEmptyGrid if rows or cols is not positive, ErrInvalidCoordinate
// if start or finish lies outside the grid, ErrRoleConflict if they coincide.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int, start, finish Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := newGrid(rows, cols)
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s in %dx%d grid", ErrInvalidCoordinate, start, rows, cols)
	}
	if !g.InBounds(finish) {
		return nil, fmt.Errorf("%w: finish %s in %dx%d grid", ErrInvalidCoordinate, finish, rows, cols)
	}
	if start == finish {
		return nil, fmt.Errorf("%w: both at %s", ErrRoleConflict, start)
	}
	g.cells[g.Index(start)].IsStart = true
	g.cells[g.Index(finish)].IsFinish = true

	return g, nil
}

// DefaultGrid returns the 20×50 board with start (10,15) and finish (10,35).
func DefaultGrid() *Grid {
	g, err := NewGrid(DefaultRows, DefaultCols,
		Coord{Row: DefaultStartRow, Col: DefaultStartCol},
		Coord{Row: DefaultFinishRow, Col: DefaultFinishCol})
	if err != nil {
		// The defaults are constants; reaching this is a programming error.
		panic(err)
	}

	return g
}

// FromCells wraps a row-major cell slice of length rows*cols into a Grid.
// The slice is copied. Each cell must sit at its own coordinate, predecessor
// indices must be in range or NoPrevious, walls must not hold a role, and at
// most one cell may hold each role.
// Complexity: O(R×C).
func FromCells(rows, cols int, cells []Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrBadLayout, len(cells), rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, len(cells)), neighborOffsets: fourNeighbors}
	copy(g.cells, cells)

	starts, finishes := 0, 0
	for i, c := range g.cells {
		want := g.Coordinate(i)
		if c.Coord() != want {
			return nil, fmt.Errorf("%w: cell %s stored at %s", ErrInvalidCoordinate, c.Coord(), want)
		}
		if c.Previous != NoPrevious && (c.Previous < 0 || c.Previous >= len(g.cells)) {
			return nil, fmt.Errorf("%w: predecessor index %d of %s", ErrInvalidCoordinate, c.Previous, want)
		}
		if c.IsStart && c.IsFinish {
			return nil, fmt.Errorf("%w: both at %s", ErrRoleConflict, want)
		}
		if c.IsWall && (c.IsStart || c.IsFinish) {
			return nil, fmt.Errorf("%w: wall holds a role at %s", ErrBadLayout, want)
		}
		if c.IsStart {
			starts++
		}
		if c.IsFinish {
			finishes++
		}
	}
	if starts > 1 || finishes > 1 {
		return nil, fmt.Errorf("%w: %d start and %d finish cells", ErrRoleConflict, starts, finishes)
	}

	return g, nil
}

// newGrid allocates a rows×cols grid of pristine cells.
func newGrid(rows, cols int) *Grid {
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = newCell(r, c)
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells, neighborOffsets: fourNeighbors}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index. c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the cell at index idx. idx must be in [0, Len()).
func (g *Grid) At(idx int) Cell {
	return g.cells[idx]
}

// Cell returns the cell at c, or ErrInvalidCoordinate.
func (g *Grid) Cell(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}

	return g.cells[g.Index(c)], nil
}

// Cells returns a row-major copy of all cells.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// Start returns the coordinate of the start cell, if any.
func (g *Grid) Start() (Coord, bool) {
	return g.find(func(c Cell) bool { return c.IsStart })
}

// Finish returns the coordinate of the finish cell, if any.
func (g *Grid) Finish() (Coord, bool) {
	return g.find(func(c Cell) bool { return c.IsFinish })
}

func (g *Grid) find(match func(Cell) bool) (Coord, bool) {
	for _, c := range g.cells {
		if match(c) {
			return c.Coord(), true
		}
	}

	return Coord{}, false
}

// Walls lists wall coordinates in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for _, c := range g.cells {
		if c.IsWall {
			out = append(out, c.Coord())
		}
	}

	return out
}

// Neighbors returns the in-bounds 4-neighbors of idx in up, down, left,
// right order. Walls are included; callers filter them.
func (g *Grid) Neighbors(idx int) []int {
	return g.AppendNeighbors(make([]int, 0, 4), idx)
}

// AppendNeighbors appends the in-bounds 4-neighbors of idx to dst and returns
// the extended slice. It lets hot loops reuse one buffer.
// Complexity: O(1).
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	at := g.Coordinate(idx)
	for _, d := range g.neighborOffsets {
		n := Coord{Row: at.Row + d[0], Col: at.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, g.Index(n))
		}
	}

	return dst
}

// Clone returns a deep copy of g.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	clone := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells)), neighborOffsets: g.neighborOffsets}
	copy(clone.cells, g.cells)

	return clone
}
