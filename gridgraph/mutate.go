package gridgraph

import "fmt"

// ToggleWall returns a copy of g with the wall flag at c flipped.
// Toggling the start or finish cell is ignored: the copy is returned
// unchanged with a nil error.
// Returns ErrInvalidCoordinate if c is out of bounds.
// Complexity: O(R×C) for the copy.
func (g *Grid) ToggleWall(c Coord) (*Grid, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: toggle %s", ErrInvalidCoordinate, c)
	}
	next := g.Clone()
	cell := &next.cells[next.Index(c)]
	if cell.IsStart || cell.IsFinish {
		return next, nil
	}
	cell.IsWall = !cell.IsWall

	return next, nil
}

// SetWall returns a copy of g with the wall flag at c set to wall.
// Like ToggleWall it leaves the start and finish cells alone, which makes it
// suitable for painting across many cells in one drag.
func (g *Grid) SetWall(c Coord, wall bool) (*Grid, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: paint %s", ErrInvalidCoordinate, c)
	}
	next := g.Clone()
	cell := &next.cells[next.Index(c)]
	if !cell.IsStart && !cell.IsFinish {
		cell.IsWall = wall
	}

	return next, nil
}

// Relocate returns a copy of g with role moved to c. The previous holder of
// the role, if any, loses it. A wall at c is cleared so the endpoint stays
// traversable.
//
// Errors:
//   - ErrUnknownRole if role is neither RoleStart nor RoleFinish.
//   - ErrInvalidCoordinate if c is out of bounds.
//   - ErrRoleConflict if c currently holds the other role.
//
// Complexity: O(R×C).
func (g *Grid) Relocate(role Role, c Coord) (*Grid, error) {
	if role != RoleStart && role != RoleFinish {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: relocate %s to %s", ErrInvalidCoordinate, role, c)
	}
	target := g.cells[g.Index(c)]
	if (role == RoleStart && target.IsFinish) || (role == RoleFinish && target.IsStart) {
		return nil, fmt.Errorf("%w: %s already holds the other role", ErrRoleConflict, c)
	}

	next := g.Clone()
	for i := range next.cells {
		if role == RoleStart {
			next.cells[i].IsStart = false
		} else {
			next.cells[i].IsFinish = false
		}
	}
	cell := &next.cells[next.Index(c)]
	cell.IsWall = false
	if role == RoleStart {
		cell.IsStart = true
	} else {
		cell.IsFinish = true
	}

	return next, nil
}

// ResetSearchState returns a copy of g with every distance set to Infinity,
// every visited flag cleared and every predecessor removed. Walls and roles
// are kept.
// Complexity: O(R×C).
func (g *Grid) ResetSearchState() *Grid {
	next := g.Clone()
	for i := range next.cells {
		next.cells[i].Distance = Infinity
		next.cells[i].IsVisited = false
		next.cells[i].Previous = NoPrevious
	}

	return next
}

// ClearWalls returns a copy of g without any walls.
// Complexity: O(R×C).
func (g *Grid) ClearWalls() *Grid {
	next := g.Clone()
	for i := range next.cells {
		next.cells[i].IsWall = false
	}

	return next
}
