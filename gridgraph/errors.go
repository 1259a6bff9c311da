package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrInvalidCoordinate indicates a coordinate outside the grid bounds.
	ErrInvalidCoordinate = errors.New("gridgraph: coordinate out of bounds")
	// ErrRoleConflict indicates the start and finish roles would land on the same cell.
	ErrRoleConflict = errors.New("gridgraph: start and finish must be distinct cells")
	// ErrUnknownRole indicates a Role value other than RoleStart or RoleFinish.
	ErrUnknownRole = errors.New("gridgraph: unknown role")
	// ErrBadLayout indicates an ASCII layout that cannot be parsed.
	ErrBadLayout = errors.New("gridgraph: malformed layout")
)
