// Package gridgraph models the pathfinding board: a rectangular grid of cells
// where each open cell is a vertex connected to its up, down, left and right
// open neighbors by an edge of unit cost.
//
// What:
//
//   - Grid holds rows×cols Cells in row-major order with their role flags
//     (start, finish), wall flag and search annotations (distance, visited,
//     predecessor index).
//   - Every mutation (ToggleWall, SetWall, Relocate, ResetSearchState,
//     ClearWalls) returns a new *Grid. The receiver is left untouched, so a
//     previously obtained grid stays observable but stale.
//   - Predecessors are stored as row-major indices, never as pointers, which
//     keeps copies cheap and free of aliasing.
//   - ParseLayout / Layout / Render convert a grid to and from a small ASCII
//     notation ('.' open, '#' wall, 'S' start, 'F' finish).
//   - Regions / Connected label 4-connected open areas.
//
// Policies:
//
//   - Toggling or painting a wall on the start or finish cell is ignored.
//   - Relocating a role onto a wall clears that wall.
//   - Relocating a role onto the cell holding the other role is rejected.
//
// Complexity:
//
//   - NewGrid, mutations, Clone: O(R×C) time and memory (one copy per call).
//   - At, Index, Coordinate, InBounds, Neighbors: O(1).
//   - Regions: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive row or column count.
//   - ErrInvalidCoordinate: coordinate outside [0,rows)×[0,cols).
//   - ErrRoleConflict: start and finish would share a cell.
//   - ErrUnknownRole: Relocate called with a Role other than RoleStart/RoleFinish.
//   - ErrBadLayout: malformed ASCII layout.
//
// Concurrency: a *Grid is never mutated after construction, so it may be read
// from several goroutines. Holders of a "current grid" variable must guard
// the variable itself.
package gridgraph
