package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// MutationSuite exercises the value-returning grid mutations on a 3×4 board
// with start (0,0) and finish (2,3).
type MutationSuite struct {
	suite.Suite
	g *gridgraph.Grid
}

func (s *MutationSuite) SetupTest() {
	g, err := gridgraph.NewGrid(3, 4, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 3})
	s.Require().NoError(err)
	s.g = g
}

func (s *MutationSuite) cell(g *gridgraph.Grid, r, c int) gridgraph.Cell {
	cell, err := g.Cell(gridgraph.Coord{Row: r, Col: c})
	s.Require().NoError(err)
	return cell
}

func (s *MutationSuite) TestToggleWall_FlipsAndLeavesReceiver() {
	require := require.New(s.T())
	at := gridgraph.Coord{Row: 1, Col: 1}

	walled, err := s.g.ToggleWall(at)
	require.NoError(err)
	require.True(s.cell(walled, 1, 1).IsWall, "wall should be set on the new grid")
	require.False(s.cell(s.g, 1, 1).IsWall, "old grid must stay unchanged")

	open, err := walled.ToggleWall(at)
	require.NoError(err)
	require.False(s.cell(open, 1, 1).IsWall, "second toggle clears the wall")
	require.True(s.cell(walled, 1, 1).IsWall, "intermediate grid must stay unchanged")
}

func (s *MutationSuite) TestToggleWall_IgnoresEndpoints() {
	require := require.New(s.T())
	for _, at := range []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 3}} {
		next, err := s.g.ToggleWall(at)
		require.NoError(err)
		require.Equal(s.g.Cells(), next.Cells(), "toggling %v must be a no-op", at)
	}
}

func (s *MutationSuite) TestToggleWall_OutOfBounds() {
	_, err := s.g.ToggleWall(gridgraph.Coord{Row: 3, Col: 0})
	s.ErrorIs(err, gridgraph.ErrInvalidCoordinate)
}

func (s *MutationSuite) TestSetWall_Idempotent() {
	require := require.New(s.T())
	at := gridgraph.Coord{Row: 0, Col: 2}
	a, err := s.g.SetWall(at, true)
	require.NoError(err)
	b, err := a.SetWall(at, true)
	require.NoError(err)
	require.True(s.cell(b, 0, 2).IsWall)
	c, err := b.SetWall(at, false)
	require.NoError(err)
	require.False(s.cell(c, 0, 2).IsWall)

	d, err := s.g.SetWall(gridgraph.Coord{Row: 2, Col: 3}, true)
	require.NoError(err)
	require.False(s.cell(d, 2, 3).IsWall, "finish cell cannot be painted")

	_, err = s.g.SetWall(gridgraph.Coord{Row: -1, Col: 0}, true)
	require.ErrorIs(err, gridgraph.ErrInvalidCoordinate)
}

func (s *MutationSuite) TestRelocate_MovesRole() {
	require := require.New(s.T())
	moved, err := s.g.Relocate(gridgraph.RoleStart, gridgraph.Coord{Row: 1, Col: 2})
	require.NoError(err)

	start, ok := moved.Start()
	require.True(ok)
	require.Equal(gridgraph.Coord{Row: 1, Col: 2}, start)
	require.False(s.cell(moved, 0, 0).IsStart, "previous holder loses the role")
	require.True(s.cell(s.g, 0, 0).IsStart, "old grid keeps its start")

	moved, err = moved.Relocate(gridgraph.RoleFinish, gridgraph.Coord{Row: 0, Col: 0})
	require.NoError(err)
	finish, _ := moved.Finish()
	require.Equal(gridgraph.Coord{Row: 0, Col: 0}, finish)
	require.False(s.cell(moved, 2, 3).IsFinish)
}

func (s *MutationSuite) TestRelocate_ClearsWall() {
	require := require.New(s.T())
	at := gridgraph.Coord{Row: 1, Col: 1}
	walled, err := s.g.ToggleWall(at)
	require.NoError(err)

	moved, err := walled.Relocate(gridgraph.RoleFinish, at)
	require.NoError(err)
	cell := s.cell(moved, 1, 1)
	require.True(cell.IsFinish)
	require.False(cell.IsWall, "endpoint must not stay a wall")
}

func (s *MutationSuite) TestRelocate_Errors() {
	_, err := s.g.Relocate(gridgraph.RoleStart, gridgraph.Coord{Row: 2, Col: 3})
	s.ErrorIs(err, gridgraph.ErrRoleConflict)

	_, err = s.g.Relocate(gridgraph.RoleFinish, gridgraph.Coord{Row: 0, Col: 0})
	s.ErrorIs(err, gridgraph.ErrRoleConflict)

	_, err = s.g.Relocate(gridgraph.RoleStart, gridgraph.Coord{Row: 0, Col: 4})
	s.ErrorIs(err, gridgraph.ErrInvalidCoordinate)

	_, err = s.g.Relocate(gridgraph.Role(7), gridgraph.Coord{Row: 1, Col: 1})
	s.ErrorIs(err, gridgraph.ErrUnknownRole)
}

func (s *MutationSuite) TestRelocate_SameCellKeepsRole() {
	moved, err := s.g.Relocate(gridgraph.RoleStart, gridgraph.Coord{Row: 0, Col: 0})
	s.Require().NoError(err)
	s.Equal(s.g.Cells(), moved.Cells())
}

func (s *MutationSuite) TestResetSearchState_KeepsWallsAndRoles() {
	require := require.New(s.T())
	walled, err := s.g.ToggleWall(gridgraph.Coord{Row: 1, Col: 0})
	require.NoError(err)

	cells := walled.Cells()
	cells[1].Distance, cells[1].IsVisited, cells[1].Previous = 1, true, 0
	annotated, err := gridgraph.FromCells(3, 4, cells)
	require.NoError(err)

	reset := annotated.ResetSearchState()
	for _, c := range reset.Cells() {
		require.Equal(gridgraph.Infinity, c.Distance)
		require.False(c.IsVisited)
		require.Equal(gridgraph.NoPrevious, c.Previous)
	}
	require.True(s.cell(reset, 1, 0).IsWall)
	require.True(s.cell(reset, 0, 0).IsStart)
	require.True(s.cell(reset, 2, 3).IsFinish)
	require.True(s.cell(annotated, 0, 1).IsVisited, "annotated grid is untouched")
}

func (s *MutationSuite) TestClearWalls() {
	require := require.New(s.T())
	g := s.g
	var err error
	for _, at := range []gridgraph.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 2}} {
		g, err = g.ToggleWall(at)
		require.NoError(err)
	}
	require.Len(g.Walls(), 3)

	cleared := g.ClearWalls()
	require.Empty(cleared.Walls())
	require.Len(g.Walls(), 3)
	start, _ := cleared.Start()
	require.Equal(gridgraph.Coord{}, start)
}

func TestMutationSuite(t *testing.T) {
	suite.Run(t, new(MutationSuite))
}
