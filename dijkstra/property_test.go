package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SafiShahid34/VisualPathfinder/dijkstra"
	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// randomBoard builds a rows×cols grid with random endpoints and walls at the
// given density, seeded for reproducibility.
func randomBoard(t *testing.T, r *rand.Rand, rows, cols int, density float64) *gridgraph.Grid {
	t.Helper()
	start := at(r.Intn(rows), r.Intn(cols))
	finish := at(r.Intn(rows), r.Intn(cols))
	for finish == start {
		finish = at(r.Intn(rows), r.Intn(cols))
	}
	g, err := gridgraph.NewGrid(rows, cols, start, finish)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		if r.Float64() < density {
			g, err = g.SetWall(g.Coordinate(i), true)
			require.NoError(t, err)
		}
	}
	return g
}

// hopDistance is an independent breadth-first oracle for the number of steps
// from a to b, or -1 when b cannot be reached.
func hopDistance(g *gridgraph.Grid, a, b gridgraph.Coord) int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	src := g.Index(a)
	dist[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			if g.At(v).IsWall || dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist[g.Index(b)]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TestProperty_RandomBoards checks on seeded random boards that:
//   - no wall is ever visited;
//   - the target is the last visited cell exactly when it is reachable;
//   - every path step is 4-adjacent and never a wall;
//   - the path is as short as a breadth-first oracle says;
//   - reachability agrees with region labelling;
//   - repeating the search yields the same visited order.
func TestProperty_RandomBoards(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		rows, cols := 1+r.Intn(12), 2+r.Intn(12)
		g := randomBoard(t, r, rows, cols, 0.3)
		start, _ := g.Start()
		finish, _ := g.Finish()

		res, err := dijkstra.SearchGrid(g)
		require.NoError(t, err)

		for _, c := range res.Visited {
			require.False(t, c.IsWall, "trial %d visited wall %v", trial, c.Coord())
		}

		want := hopDistance(g, start, finish)
		require.Equal(t, want >= 0, res.Found, "trial %d reachability", trial)
		require.Equal(t, res.Found, g.Connected(start, finish), "trial %d regions", trial)

		path := res.Path()
		if !res.Found {
			require.Empty(t, path)
			for _, c := range res.Visited {
				require.NotEqual(t, finish, c.Coord())
			}
			continue
		}

		require.Equal(t, finish, res.Visited[len(res.Visited)-1].Coord(), "trial %d target last", trial)
		require.Len(t, path, want+1, "trial %d path length", trial)
		require.Equal(t, start, path[0].Coord())
		require.Equal(t, finish, path[len(path)-1].Coord())
		for i := 1; i < len(path); i++ {
			a, b := path[i-1].Coord(), path[i].Coord()
			require.Equal(t, 1, abs(a.Row-b.Row)+abs(a.Col-b.Col), "trial %d step %v→%v", trial, a, b)
			require.False(t, path[i].IsWall)
		}

		again, err := dijkstra.SearchGrid(g)
		require.NoError(t, err)
		require.Equal(t, coords(res.Visited), coords(again.Visited), "trial %d determinism", trial)
	}
}

// TestProperty_ManhattanWithoutWalls: on an open board the shortest path has
// exactly Manhattan-distance hops.
func TestProperty_ManhattanWithoutWalls(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		g := randomBoard(t, r, 1+r.Intn(15), 2+r.Intn(15), 0)
		start, _ := g.Start()
		finish, _ := g.Finish()

		res, err := dijkstra.SearchGrid(g)
		require.NoError(t, err)
		manhattan := abs(start.Row-finish.Row) + abs(start.Col-finish.Col)
		assert.Len(t, res.Path(), manhattan+1, "trial %d %v→%v", trial, start, finish)
	}
}

// TestProperty_StraightLineDefaultBoard: the reference board's endpoints lie
// on one row, 20 columns apart.
func TestProperty_StraightLineDefaultBoard(t *testing.T) {
	res, err := dijkstra.SearchGrid(gridgraph.DefaultGrid())
	require.NoError(t, err)
	path := res.Path()
	require.Len(t, path, 21)
	for i, c := range path {
		assert.Equal(t, at(10, 15+i), c.Coord())
	}
}
