// Package dijkstra implements Dijkstra's shortest-path search over a
// gridgraph.Grid, where every open cell is joined to its up, down, left and
// right open neighbors by an edge of cost 1.
//
// Complexity:
//
//   - Time:  O(V log V) for V = rows×cols. Each cell is finalized at most once
//     and has at most 4 edges, so E ≤ 4V.
//   - Space: O(V) for the working copy of the cells and the heap.
//
// Notes on implementation choices:
//
//   - The search runs on a private copy of the grid whose search fields are
//     reset first, so callers do not need to call ResetSearchState.
//   - Walls are never pushed, never visited and never given a finite distance.
//   - Ties between cells at the same distance go to the cell discovered
//     earlier (by the earlier-finalized neighbor), then to the lower row-major
//     index. This is the order a repeatedly stable-sorted list of all cells
//     produces.
//   - We use a lazy decrease-key strategy: a shorter distance pushes a new
//     heap entry and the stale one is skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// Search runs Dijkstra's algorithm on g from source to target and returns the
// cells in the order they were finalized.
//
// The search stops as soon as the target is finalized, when no reachable
// unvisited cell remains, or when the closest remaining cell lies beyond
// MaxDistance. An unreachable target is not an error: Result.Found is false
// and the visited order holds every cell reached.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. source and target must be in bounds and not walls (ErrMissingEndpoint).
//
// The caller must not share g with a concurrent writer during the call; g
// itself is only read.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Search(g *gridgraph.Grid, source, target gridgraph.Coord, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, "source", source); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "target", target); err != nil {
		return nil, err
	}

	// 3) Run on a private copy of the cells.
	r := &runner{
		g:       g,
		options: cfg,
		cells:   g.Cells(),
		order:   make([]int, 0, g.Len()),
		pq:      make(nodePQ, 0, g.Len()),
		buf:     make([]int, 0, 4),
	}
	r.init(g.Index(source))
	found := r.process(g.Index(target))

	// 4) Freeze the annotated snapshot and read the visited cells from it.
	annotated, err := gridgraph.FromCells(g.Rows(), g.Cols(), r.cells)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: annotate grid: %w", err)
	}
	visited := make([]gridgraph.Cell, len(r.order))
	for i, idx := range r.order {
		visited[i] = annotated.At(idx)
	}

	return &Result{
		Grid:    annotated,
		Source:  source,
		Target:  target,
		Visited: visited,
		Found:   found,
	}, nil
}

// SearchGrid looks up the start and finish cells of g and searches between
// them. It returns ErrMissingEndpoint if either role is absent.
func SearchGrid(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("%w: grid has no start cell", ErrMissingEndpoint)
	}
	finish, ok := g.Finish()
	if !ok {
		return nil, fmt.Errorf("%w: grid has no finish cell", ErrMissingEndpoint)
	}

	return Search(g, start, finish, opts...)
}

// checkEndpoint rejects coordinates outside g and wall cells.
func checkEndpoint(g *gridgraph.Grid, name string, c gridgraph.Coord) error {
	cell, err := g.Cell(c)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMissingEndpoint, name, err)
	}
	if cell.IsWall {
		return fmt.Errorf("%w: %s %s is a wall", ErrMissingEndpoint, name, c)
	}

	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.Grid  // The input grid; only used for geometry.
	options Options          // Validated options.
	cells   []gridgraph.Cell // Working copy, annotated in place.
	order   []int            // Finalized indices in order.
	pq      nodePQ           // Min-heap of *nodeItem.
	buf     []int            // Reused neighbor buffer.
}

// init clears the search fields of every cell and seeds the heap with the
// source at distance 0.
func (r *runner) init(source int) {
	for i := range r.cells {
		r.cells[i].Distance = gridgraph.Infinity
		r.cells[i].IsVisited = false
		r.cells[i].Previous = gridgraph.NoPrevious
	}
	r.cells[source].Distance = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: source, dist: 0, round: 0})
}

// process is the main loop. It repeatedly finalizes the closest unvisited
// cell and relaxes its neighbors. It reports whether target was finalized.
func (r *runner) process(target int) bool {
	for r.pq.Len() > 0 {
		// 1) Pop the closest entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// 2) Skip stale entries. Lazy decrease-key leaves older entries in the
		//    heap: either u is already finalized, or a later push gave u a
		//    shorter distance than this entry carries. Only the entry matching
		//    the current distance (and its discovery round) may finalize u.
		if r.cells[u].IsVisited || item.dist != r.cells[u].Distance {
			continue
		}

		// 3) Entries pop in non-decreasing distance, so once one exceeds
		//    MaxDistance every remaining cell does too. u is not marked visited.
		if item.dist > r.options.MaxDistance {
			return false
		}

		// 4) Finalize u. Its distance can no longer shrink, and its position
		//    in order is the visit order a renderer replays.
		r.cells[u].IsVisited = true
		r.order = append(r.order, u)

		// 5) Early exit on the target: its neighbors are never relaxed, so no
		//    cell after it appears in the visit order.
		if u == target {
			return true
		}

		// 6) Offer u's distance + 1 to its open neighbors.
		r.relax(u)
	}

	// Heap ran dry: every reachable cell is finalized and target is not one.
	return false
}

// relax offers distance(u)+1 to every open, unvisited neighbor of u and
// records u as predecessor on strict improvement.
func (r *runner) relax(u int) {
	candidate := r.cells[u].Distance + 1
	// u's 1-based finalization ordinal orders cells it discovers after those
	// discovered by earlier-finalized cells.
	round := len(r.order)

	// 1) Collect in-bounds neighbors (up, down, left, right) into the
	//    reused buffer.
	r.buf = r.g.AppendNeighbors(r.buf[:0], u)
	for _, v := range r.buf {
		cell := &r.cells[v]

		// 2) Walls are impassable and never get a finite distance; visited
		//    cells already hold their final distance.
		if cell.IsWall || cell.IsVisited {
			continue
		}

		// 3) Relax only on a strict improvement. With unit weights an equal
		//    candidate means v was discovered earlier by another cell, and
		//    that first discoverer keeps both the predecessor and the
		//    earlier round in the tie-break.
		if candidate >= cell.Distance {
			continue
		}

		// 4) Record the shorter path and push a fresh entry; any older entry
		//    for v becomes stale and is skipped in process.
		cell.Distance = candidate
		cell.Previous = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: candidate, round: round})
	}
}

// nodeItem is a heap entry for cell idx at tentative distance dist, pushed
// while the round-th cell was being finalized.
type nodeItem struct {
	idx   int
	dist  int
	round int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, round, idx).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then discovery round, then row-major index.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.round != b.round {
		return a.round < b.round
	}

	return a.idx < b.idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
