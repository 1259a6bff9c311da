// Package dijkstra computes the order in which Dijkstra's algorithm finalizes
// the cells of a grid, and the shortest path it finds, for replay by a
// visualizer.
//
// Overview:
//
//   - Search(g, source, target) returns a Result holding the visited order,
//     an annotated copy of the grid and whether the target was reached.
//   - ReconstructPath(annotated, target) walks predecessor indices back to
//     the source. Result.Path() is the shortcut.
//   - SearchGrid(g) searches between the grid's own start and finish cells.
//
// Semantics:
//
//   - Movement is up/down/left/right only; every step costs 1.
//   - Walls are skipped entirely: never queued, visited or given a distance.
//   - The search stops the moment the target is finalized, so the target is
//     always the last visited cell when it is reachable.
//   - An unreachable target is a normal outcome: Found is false, Visited
//     lists every reachable cell, and the path is empty.
//   - The visited order is deterministic: equal distances are broken by
//     discovery order, then by row-major index.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = rows×cols (a binary heap instead of a linear
//     scan for the minimum; the tie-break keeps the scan's order).
//   - Space: O(V).
//
// Options:
//
//   - WithMaxDistance(n): stop once the closest remaining cell is more than n
//     steps from the source.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrMissingEndpoint:  source/target outside the grid or on a wall, or a
//     grid without a start/finish cell in SearchGrid.
//   - ErrOptionViolation:  an invalid option value.
//   - ErrPredecessorCycle: ReconstructPath on a hand-built grid whose links loop.
//
// Concurrency:
//
//   - Search and ReconstructPath are synchronous, hold no state between calls
//     and never write to their inputs. They do not support cancellation: a
//     search always runs to one of its stopping conditions.
//
// Example:
//
//	res, err := dijkstra.SearchGrid(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range res.Visited {
//	    fmt.Println("visit", c.ElementID())
//	}
//	for _, c := range res.Path() {
//	    fmt.Println("path", c.ElementID())
//	}
package dijkstra
