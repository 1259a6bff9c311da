package gridgraph

// NoRegion is the region label of a wall cell.
const NoRegion = -1

// Regions labels every 4-connected area of open cells. The returned slice is
// row-major; out[i] is the region number of cell i, numbered from 0 in the
// order their first cell appears, or NoRegion for walls.
//
// Time:   O(R·C).
// Memory: O(R·C) for the labels and the BFS queue.
func (g *Grid) Regions() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = NoRegion
	}

	next := 0
	queue := make([]int, 0, len(g.cells))
	buf := make([]int, 0, 4)
	for i0, c := range g.cells {
		if c.IsWall || labels[i0] != NoRegion {
			continue
		}
		// BFS to flood the region
		queue = append(queue[:0], i0)
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			buf = g.AppendNeighbors(buf[:0], queue[qi])
			for _, v := range buf {
				if g.cells[v].IsWall || labels[v] != NoRegion {
					continue
				}
				labels[v] = next
				queue = append(queue, v)
			}
		}
		next++
	}

	return labels
}

// Connected reports whether a and b are open cells in the same region.
// Out-of-bounds coordinates and walls are never connected.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	labels := g.Regions()
	la, lb := labels[g.Index(a)], labels[g.Index(b)]

	return la != NoRegion && la == lb
}
