// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: editing a board
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ToggleWall shows that mutations return a new grid and leave the
// previous one untouched.
func ExampleGrid_ToggleWall() {
	g, _ := gridgraph.NewGrid(2, 4, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 1, Col: 3})

	walled, _ := g.ToggleWall(gridgraph.Coord{Row: 0, Col: 2})
	walled, _ = walled.ToggleWall(gridgraph.Coord{Row: 1, Col: 2})
	moved, _ := walled.Relocate(gridgraph.RoleStart, gridgraph.Coord{Row: 1, Col: 0})

	fmt.Print(g.Layout())
	fmt.Println("--")
	fmt.Print(moved.Layout())
	// Output:
	// S...
	// ...F
	// --
	// ..#.
	// S.#F
}

////////////////////////////////////////////////////////////////////////////////
// Example: regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Connected checks whether the endpoints share a region before
// any search is run.
func ExampleGrid_Connected() {
	g, _ := gridgraph.ParseLayout(`
		S.#.
		..#F
	`)
	s, _ := g.Start()
	f, _ := g.Finish()
	fmt.Println("connected:", g.Connected(s, f))
	// Output:
	// connected: false
}
