package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

func TestParseLayout_RoundTrip(t *testing.T) {
	const layout = "S..#.\n.#.#.\n...#F\n"
	g, err := gridgraph.ParseLayout(layout)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, []gridgraph.Coord{
		{Row: 0, Col: 3}, {Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 3},
	}, g.Walls())
	assert.Equal(t, layout, g.Layout())
}

func TestParseLayout_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		err    error
	}{
		{"Empty", "   \n  ", gridgraph.ErrEmptyGrid},
		{"Ragged", "S..\n..\n..F", gridgraph.ErrBadLayout},
		{"UnknownGlyph", "S.x\n..F", gridgraph.ErrBadLayout},
		{"NoFinish", "S..\n...", gridgraph.ErrBadLayout},
		{"TwoStarts", "S.S\n..F", gridgraph.ErrBadLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseLayout(tc.layout)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRender_Overlay(t *testing.T) {
	g, err := gridgraph.ParseLayout("S..\n.#.\n..F")
	require.NoError(t, err)

	cell := func(r, c int) gridgraph.Cell {
		out, err := g.Cell(gridgraph.Coord{Row: r, Col: c})
		require.NoError(t, err)
		return out
	}
	visited := []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(1, 0), cell(0, 2), cell(2, 0)}
	path := []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2), cell(2, 2)}

	want := "S**\no#*\no.F\n"
	assert.Equal(t, want, g.Render(visited, path))
}
