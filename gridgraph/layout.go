package gridgraph

import (
	"fmt"
	"strings"
)

// Layout glyphs.
const (
	GlyphOpen    = '.'
	GlyphWall    = '#'
	GlyphStart   = 'S'
	GlyphFinish  = 'F'
	GlyphVisited = 'o'
	GlyphPath    = '*'
)

// ParseLayout builds a grid from rows of glyphs, one line per grid row:
//
//	S..#.
//	.#.#.
//	...#F
//
// Blank leading and trailing lines and surrounding spaces are ignored.
// Exactly one 'S' and one 'F' are required. Rows must share one width.
func ParseLayout(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	g := newGrid(rows, cols)

	var starts, finishes int
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadLayout, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			cell := &g.cells[r*cols+c]
			switch line[c] {
			case GlyphOpen:
			case GlyphWall:
				cell.IsWall = true
			case GlyphStart:
				cell.IsStart = true
				starts++
			case GlyphFinish:
				cell.IsFinish = true
				finishes++
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrBadLayout, line[c], r, c)
			}
		}
	}
	if starts != 1 || finishes != 1 {
		return nil, fmt.Errorf("%w: need one %c and one %c, got %d and %d",
			ErrBadLayout, GlyphStart, GlyphFinish, starts, finishes)
	}

	return g, nil
}

// Layout renders g in the notation accepted by ParseLayout.
func (g *Grid) Layout() string {
	return g.Render(nil, nil)
}

// Render draws g like Layout and overlays the given cells: visited cells as
// 'o', path cells as '*'. Endpoints keep their own glyph. Cells outside the
// grid are skipped.
func (g *Grid) Render(visited, path []Cell) string {
	glyphs := make([]byte, len(g.cells))
	for i, c := range g.cells {
		glyphs[i] = GlyphOpen
		if c.IsWall {
			glyphs[i] = GlyphWall
		}
	}
	overlay := func(cells []Cell, glyph byte) {
		for _, c := range cells {
			if g.InBounds(c.Coord()) {
				glyphs[g.Index(c.Coord())] = glyph
			}
		}
	}
	overlay(visited, GlyphVisited)
	overlay(path, GlyphPath)
	for i, c := range g.cells {
		switch {
		case c.IsStart:
			glyphs[i] = GlyphStart
		case c.IsFinish:
			glyphs[i] = GlyphFinish
		}
	}

	var sb strings.Builder
	sb.Grow(len(glyphs) + g.rows)
	for r := 0; r < g.rows; r++ {
		sb.Write(glyphs[r*g.cols : (r+1)*g.cols])
		sb.WriteByte('\n')
	}

	return sb.String()
}
