package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// layoutFile is the on-disk board description. Either Map holds an ASCII
// board, or Rows, Cols, Start and Finish (plus optional Walls) describe it.
//
//	map: |
//	  S..#.
//	  ...#F
//
// or
//
//	rows: 2
//	cols: 5
//	start: {row: 0, col: 0}
//	finish: {row: 1, col: 4}
//	walls: [{row: 0, col: 3}, {row: 1, col: 3}]
type layoutFile struct {
	Map    string            `yaml:"map"`
	Rows   int               `yaml:"rows"`
	Cols   int               `yaml:"cols"`
	Start  *gridgraph.Coord  `yaml:"start"`
	Finish *gridgraph.Coord  `yaml:"finish"`
	Walls  []gridgraph.Coord `yaml:"walls"`
}

// LoadLayout reads a YAML layout file into a grid.
func LoadLayout(path string) (*gridgraph.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: layout: %w", err)
	}

	return DecodeLayout(data)
}

// DecodeLayout parses a YAML layout document into a grid.
func DecodeLayout(data []byte) (*gridgraph.Grid, error) {
	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("config: layout: %w", err)
	}
	if lf.Map != "" {
		g, err := gridgraph.ParseLayout(lf.Map)
		if err != nil {
			return nil, fmt.Errorf("config: layout: %w", err)
		}
		return g, nil
	}
	if lf.Start == nil || lf.Finish == nil {
		return nil, fmt.Errorf("%w: layout needs a map or both start and finish", ErrInvalidConfig)
	}
	g, err := gridgraph.NewGrid(lf.Rows, lf.Cols, *lf.Start, *lf.Finish)
	if err != nil {
		return nil, fmt.Errorf("config: layout: %w", err)
	}

	return paintWalls(g, lf.Walls)
}
