package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/SafiShahid34/VisualPathfinder/config"
	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

func TestDecodeLayout(t *testing.T) {
	Convey("Given an ASCII map", t, func() {
		g, err := config.DecodeLayout([]byte("map: |\n  S..#.\n  ...#F\n"))
		So(err, ShouldBeNil)
		So(g.Rows(), ShouldEqual, 2)
		So(g.Cols(), ShouldEqual, 5)
		So(g.Walls(), ShouldResemble, []gridgraph.Coord{{Row: 0, Col: 3}, {Row: 1, Col: 3}})
	})

	Convey("Given explicit dimensions and walls", t, func() {
		g, err := config.DecodeLayout([]byte(`
rows: 2
cols: 5
start: {row: 0, col: 0}
finish: {row: 1, col: 4}
walls: [{row: 0, col: 3}, {row: 1, col: 3}]
`))
		So(err, ShouldBeNil)
		So(g.Layout(), ShouldEqual, "S..#.\n...#F\n")
	})

	Convey("Given no map and no endpoints", t, func() {
		_, err := config.DecodeLayout([]byte("rows: 2\ncols: 2\n"))
		So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
	})

	Convey("Given a broken map", t, func() {
		_, err := config.DecodeLayout([]byte("map: |\n  S.x\n"))
		So(errors.Is(err, gridgraph.ErrBadLayout), ShouldBeTrue)
	})

	Convey("Given invalid YAML", t, func() {
		_, err := config.DecodeLayout([]byte("rows: [\n"))
		So(err, ShouldNotBeNil)
	})
}

func TestLoadLayout(t *testing.T) {
	Convey("A layout file referenced from the config drives the board", t, func() {
		layout := writeFile(t, "board.yaml", "map: |\n  S.\n  #F\n")
		cfg := config.Default()
		cfg.Grid.Layout = layout

		g, err := cfg.Board()
		So(err, ShouldBeNil)
		So(g.Layout(), ShouldEqual, "S.\n#F\n")
	})

	Convey("A missing layout file is reported", t, func() {
		_, err := config.LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
		So(err, ShouldNotBeNil)
	})
}
