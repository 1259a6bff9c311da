// Package config loads the pathfinder configuration from defaults, an
// optional YAML file, a .env file and PATHFINDER_* environment variables,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// EnvPrefix is prepended to every environment override, e.g.
// PATHFINDER_GRID_ROWS or PATHFINDER_SERVER_ADDR.
const EnvPrefix = "PATHFINDER"

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	Debug  bool         `mapstructure:"debug" yaml:"debug"`
	Grid   GridConfig   `mapstructure:"grid" yaml:"grid"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Replay ReplayConfig `mapstructure:"replay" yaml:"replay"`
}

// GridConfig describes the initial board. When Layout names a file it wins
// over the other fields.
type GridConfig struct {
	Rows   int               `mapstructure:"rows" yaml:"rows"`
	Cols   int               `mapstructure:"cols" yaml:"cols"`
	Start  gridgraph.Coord   `mapstructure:"start" yaml:"start"`
	Finish gridgraph.Coord   `mapstructure:"finish" yaml:"finish"`
	Walls  []gridgraph.Coord `mapstructure:"walls" yaml:"walls,omitempty"`
	Layout string            `mapstructure:"layout" yaml:"layout,omitempty"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr      string        `mapstructure:"addr" yaml:"addr"`
	WriteWait time.Duration `mapstructure:"write_wait" yaml:"write_wait"`
}

// ReplayConfig is the animation schedule handed to clients: one visited cell
// every VisitedStep, then one path cell every PathStep.
type ReplayConfig struct {
	VisitedStep time.Duration `mapstructure:"visited_step" yaml:"visited_step"`
	PathStep    time.Duration `mapstructure:"path_step" yaml:"path_step"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:   gridgraph.DefaultRows,
			Cols:   gridgraph.DefaultCols,
			Start:  gridgraph.Coord{Row: gridgraph.DefaultStartRow, Col: gridgraph.DefaultStartCol},
			Finish: gridgraph.Coord{Row: gridgraph.DefaultFinishRow, Col: gridgraph.DefaultFinishCol},
		},
		Server: ServerConfig{
			Addr:      ":8080",
			WriteWait: time.Second,
		},
		Replay: ReplayConfig{
			VisitedStep: 10 * time.Millisecond,
			PathStep:    50 * time.Millisecond,
		},
	}
}

// Load reads the configuration. path may be empty, in which case only
// defaults, .env and the environment are consulted. A missing .env file is
// not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	vp := viper.New()
	setDefaults(vp, Default())
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(vp *viper.Viper, d *Config) {
	vp.SetDefault("debug", d.Debug)
	vp.SetDefault("grid.rows", d.Grid.Rows)
	vp.SetDefault("grid.cols", d.Grid.Cols)
	vp.SetDefault("grid.start.row", d.Grid.Start.Row)
	vp.SetDefault("grid.start.col", d.Grid.Start.Col)
	vp.SetDefault("grid.finish.row", d.Grid.Finish.Row)
	vp.SetDefault("grid.finish.col", d.Grid.Finish.Col)
	vp.SetDefault("grid.walls", []gridgraph.Coord{})
	vp.SetDefault("grid.layout", "")
	vp.SetDefault("server.addr", d.Server.Addr)
	vp.SetDefault("server.write_wait", d.Server.WriteWait)
	vp.SetDefault("replay.visited_step", d.Replay.VisitedStep)
	vp.SetDefault("replay.path_step", d.Replay.PathStep)
}

// Validate checks ranges that the decoder cannot.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Layout == "" && (c.Grid.Rows <= 0 || c.Grid.Cols <= 0):
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	case c.Server.WriteWait <= 0:
		return fmt.Errorf("%w: server.write_wait must be positive", ErrInvalidConfig)
	case c.Replay.VisitedStep < 0 || c.Replay.PathStep < 0:
		return fmt.Errorf("%w: replay steps must be non-negative", ErrInvalidConfig)
	}

	return nil
}

// Board builds the initial grid: from the layout file if one is configured,
// otherwise from rows, cols, endpoints and walls.
func (c *Config) Board() (*gridgraph.Grid, error) {
	if c.Grid.Layout != "" {
		return LoadLayout(c.Grid.Layout)
	}
	g, err := gridgraph.NewGrid(c.Grid.Rows, c.Grid.Cols, c.Grid.Start, c.Grid.Finish)
	if err != nil {
		return nil, fmt.Errorf("config: grid: %w", err)
	}

	return paintWalls(g, c.Grid.Walls)
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}

	return out, nil
}

// paintWalls sets a wall at every coordinate in walls.
func paintWalls(g *gridgraph.Grid, walls []gridgraph.Coord) (*gridgraph.Grid, error) {
	var err error
	for _, w := range walls {
		if g, err = g.SetWall(w, true); err != nil {
			return nil, fmt.Errorf("config: wall: %w", err)
		}
	}

	return g, nil
}
