// Command pathfinder searches a grid board between its start and finish
// cells. By default it prints the board with the visited cells and the
// shortest path overlaid. With -serve it exposes the board over HTTP and
// websocket for a visualizer.
//
// Usage:
//
//	pathfinder [-config file.yaml] [-layout board.yaml] [-debug]
//	pathfinder -serve [-addr :8080]
//	pathfinder -print-config
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SafiShahid34/VisualPathfinder/config"
	"github.com/SafiShahid34/VisualPathfinder/dijkstra"
	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
	"github.com/SafiShahid34/VisualPathfinder/server"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a YAML config file")
		layoutPath  = flag.String("layout", "", "path to a YAML board layout, overrides grid settings")
		serve       = flag.Bool("serve", false, "serve the board over HTTP instead of printing one search")
		addr        = flag.String("addr", "", "listen address, overrides server.addr")
		debug       = flag.Bool("debug", false, "verbose logging")
		printConfig = flag.Bool("print-config", false, "print the effective configuration and exit")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[PATHFINDER] ", log.LstdFlags)
	if err := run(os.Stdout, logger, *configPath, *layoutPath, *addr, *serve, *debug, *printConfig); err != nil {
		logger.Fatal(err)
	}
}

func run(out io.Writer, logger *log.Logger, configPath, layoutPath, addr string, serve, debug, printConfig bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if layoutPath != "" {
		cfg.Grid.Layout = layoutPath
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	cfg.Debug = cfg.Debug || debug

	if printConfig {
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	board, err := cfg.Board()
	if err != nil {
		return err
	}

	if !serve {
		return searchOnce(out, board)
	}

	opts := []server.Option{
		server.WithSchedule(server.Schedule{
			VisitedStep: cfg.Replay.VisitedStep,
			PathStep:    cfg.Replay.PathStep,
		}),
		server.WithWriteWait(cfg.Server.WriteWait),
	}
	if cfg.Debug {
		opts = append(opts, server.WithLogger(logger))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("serving a %dx%d board on %s", board.Rows(), board.Cols(), cfg.Server.Addr)
	err = server.NewServer(cfg.Server.Addr, server.NewBoard(board), opts...).Serve(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// searchOnce runs one search and prints the annotated board.
func searchOnce(out io.Writer, g *gridgraph.Grid) error {
	res, err := dijkstra.SearchGrid(g)
	if err != nil {
		return err
	}
	path := res.Path()

	fmt.Fprint(out, res.Grid.Render(res.Visited, path))
	fmt.Fprintf(out, "visited: %d\n", len(res.Visited))
	if !res.Found {
		fmt.Fprintln(out, "path: unreachable")
		return nil
	}
	fmt.Fprintf(out, "path: %d cells, distance %d\n", len(path), path[len(path)-1].Distance)

	return nil
}
