// Package server exposes a pathfinding board over HTTP. It keeps the
// current grid of one session, applies the edits a visualizer makes (walls,
// endpoints, resets) and returns search results as replay frames, either in
// one JSON response or streamed over a websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	// Default time allowed to write a message to the peer.
	defaultWriteWait = 1 * time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 8192
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Time to wait for in-flight requests on shutdown.
	shutdownGracePeriod = 10 * time.Second
)

// Server serves one Board.
type Server struct {
	addr      string
	board     *Board
	schedule  Schedule
	writeWait time.Duration
	logger    *log.Logger
	router    *mux.Router
	upgrader  websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSchedule sets the replay schedule attached to frames.
func WithSchedule(sch Schedule) Option {
	return func(s *Server) { s.schedule = sch }
}

// WithWriteWait sets the websocket write deadline.
func WithWriteWait(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.writeWait = d
		}
	}
}

// NewServer wires the routes for board. addr is only used by Serve.
func NewServer(addr string, board *Board, opts ...Option) *Server {
	s := &Server{
		addr:      addr,
		board:     board,
		schedule:  DefaultSchedule(),
		writeWait: defaultWriteWait,
		logger:    log.New(io.Discard, "", 0),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/grid", s.handleGrid).Methods(http.MethodGet)
	api.HandleFunc("/walls/toggle", s.handleToggleWall).Methods(http.MethodPost)
	api.HandleFunc("/walls", s.handlePaintWalls).Methods(http.MethodPut)
	api.HandleFunc("/walls/clear", s.handleClearWalls).Methods(http.MethodPost)
	api.HandleFunc("/roles/{role}", s.handleRelocate).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)

	r.HandleFunc("/ws", s.serveWebsocket)
	s.router = r
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Printf("listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		s.logger.Println("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
