package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SafiShahid34/VisualPathfinder/dijkstra"
	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// gridView is the JSON form of a grid.
type gridView struct {
	Rows  int              `json:"rows"`
	Cols  int              `json:"cols"`
	Cells []gridgraph.Cell `json:"cells"`
}

func newGridView(g *gridgraph.Grid) gridView {
	return gridView{Rows: g.Rows(), Cols: g.Cols(), Cells: g.Cells()}
}

// paintRequest sets or clears walls at several cells.
type paintRequest struct {
	Cells []gridgraph.Coord `json:"cells"`
	Wall  bool              `json:"wall"`
}

// searchRequest optionally carries its own ASCII layout; without one the
// board is searched.
type searchRequest struct {
	Layout      string `json:"layout,omitempty"`
	MaxDistance *int   `json:"maxDistance,omitempty"`
}

// searchResponse carries both sequences and their replay frames.
type searchResponse struct {
	Found   bool              `json:"found"`
	Visited []gridgraph.Coord `json:"visited"`
	Path    []gridgraph.Coord `json:"path"`
	Frames  []Frame           `json:"frames"`
}

func (s *Server) newSearchResponse(res *dijkstra.Result) searchResponse {
	path := res.Path()
	out := searchResponse{
		Found:   res.Found,
		Visited: make([]gridgraph.Coord, len(res.Visited)),
		Path:    make([]gridgraph.Coord, len(path)),
		Frames:  BuildReplay(res, s.schedule),
	}
	for i, c := range res.Visited {
		out.Visited[i] = c.Coord()
	}
	for i, c := range path {
		out.Path[i] = c.Coord()
	}

	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGrid(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, newGridView(s.board.Snapshot()))
}

func (s *Server) handleToggleWall(w http.ResponseWriter, r *http.Request) {
	var at gridgraph.Coord
	if !s.decode(w, r, &at) {
		return
	}
	g, err := s.board.ToggleWall(at)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newGridView(g))
}

func (s *Server) handlePaintWalls(w http.ResponseWriter, r *http.Request) {
	var req paintRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := s.board.PaintWalls(req.Cells, req.Wall)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newGridView(g))
}

func (s *Server) handleClearWalls(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, newGridView(s.board.ClearWalls()))
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, newGridView(s.board.ResetSearchState()))
}

func (s *Server) handleRelocate(w http.ResponseWriter, r *http.Request) {
	role, err := gridgraph.ParseRole(mux.Vars(r)["role"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	var at gridgraph.Coord
	if !s.decode(w, r, &at) {
		return
	}
	g, err := s.board.Relocate(role, at)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newGridView(g))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	// An empty body, sized or chunked, searches the board with defaults.
	var req searchRequest
	if !s.decodeOptional(w, r, &req) {
		return
	}
	var opts []dijkstra.Option
	if req.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*req.MaxDistance))
	}

	var (
		res *dijkstra.Result
		err error
	)
	if req.Layout != "" {
		var g *gridgraph.Grid
		if g, err = gridgraph.ParseLayout(req.Layout); err == nil {
			res, err = dijkstra.SearchGrid(g, opts...)
		}
	} else {
		res, err = s.board.Visualize(opts...)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Printf("search: found=%t visited=%d", res.Found, len(res.Visited))
	s.writeJSON(w, http.StatusOK, s.newSearchResponse(res))
}

// decode reads a JSON body into v, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := readJSON(w, r, v); err != nil {
		s.badBody(w, err)
		return false
	}

	return true
}

// decodeOptional is decode for bodies that may be empty; v is left as is.
func (s *Server) decodeOptional(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := readJSON(w, r, v); err != nil && !errors.Is(err, io.EOF) {
		s.badBody(w, err)
		return false
	}

	return true
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageSize*16))
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}

func (s *Server) badBody(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request body: " + err.Error()})
}

// statusFor maps sentinel errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gridgraph.ErrUnknownRole):
		return http.StatusNotFound
	case errors.Is(err, gridgraph.ErrInvalidCoordinate),
		errors.Is(err, gridgraph.ErrRoleConflict),
		errors.Is(err, gridgraph.ErrBadLayout),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, dijkstra.ErrMissingEndpoint),
		errors.Is(err, dijkstra.ErrOptionViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Printf("internal error: %v", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Println("encode:", err)
	}
}
