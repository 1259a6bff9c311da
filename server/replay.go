package server

import (
	"time"

	"github.com/SafiShahid34/VisualPathfinder/dijkstra"
	"github.com/SafiShahid34/VisualPathfinder/gridgraph"
)

// Frame kinds.
const (
	FrameVisited = "visited"
	FramePath    = "path"
)

// Schedule spaces replay frames: the i-th visited cell is shown at
// i*VisitedStep, and once all of them are shown the j-th path cell follows
// at len(visited)*VisitedStep + j*PathStep.
type Schedule struct {
	VisitedStep time.Duration
	PathStep    time.Duration
}

// DefaultSchedule is 10ms per visited cell and 50ms per path cell.
func DefaultSchedule() Schedule {
	return Schedule{VisitedStep: 10 * time.Millisecond, PathStep: 50 * time.Millisecond}
}

// Frame is one cell to paint, with the offset from the start of the replay
// at which to paint it. The server never waits on these offsets; clients do.
type Frame struct {
	Kind     string `json:"kind"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	ID       string `json:"id"`
	AtMillis int64  `json:"atMs"`
}

// BuildReplay turns a search result into its visited frames followed by its
// path frames.
func BuildReplay(res *dijkstra.Result, s Schedule) []Frame {
	path := res.Path()
	frames := make([]Frame, 0, len(res.Visited)+len(path))
	for i, c := range res.Visited {
		frames = append(frames, newFrame(FrameVisited, c, time.Duration(i)*s.VisitedStep))
	}
	base := time.Duration(len(res.Visited)) * s.VisitedStep
	for j, c := range path {
		frames = append(frames, newFrame(FramePath, c, base+time.Duration(j)*s.PathStep))
	}

	return frames
}

func newFrame(kind string, c gridgraph.Cell, at time.Duration) Frame {
	return Frame{
		Kind:     kind,
		Row:      c.Row,
		Col:      c.Col,
		ID:       c.ElementID(),
		AtMillis: at.Milliseconds(),
	}
}
