package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/SafiShahid34/VisualPathfinder/dijkstra"
)

// Websocket message types.
const (
	MsgVisualize = "visualize"
	MsgFrame     = "frame"
	MsgDone      = "done"
	MsgError     = "error"
)

// wsRequest is a message from the client.
type wsRequest struct {
	Type        string `json:"type"`
	MaxDistance *int   `json:"maxDistance,omitempty"`
}

// wsMessage is a message to the client. A visualize request is answered by
// one frame message per replay frame and a closing done message.
type wsMessage struct {
	Type       string `json:"type"`
	Frame      *Frame `json:"frame,omitempty"`
	Found      bool   `json:"found,omitempty"`
	Visited    int    `json:"visited,omitempty"`
	PathLength int    `json:"pathLength,omitempty"`
	Error      string `json:"error,omitempty"`
}

// serveWebsocket upgrades the request and serves visualize requests until
// the peer goes away. Only the writer goroutine writes to the connection.
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Println("upgrade:", err)
		return
	}

	requests := make(chan wsRequest)
	group, groupCtx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		defer close(requests)
		return s.readRequests(groupCtx, conn, requests)
	})
	group.Go(func() error {
		// Closing unblocks the reader if the writer fails first.
		defer conn.Close()
		return s.writeReplies(groupCtx, conn, requests)
	})

	if err := group.Wait(); err != nil {
		s.logger.Println("websocket:", err)
	}
}

func (s *Server) readRequests(ctx context.Context, conn *websocket.Conn, out chan<- wsRequest) error {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if isUnexpectedClose(err) {
				return fmt.Errorf("read: %w", err)
			}
			return nil
		}
		select {
		case out <- req:
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Server) writeReplies(ctx context.Context, conn *websocket.Conn, in <-chan wsRequest) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.writeWait)); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
		case req, ok := <-in:
			if !ok {
				return nil
			}
			if err := s.reply(conn, req); err != nil {
				return err
			}
		}
	}
}

// reply answers one client request.
func (s *Server) reply(conn *websocket.Conn, req wsRequest) error {
	if req.Type != MsgVisualize {
		return s.send(conn, wsMessage{Type: MsgError, Error: fmt.Sprintf("unknown message type %q", req.Type)})
	}

	var opts []dijkstra.Option
	if req.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*req.MaxDistance))
	}
	res, err := s.board.Visualize(opts...)
	if err != nil {
		return s.send(conn, wsMessage{Type: MsgError, Error: err.Error()})
	}

	frames := BuildReplay(res, s.schedule)
	for i := range frames {
		if err = s.send(conn, wsMessage{Type: MsgFrame, Frame: &frames[i]}); err != nil {
			return err
		}
	}
	s.logger.Printf("replayed %d frames", len(frames))

	return s.send(conn, wsMessage{
		Type:       MsgDone,
		Found:      res.Found,
		Visited:    len(res.Visited),
		PathLength: len(res.Path()),
	})
}

func (s *Server) send(conn *websocket.Conn, msg wsMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(s.writeWait)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write %s: %w", msg.Type, err)
	}

	return nil
}

func isUnexpectedClose(err error) bool {
	return websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
