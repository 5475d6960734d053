package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/yuanwutong/portfolio/internal/ui"
)

const (
	writeWait   = 10 * time.Second
	eventBuffer = 16
)

// patchMessage is the outgoing UI websocket message format.
type patchMessage struct {
	Session string     `json:"session"`
	Patches []ui.Patch `json:"patches"`
}

// session is one browser tab. It is the page's patch sink; writes are
// serialized since the connection allows a single writer.
type session struct {
	id     string
	conn   *websocket.Conn
	mu     sync.Mutex
	events chan ui.Event
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		id:     uuid.New().String(),
		conn:   conn,
		events: make(chan ui.Event, eventBuffer),
	}
}

// Send implements ui.Sink.
func (s *session) Send(patches []ui.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(patchMessage{Session: s.id, Patches: patches})
}

func (s *session) deliver(ev ui.Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

func (s *Server) serveUI(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := newSession(conn)
	s.hub.add(sess)
	defer s.hub.remove(sess.id)

	opts := s.cfg.Page
	opts.Logf = func(format string, args ...any) {
		log.Printf("server: session %s: %s", sess.id, fmt.Sprintf(format, args...))
	}
	page := ui.NewPage(s.loader, s.renderer, sess, opts)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := page.Run(ctx, sess.events); err != nil {
			log.Printf("server: session %s: %v", sess.id, err)
		}
		// Unblock the reader if the page stopped first.
		conn.Close()
	}()

	s.readEvents(ctx, sess)
	cancel()
	<-done
}

func (s *Server) readEvents(ctx context.Context, sess *session) {
	for {
		_, msg, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: session %s: websocket read: %v", sess.id, err)
			}
			return
		}

		var ev ui.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			log.Printf("server: session %s: invalid message: %v", sess.id, err)
			continue
		}

		select {
		case sess.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
