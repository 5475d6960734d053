package server

import (
	"log"
	"sync"

	"github.com/yuanwutong/portfolio/internal/ui"
)

// Hub tracks live UI sessions so server-side events, such as content
// reloads, reach every open page.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*session)}
}

func (h *Hub) add(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.id] = s
	log.Printf("server: session %s registered: %d active", s.id, len(h.sessions))
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
	log.Printf("server: session %s unregistered: %d active", id, len(h.sessions))
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Broadcast queues ev on every session and returns how many accepted it.
// A session whose queue is full misses the event.
func (h *Hub) Broadcast(ev ui.Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for id, s := range h.sessions {
		if s.deliver(ev) {
			n++
		} else {
			log.Printf("server: session %s busy, dropped %s", id, ev.Type)
		}
	}
	return n
}
