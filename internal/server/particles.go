package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yuanwutong/portfolio/internal/particles"
)

// resizeMessage is sent by the browser when the canvas size changes.
type resizeMessage struct {
	Type   string  `json:"type"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

func (s *Server) serveParticles(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	pc := s.cfg.Particles
	field := particles.NewField(particles.Config{Count: pc.Count, LinkDistance: pc.LinkDistance})
	anim := particles.NewAnimator(field, pc.FPS, particles.FrameSinkFunc(func(fr particles.Frame) error {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(fr)
	}))
	if err := anim.Start(r.Context()); err != nil {
		log.Printf("server: starting particles: %v", err)
		return
	}
	defer anim.Stop()

	done := anim.Done()
	go func() {
		<-done
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: particles read: %v", err)
			}
			return
		}
		var m resizeMessage
		if err := json.Unmarshal(msg, &m); err != nil || m.Type != "resize" {
			continue
		}
		anim.Resize(m.Width, m.Height)
	}
}
