package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/markdown"
	"github.com/yuanwutong/portfolio/internal/ui"
)

// Config holds server configuration.
type Config struct {
	Port      int
	AllowAll  bool // allow all CORS and websocket origins (dev mode)
	Source    content.Source
	Timeout   time.Duration // per-fetch content timeout
	Exclude   []string      // globs never served from /content
	Title     string
	Page      ui.Options
	Particles ParticlesConfig
}

// ParticlesConfig controls the background animation stream.
type ParticlesConfig struct {
	Enabled      bool
	Count        int
	LinkDistance float64
	FPS          int
}

// Server serves the page shell, raw content, list APIs and the websocket
// sessions that drive the page.
type Server struct {
	cfg        Config
	loader     *content.Loader
	renderer   *markdown.Renderer
	hub        *Hub
	upgrader   websocket.Upgrader
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over cfg.Source.
func New(cfg Config) *Server {
	s := &Server{
		cfg:      cfg,
		loader:   content.NewLoader(cfg.Source, cfg.Timeout),
		renderer: markdown.New(),
		hub:      NewHub(),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Plain HTTP routes get a deadline; websocket sessions live as long as
	// the browser tab.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/", s.serveIndex)
		r.Get("/content/*", s.serveContent)
		r.Get("/api/projects", s.handleProjects)
		r.Get("/api/blog", s.handleBlog)
	})

	r.Get("/ws/ui", s.serveUI)
	if s.cfg.Particles.Enabled {
		r.Get("/ws/particles", s.serveParticles)
	}

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the registry of live UI sessions.
func (s *Server) Hub() *Hub { return s.hub }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Reload tells every open page to reload its content.
func (s *Server) Reload(paths []string) {
	n := s.hub.Broadcast(ui.Event{Type: ui.EventReload})
	log.Printf("server: %d content file(s) changed, reloading %d session(s)", len(paths), n)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if s.cfg.AllowAll {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
}
