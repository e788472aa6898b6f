package server

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kysno/kysno/internal/livereload"
	"github.com/kysno/kysno/internal/page"
)

// Config holds server configuration.
type Config struct {
	Port       int
	PublicDir  string // directory served under /assets/
	AllowAll   bool   // allow all CORS origins
	LiveReload bool   // expose /ws/reload and notify pages on content swaps
}

// Server serves the landing page and its assets.
type Server struct {
	cfg        Config
	mu         sync.RWMutex
	renderer   *page.Renderer
	hub        *livereload.Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server rendering with renderer.
func New(cfg Config, renderer *page.Renderer) *Server {
	s := &Server{
		cfg:      cfg,
		renderer: renderer,
	}
	if cfg.LiveReload {
		s.hub = livereload.NewHub()
	}

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
	r.Use(middleware.GetHead)
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The websocket must not sit behind the timeout middleware.
	if s.hub != nil {
		r.Handle("/ws/reload", s.hub)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/", s.handlePage)
		r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", page.Stylesheet()))
		r.Get("/static/script.js", serveAsset("text/javascript; charset=utf-8", page.Script()))

		if s.cfg.PublicDir != "" {
			fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.PublicDir)))
			r.Handle("/assets/*", fs)
		}
	})

	return r
}

// handlePage renders the landing page. "?menu=open" renders the mobile
// menu expanded so the toggle works without scripts.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	renderer := s.Renderer()
	shell := renderer.NewShell()
	if r.URL.Query().Get("menu") == "open" {
		shell.SetMenuOpen(true)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, shell); err != nil {
		log.Printf("server: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func serveAsset(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.Write(body)
	}
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live-reload hub, or nil when live reload is off.
func (s *Server) Hub() *livereload.Hub { return s.hub }

// Renderer returns the renderer currently serving the page.
func (s *Server) Renderer() *page.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderer
}

// SetRenderer swaps the renderer and, with live reload on, tells open
// pages to refresh.
func (s *Server) SetRenderer(r *page.Renderer) {
	s.mu.Lock()
	s.renderer = r
	s.mu.Unlock()

	if s.hub != nil {
		n := s.hub.Broadcast()
		log.Printf("server: content reloaded, notified %d page(s)", n)
	}
}

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("kysno server listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
