package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zatif/resumeforge/internal/config"
	"github.com/zatif/resumeforge/internal/export"
	"github.com/zatif/resumeforge/internal/render"
	"github.com/zatif/resumeforge/internal/resume"
	"github.com/zatif/resumeforge/internal/session"
)

// Server is the HTTP surface of the resume editor: the editor page, the
// mutation endpoints, the export downloads, and the websocket that pushes
// re-rendered screen fragments after every mutation.
type Server struct {
	router   chi.Router
	store    *session.Store
	exporter *export.Exporter
	screen   *render.Screen
	hub      *hub
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server and wires the screen
// re-render push into the session store.
func NewServer(store *session.Store, exporter *export.Exporter, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:    store,
		exporter: exporter,
		screen:   &render.Screen{},
		hub:      newHub(log),
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()

	// Reactive screen rendering: every new document value is projected to
	// HTML and broadcast to connected editors.
	store.Watch(func(doc resume.Document) {
		frag, err := s.screen.Render(doc)
		if err != nil {
			log.Error("screen re-render failed", "error", err)
			return
		}
		s.hub.broadcast(frag)
	})
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/resume", s.handleResumeJSON)
		r.Post("/sections", s.handleAddSection)
		r.Post("/sections/{sectionID}/items", s.handleAddItem)
	})

	r.Get("/export/{format}", s.handleExport)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
