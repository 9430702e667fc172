// Package server provides the HTTP surface: the verse proxy endpoint
// and the truth browsing API.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/truthseed/truthseed/internal/bible"
	"github.com/truthseed/truthseed/internal/content"
	"github.com/truthseed/truthseed/internal/prefs"
	"github.com/truthseed/truthseed/internal/selector"
	"github.com/truthseed/truthseed/internal/speech"
)

// verseCacheControl favors a 7-day shared cache with a 1-day
// stale-while-revalidate window
const verseCacheControl = "public, s-maxage=604800, stale-while-revalidate=86400"

// Server is the main HTTP server
type Server struct {
	store      *content.Store
	verses     *bible.Service
	selector   *selector.Selector
	prefs      *prefs.Store
	synth      speech.Synthesizer
	router     chi.Router
	upstreamOK bool
}

// New creates a server wired to the given collaborators. upstreamOK
// reflects whether the live verse API is configured; the verse proxy
// answers 503 without it.
func New(store *content.Store, verses *bible.Service, sel *selector.Selector, prefStore *prefs.Store, synth speech.Synthesizer, upstreamOK bool) *Server {
	s := &Server{
		store:      store,
		verses:     verses,
		selector:   sel,
		prefs:      prefStore,
		synth:      synth,
		upstreamOK: upstreamOK,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/verse", s.handleVerse)
		r.Get("/truths", s.handleTruths)
		r.Get("/truths/random", s.handleRandomTruth)
		r.Get("/truths/{truthID}", s.handleTruth)
		r.Get("/translations", s.handleGetTranslations)
		r.Post("/translations", s.handleSetTranslation)
		r.Post("/speech", s.handleSpeech)
	})

	s.router = r
}

// Handler exposes the router (used by tests)
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server on addr
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s (provider: %s)", addr, s.verses.ProviderName())
	return http.ListenAndServe(addr, s.router)
}

// --- Helpers ---

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, details []string) {
	body := map[string]interface{}{"error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	s.writeJSON(w, status, body)
}
