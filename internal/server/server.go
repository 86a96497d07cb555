// Package server exposes the craft store and integrity engine over HTTP.
//
// The API is a thin JSON layer: crafts are stored and fetched as craftio
// documents, and the engine's queries and mutations are exposed per part.
// Negative verdicts (not deletable, not breakable) are 200 responses with
// the verdict payload - only contract violations and infrastructure
// failures map to error statuses.
//
// # Routes
//
//	GET    /healthz
//	GET    /crafts                          list stored craft IDs
//	POST   /crafts                          store a craft document
//	GET    /crafts/{id}                     fetch a craft document
//	DELETE /crafts/{id}                     remove a craft document
//	GET    /crafts/{id}/parts/{uid}/deletable
//	GET    /crafts/{id}/parts/{uid}/breakable
//	POST   /crafts/{id}/parts/{uid}/delete
//	POST   /crafts/{id}/parts/{uid}/break
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/partbench/partbench/pkg/store"
)

// Server handles craft API requests over a pluggable store.
type Server struct {
	store  store.Store
	logger *log.Logger
}

// New creates a server over the given store. A nil logger defaults to the
// standard charmbracelet logger.
func New(st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, logger: logger}
}

// Router builds the chi router with all craft and part routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/crafts", func(r chi.Router) {
		r.Get("/", s.handleListCrafts)
		r.Post("/", s.handleCreateCraft)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetCraft)
			r.Delete("/", s.handleDeleteCraft)
			r.Route("/parts/{uid}", func(r chi.Router) {
				r.Get("/deletable", s.handleDeletable)
				r.Get("/breakable", s.handleBreakable)
				r.Post("/delete", s.handleDeletePart)
				r.Post("/break", s.handleBreakSymmetry)
			})
		})
	})
	return r
}

// ListenAndServe runs the HTTP server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
