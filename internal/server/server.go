// Package server exposes the distance computations over HTTP.
//
// The API is JSON over a small chi router:
//
//	GET  /healthz           liveness probe
//	POST /v1/inversion      reversal distance between two genomes
//	POST /v1/breakpoint     breakpoint distance between two genomes
//	POST /v1/adjacencies    shared adjacencies between two genomes
//	POST /v1/matrix         pairwise matrix over a genome collection
//	GET  /v1/runs           recent persisted matrix runs
//	GET  /v1/runs/{id}      one persisted matrix run
//
// Validation failures map to 422, the unimplemented multichromosomal model
// to 501, malformed payloads to 400.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/genedist/genedist/pkg/matrix"
)

// Server is the HTTP API. It wraps a matrix runner (which carries the cache)
// and a run store.
type Server struct {
	router *chi.Mux
	runner *matrix.Runner
	store  matrix.Store
	logger *log.Logger
}

// New assembles the router. A nil runner gets a cacheless default, a nil
// store an in-memory one, a nil logger the package default.
func New(runner *matrix.Runner, store matrix.Store, logger *log.Logger) *Server {
	if runner == nil {
		runner = matrix.NewRunner(nil, nil, logger)
	}
	if store == nil {
		store = matrix.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		router: chi.NewRouter(),
		runner: runner,
		store:  store,
		logger: logger,
	}

	s.router.Use(middleware.RealIP)
	s.router.Use(requestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/inversion", s.handleInversion)
		r.Post("/breakpoint", s.handleBreakpoint)
		r.Post("/adjacencies", s.handleAdjacencies)
		r.Post("/matrix", s.handleMatrix)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
