package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/genedist/genedist/pkg/distance"
	"github.com/genedist/genedist/pkg/genome"
	"github.com/genedist/genedist/pkg/matrix"
)

// pairRequest carries the two genomes of a pairwise query.
type pairRequest struct {
	A genome.Set `json:"a"`
	B genome.Set `json:"b"`
}

type distanceResponse struct {
	Metric   string `json:"metric"`
	Distance int    `json:"distance"`
}

type adjacenciesResponse struct {
	Adjacencies []distance.Adjacency `json:"adjacencies"`
	Count       int                  `json:"count"`
}

type matrixRequest struct {
	Genomes []genome.Set `json:"genomes"`
	Metric  string       `json:"metric,omitempty"`
	Workers int          `json:"workers,omitempty"`
	Save    bool         `json:"save,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleInversion(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePair(w, r)
	if !ok {
		return
	}
	d, err := distance.InversionDistance(req.A, req.B)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, distanceResponse{Metric: "inversion", Distance: d})
}

func (s *Server) handleBreakpoint(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePair(w, r)
	if !ok {
		return
	}
	d := distance.BreakpointDistance(req.A, req.B)
	writeJSON(w, http.StatusOK, distanceResponse{Metric: "breakpoint", Distance: d})
}

func (s *Server) handleAdjacencies(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePair(w, r)
	if !ok {
		return
	}
	adj := distance.Adjacencies(req.A, req.B)
	if adj == nil {
		adj = []distance.Adjacency{}
	}
	writeJSON(w, http.StatusOK, adjacenciesResponse{Adjacencies: adj, Count: len(adj)})
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	var req matrixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request: " + err.Error()})
		return
	}
	for i, g := range req.Genomes {
		if err := validateSet(g); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity,
				errorResponse{Error: fmt.Sprintf("genome %d: %v", i, err)})
			return
		}
	}

	run, err := s.runner.Compute(r.Context(), req.Genomes, matrix.Options{
		Metric:  matrix.Metric(req.Metric),
		Workers: req.Workers,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Save {
		if err := s.store.SaveRun(r.Context(), run); err != nil {
			s.logger.Error("persist run", "run", run.ID, "err", err)
			s.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}
	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if runs == nil {
		runs = []matrix.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// decodePair decodes and validates a pairwise request body. On failure it
// writes the error response and returns ok=false.
func (s *Server) decodePair(w http.ResponseWriter, r *http.Request) (pairRequest, bool) {
	var req pairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request: " + err.Error()})
		return req, false
	}
	for label, g := range map[string]genome.Set{"a": req.A, "b": req.B} {
		if err := validateSet(g); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity,
				errorResponse{Error: fmt.Sprintf("genome %q: %v", label, err)})
			return req, false
		}
	}
	return req, true
}

// validateSet re-runs chromosome construction on decoded payloads, since
// JSON decoding bypasses [genome.NewChromosome].
func validateSet(s genome.Set) error {
	if len(s.Chromosomes) == 0 {
		return errors.New("genome has no chromosomes")
	}
	for i, c := range s.Chromosomes {
		if _, err := genome.NewChromosome(c.Genes, c.Circular); err != nil {
			return fmt.Errorf("chromosome %d: %w", i, err)
		}
	}
	return nil
}

// writeError maps domain errors onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, distance.ErrDuplicateGenes),
		errors.Is(err, distance.ErrContentMismatch),
		errors.Is(err, distance.ErrOffsetNotFound),
		errors.Is(err, matrix.ErrTooFewGenomes),
		errors.Is(err, matrix.ErrUnknownMetric):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, distance.ErrNotImplemented):
		status = http.StatusNotImplemented
	case errors.Is(err, matrix.ErrRunNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"id", requestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
