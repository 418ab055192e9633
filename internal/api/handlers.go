// Package api exposes the phenotype resolver over HTTP: one-shot resolution
// for horse-creation workflows and a Monte Carlo endpoint for config tuning.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xtding233/equus-backend/internal/breed"
	"github.com/xtding233/equus-backend/internal/genetics"
	"github.com/xtding233/equus-backend/internal/sim"
)

// Server wires the registry and resolver behind the HTTP handlers.
type Server struct {
	registry *breed.Registry
	resolver *genetics.Resolver
	metrics  *metrics
	promReg  *prometheus.Registry
}

// NewServer builds a server over the registry. The production resolver uses
// the crypto-backed selector; each request shares it safely because it keeps
// no state.
func NewServer(registry *breed.Registry) *Server {
	promReg := prometheus.NewRegistry()
	return &Server{
		registry: registry,
		resolver: genetics.NewResolver(nil),
		metrics:  newMetrics(promReg),
		promReg:  promReg,
	}
}

// Routes returns the handler with all endpoints mounted.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/resolve", s.handleResolve)
	mux.HandleFunc("POST /v1/simulate", s.handleSimulate)
	mux.HandleFunc("GET /v1/breeds", s.handleBreeds)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.promReg, promhttp.HandlerOpts{}))
	return mux
}

type resolveReq struct {
	Breed    string            `json:"breed"`
	AgeYears int               `json:"age_years"`
	Genotype genetics.Genotype `json:"genotype"`
}

type resolveResp struct {
	ResolutionID string              `json:"resolution_id,omitempty"`
	Breed        string              `json:"breed,omitempty"`
	Phenotype    *genetics.Phenotype `json:"phenotype,omitempty"`
	Err          string              `json:"err,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { s.metrics.duration.WithLabelValues("resolve").Observe(time.Since(start).Seconds()) }()

	var req resolveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resolveResp{Err: "invalid request body"})
		return
	}
	if req.Breed == "" {
		writeJSON(w, http.StatusBadRequest, resolveResp{Err: "missing breed"})
		return
	}

	profile, err := s.registry.Get(req.Breed)
	if err != nil {
		writeJSON(w, statusFor(err), resolveResp{Err: err.Error()})
		return
	}

	ph, err := s.resolver.Resolve(req.Genotype, profile, req.AgeYears)
	if err != nil {
		writeJSON(w, statusFor(err), resolveResp{Err: err.Error()})
		return
	}

	s.metrics.resolutions.WithLabelValues(ph.FinalDisplayColor).Inc()
	writeJSON(w, http.StatusOK, resolveResp{
		ResolutionID: uuid.NewString(),
		Breed:        req.Breed,
		Phenotype:    &ph,
	})
}

type simulateReq struct {
	Breed    string            `json:"breed"`
	AgeYears int               `json:"age_years"`
	Genotype genetics.Genotype `json:"genotype"`
	Trials   int               `json:"trials"`
	Seed     uint64            `json:"seed"`
}

type simulateResp struct {
	Breed  string      `json:"breed,omitempty"`
	Report *sim.Report `json:"report,omitempty"`
	Err    string      `json:"err,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { s.metrics.duration.WithLabelValues("simulate").Observe(time.Since(start).Seconds()) }()

	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, simulateResp{Err: "invalid request body"})
		return
	}
	if req.Breed == "" {
		writeJSON(w, http.StatusBadRequest, simulateResp{Err: "missing breed"})
		return
	}
	if req.Trials <= 0 || req.Trials > 1_000_000 {
		writeJSON(w, http.StatusBadRequest, simulateResp{Err: "trials must be in 1..1000000"})
		return
	}

	profile, err := s.registry.Get(req.Breed)
	if err != nil {
		writeJSON(w, statusFor(err), simulateResp{Err: err.Error()})
		return
	}

	rep, err := sim.Run(sim.Params{
		Genotype: req.Genotype,
		Profile:  profile,
		AgeYears: req.AgeYears,
		Trials:   req.Trials,
		Seed:     req.Seed,
	})
	if err != nil {
		writeJSON(w, statusFor(err), simulateResp{Err: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, simulateResp{Breed: req.Breed, Report: &rep})
}

type breedsResp struct {
	Breeds []string `json:"breeds"`
	Err    string   `json:"err,omitempty"`
}

func (s *Server) handleBreeds(w http.ResponseWriter, _ *http.Request) {
	names, err := s.registry.Breeds()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, breedsResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, breedsResp{Breeds: names})
}

// statusFor maps engine/config errors onto HTTP statuses. The engine's
// taxonomy is configuration or caller errors, never transient server faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, breed.ErrUnknownBreed):
		return http.StatusNotFound
	case errors.Is(err, genetics.ErrUnknownLocus),
		errors.Is(err, genetics.ErrMissingBreedProfile),
		errors.Is(err, genetics.ErrInvalidWeightMap):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
