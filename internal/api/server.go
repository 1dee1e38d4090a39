// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api serves the converter over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/mdtex/internal/convert"
	"github.com/pdiddy/mdtex/internal/history"
	"github.com/pdiddy/mdtex/pkg/types"
)

// defaultMaxBodyBytes applies when ServerConfig.MaxBodyBytes is not set.
const defaultMaxBodyBytes = 1 << 20

// RunStore is the part of history.Store the server uses.
type RunStore interface {
	Record(ctx context.Context, rec types.RunRecord) (int64, error)
	List(ctx context.Context, opts history.ListOptions) ([]types.RunRecord, error)
	Get(ctx context.Context, id int64) (types.RunRecord, error)
}

// Server is the HTTP API server for mdtex.
type Server struct {
	router chi.Router
	conv   convert.Renderer
	runs   RunStore
	log    *slog.Logger
	cfg    types.ServerConfig
}

// NewServer creates and configures the HTTP server. runs may be nil, in
// which case conversions are not recorded and the /runs endpoints are not
// mounted.
func NewServer(conv convert.Renderer, runs RunStore, log *slog.Logger, cfg types.ServerConfig) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	s := &Server{
		conv: conv,
		runs: runs,
		log:  log,
		cfg:  cfg,
	}
	s.setupRoutes()
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
	r.Post("/convert", s.handleConvert)

	if s.runs != nil {
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{runID}", s.handleGetRun)
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
