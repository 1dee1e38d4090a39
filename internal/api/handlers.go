// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pdiddy/mdtex/internal/convert"
	"github.com/pdiddy/mdtex/internal/history"
	"github.com/pdiddy/mdtex/internal/latex"
	"github.com/pdiddy/mdtex/pkg/types"
)

// httpSource names runs that came in over HTTP without a ?source=.
const httpSource = "http"

// ConvertResponse is the body returned by POST /convert.
type ConvertResponse struct {
	ID          int64              `json:"id,omitempty"`
	LaTeX       string             `json:"latex"`
	Status      types.RunStatus    `json:"status"`
	Diagnostics []types.Diagnostic `json:"diagnostics"`
	Stats       latex.Stats        `json:"stats"`
}

// handleConvert converts the Markdown request body. The optional source
// query parameter names the run in history.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxBodyBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	source := strings.TrimSpace(r.URL.Query().Get("source"))
	if source == "" {
		source = httpSource
	}

	var out bytes.Buffer
	rec, err := convert.Convert(r.Context(), s.conv, source, bytes.NewReader(body), &out, nil)
	if err != nil {
		s.log.Error("conversion failed", "source", source, "error", err)
		jsonError(w, "conversion failed", http.StatusInternalServerError)
		return
	}

	resp := ConvertResponse{
		LaTeX:       out.String(),
		Status:      rec.Status,
		Diagnostics: rec.Diagnostics,
		Stats:       latex.Stats{Lines: rec.Lines, Fragments: rec.Fragments, Failures: rec.Failures},
	}
	if resp.Diagnostics == nil {
		resp.Diagnostics = []types.Diagnostic{}
	}

	if s.runs != nil {
		id, err := s.runs.Record(r.Context(), rec)
		if err != nil {
			s.log.Warn("recording run", "source", source, "error", err)
		}
		resp.ID = id
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := history.ListOptions{
		Source: q.Get("source"),
		Status: types.RunStatus(q.Get("status")),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			jsonError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		opts.Limit = n
	}

	runs, err := s.runs.List(r.Context(), opts)
	if err != nil {
		s.log.Error("listing runs", "error", err)
		jsonError(w, "failed to list runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []types.RunRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "runID"), 10, 64)
	if err != nil {
		jsonError(w, "invalid run id", http.StatusBadRequest)
		return
	}

	rec, err := s.runs.Get(r.Context(), id)
	if errors.Is(err, history.ErrRunNotFound) {
		jsonError(w, "run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("getting run", "id", id, "error", err)
		jsonError(w, "failed to get run", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
