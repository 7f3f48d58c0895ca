package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridlayout/pkg/buildinfo"
	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
	"github.com/matzehuels/gridlayout/pkg/pipeline"
)

// LayoutResponse is the body of a successful POST /v1/layout.
type LayoutResponse struct {
	RequestID   string                  `json:"requestId"`
	GraphHash   string                  `json:"graphHash"`
	Graph       diagram.PositionedGraph `json:"graph"`
	Diagnostics []diagram.Diagnostic    `json:"diagnostics"`
	BrokenEdges int                     `json:"brokenEdges"`
	Crossings   int                     `json:"crossings"`
	Snake       bool                    `json:"snake"`
	Cached      bool                    `json:"cached"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	RequestID string `json:"requestId"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	g, opts, ok := s.decode(w, r)
	if !ok {
		return
	}

	res, hash, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), g, opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	diags := res.Diagnostics
	if diags == nil {
		diags = []diagram.Diagnostic{}
	}
	s.respondJSON(w, http.StatusOK, LayoutResponse{
		RequestID:   RequestID(r.Context()),
		GraphHash:   hash,
		Graph:       res.Graph,
		Diagnostics: diags,
		BrokenEdges: res.BrokenEdges,
		Crossings:   res.Crossings,
		Snake:       res.Snake,
		Cached:      hit,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.respondError(w, r, err)
		return
	}

	g, opts, ok := s.decode(w, r)
	if !ok {
		return
	}
	opts.Formats = []string{format}
	opts.Detailed = r.URL.Query().Get("detailed") == "true"

	result, err := s.runner.ExecuteGraph(r.Context(), g, opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Diagnostics", strconv.Itoa(len(result.Layout.Diagnostics)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// decode reads the diagram body and the query options. On failure the error
// response has already been written.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (diagram.Graph, pipeline.Options, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return diagram.Graph{}, pipeline.Options{}, false
	}
	g, err := pipeline.Parse(data)
	if err != nil {
		s.respondError(w, r, err)
		return diagram.Graph{}, pipeline.Options{}, false
	}

	opts := pipeline.Options{
		Direction: r.URL.Query().Get("direction"),
		Logger:    s.logger,
	}
	if err := opts.ValidateForLayout(); err != nil {
		s.respondError(w, r, err)
		return diagram.Graph{}, pipeline.Options{}, false
	}
	return g, opts, true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// respondError maps coded client errors to 400 and everything else to 500.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	if errors.IsClientError(err) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.respondJSON(w, status, ErrorResponse{
		RequestID: RequestID(r.Context()),
		Code:      string(code),
		Message:   errors.UserMessage(err),
	})
}
