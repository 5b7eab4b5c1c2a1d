// Package httpapi serves the analysis pipeline over JSON HTTP.
//
// Routes:
//
//	GET  /api/health
//	POST /api/analyze_video      {"videoId": "..."}
//	POST /api/sentiment_counts   {"sentiment_data": [...]}
//	POST /api/generate_chart     {"sentiment_counts": {"1": 3, "0": 1, "-1": 2}}
//	POST /api/trend              {"sentiment_data": [...]}
//	POST /api/term_frequency     {"comments": [...], "limit": 100}
//	POST /api/summary            {"records": [...]}
//	GET  /api/runs?limit=20
//	GET  /api/runs/{id}
//	DELETE /api/runs/{id}
//
// generate_trend_graph and generate_wordcloud are aliases of trend and
// term_frequency. Chart routes return chart data as JSON, never images.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/satya-labs/satya-cli/internal/core/ports/driving"
	"github.com/satya-labs/satya-cli/internal/logger"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

// DefaultTermLimit is used when a term_frequency request has no limit.
const DefaultTermLimit = 100

// Ports holds the services the server calls.
type Ports struct {
	Analysis driving.AnalysisService
	History  driving.HistoryService
}

// Validate checks that required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports is nil")
	}
	if p.Analysis == nil {
		return errors.New("analysis service is required")
	}
	return nil
}

// Server is the HTTP API server.
type Server struct {
	ports *Ports
	mux   *http.ServeMux
}

// NewServer creates a server and registers its routes.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{ports: ports, mux: http.NewServeMux()}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("POST /api/analyze_video", s.handleAnalyze)

	s.mux.HandleFunc("POST /api/sentiment_counts", s.handleCounts)
	s.mux.HandleFunc("POST /api/generate_chart", s.handleChart)

	s.mux.HandleFunc("POST /api/trend", s.handleTrend)
	s.mux.HandleFunc("POST /api/generate_trend_graph", s.handleTrend)

	s.mux.HandleFunc("POST /api/term_frequency", s.handleTerms)
	s.mux.HandleFunc("POST /api/generate_wordcloud", s.handleTerms)

	s.mux.HandleFunc("POST /api/summary", s.handleSummary)

	s.mux.HandleFunc("GET /api/runs", s.handleListRuns)
	s.mux.HandleFunc("GET /api/runs/{id}", s.handleGetRun)
	s.mux.HandleFunc("DELETE /api/runs/{id}", s.handleDeleteRun)
}

// Mount serves h under pattern alongside the API routes.
func (s *Server) Mount(pattern string, h http.Handler) {
	s.mux.Handle(pattern, h)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	logger.Debug("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writing response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
